package driver_status_put

import (
	"encoding/json"
	"net/http"

	"pickup-service/internal/entities"
	"pickup-service/internal/generated/dto"
	"pickup-service/internal/handlers/rest/converters"
	"pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/httpresponse"
	"pickup-service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()
	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP водитель меняет только собственное присутствие, id берется из токена.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	var presenceDTO dto.DriverPresence
	err := json.NewDecoder(r.Body).Decode(&presenceDTO)
	if err != nil {
		httpresponse.WriteBadRequest(w, h.log, "invalid JSON body")
		return
	}

	updated, err := h.service.SetStatus(
		r.Context(),
		actor,
		actor.DriverID,
		entities.DriverStatusType(presenceDTO.Status),
		presenceDTO.Reason,
	)
	if err != nil {
		httpresponse.WriteDriverError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("driver_id", updated.ID),
		logger.NewField("status", updated.Status.String()),
	).Info("driver presence changed")

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.DriverToDTO(updated))
}
