package pickup_reject_post

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
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

// ServeHTTP заявка возвращается в пул, отказ после начала работ дает 409 illegal_transition.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	var reasonDTO dto.ReasonRequest
	err := json.NewDecoder(r.Body).Decode(&reasonDTO)
	if err != nil {
		httpresponse.WriteBadRequest(w, h.log, "invalid JSON body")
		return
	}

	pickupID := mux.Vars(r)["id"]
	result, err := h.service.Reject(r.Context(), actor, pickupID, reasonDTO.Reason)
	if err != nil {
		httpresponse.WriteAssignmentError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("pickup_id", result.Pickup.ID),
		logger.NewField("driver_id", actor.DriverID),
	).Info("pickup rejected")

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.ResultToDTO(result))
}
