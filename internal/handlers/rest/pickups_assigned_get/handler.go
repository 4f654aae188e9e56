package pickups_assigned_get

import (
	"net/http"

	"pickup-service/internal/handlers/rest/converters"
	"pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/httpresponse"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	pickups, err := h.service.ListAssigned(r.Context(), actor)
	if err != nil {
		httpresponse.WriteAssignmentError(w, h.log, err)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.PickupsToDTO(pickups))
}
