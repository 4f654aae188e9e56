package pickup_assign_post

import (
	"net/http"

	"github.com/gorilla/mux"
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

// ServeHTTP при гонке за одну заявку проигравший получает 409 conflict.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	pickupID := mux.Vars(r)["id"]
	result, err := h.service.SelfAssign(r.Context(), actor, pickupID)
	if err != nil {
		httpresponse.WriteAssignmentError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("pickup_id", result.Pickup.ID),
		logger.NewField("driver_id", actor.DriverID),
	).Info("pickup self-assigned")

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.ResultToDTO(result))
}
