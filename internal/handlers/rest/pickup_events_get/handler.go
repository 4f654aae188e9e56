package pickup_events_get

import (
	"net/http"

	"github.com/gorilla/mux"
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

// ServeHTTP история заявки от старых событий к новым. Водитель видит историю только своих заявок.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	events, err := h.service.Events(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		httpresponse.WriteAssignmentError(w, h.log, err)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.EventsToDTO(events))
}
