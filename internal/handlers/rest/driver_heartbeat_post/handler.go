package driver_heartbeat_post

import (
	"net/http"

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

// ServeHTTP продлевает присутствие водителя, статус не меняется.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	err := h.service.Heartbeat(r.Context(), actor)
	if err != nil {
		httpresponse.WriteDriverError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
