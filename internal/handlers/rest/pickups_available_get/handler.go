package pickups_available_get

import (
	"net/http"
	"strconv"

	"pickup-service/internal/handlers/rest/converters"
	"pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/httpresponse"
)

const limitParam = "limit"

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

// ServeHTTP без limit сервис берет значение по умолчанию.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	var limit int
	if raw := r.URL.Query().Get(limitParam); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httpresponse.WriteBadRequest(w, h.log, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	pickups, err := h.service.ListUnassigned(r.Context(), actor, limit)
	if err != nil {
		httpresponse.WriteAssignmentError(w, h.log, err)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.PickupsToDTO(pickups))
}
