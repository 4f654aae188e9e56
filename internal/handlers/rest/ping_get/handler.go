package ping_get

import (
	"context"
	"net/http"
	"sort"
	"time"

	"pickup-service/internal/generated/dto"
	"pickup-service/internal/pkg/httpresponse"
	"pickup-service/pkg/logger"
)

const (
	pingTimeout = 2 * time.Second

	statusOK   = "ok"
	statusFail = "unavailable"
)

type Handler struct {
	log          handlerLogger
	dependencies map[string]Pinger
}

// New dependencies имя зависимости для ответа и ее проверка.
func New(log handlerLogger, dependencies map[string]Pinger) *Handler {
	handlerLog := log.With()
	return &Handler{
		log:          handlerLog,
		dependencies: dependencies,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	names := make([]string, 0, len(h.dependencies))
	for name := range h.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	res := dto.PingResponse{
		Message:      "pong",
		Dependencies: make(map[string]string, len(names)),
	}
	status := http.StatusOK
	for _, name := range names {
		err := h.dependencies[name].Ping(ctx)
		if err != nil {
			h.log.With(
				logger.NewField("dependency", name),
				logger.NewField("error", err),
			).Warn("dependency ping failed")
			res.Dependencies[name] = statusFail
			status = http.StatusServiceUnavailable
			continue
		}
		res.Dependencies[name] = statusOK
	}

	httpresponse.WriteJSON(w, h.log, status, res)
}
