package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler liveness для балансировщика. Во время остановки отдает 503, чтобы инстанс вывели из ротации
// до закрытия соединений.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	if h.isShuttingDown.Load() {
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
