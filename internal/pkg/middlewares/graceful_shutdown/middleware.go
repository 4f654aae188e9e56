package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"

	"pickup-service/internal/pkg/httpresponse"
	"pickup-service/pkg/logger"
)

const shuttingDownMessage = "service is shutting down"

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Middleware после начала остановки новые запросы получают 503 transient, клиент повторит на другом инстансе.
func Middleware(log handlerLogger, isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Retry-After", "1")
					w.Header().Set("Connection", "close")
					httpresponse.WriteError(w, log, http.StatusServiceUnavailable, httpresponse.KindTransient, shuttingDownMessage)
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
