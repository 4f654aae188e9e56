package rate_limiter

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"pickup-service/internal/pkg/httpresponse"
	"pickup-service/pkg/logger"
)

const exceededMessage = "rate limit exceeded, try again later"

// Middleware общий лимит на весь сервис. Отказ отдается в том же JSON формате, что и ошибки хендлеров.
func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					handlerPath = template
				}
			}
			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			httpresponse.WriteError(w, log, http.StatusTooManyRequests, httpresponse.KindRateLimited, exceededMessage)
		})
	}
}
