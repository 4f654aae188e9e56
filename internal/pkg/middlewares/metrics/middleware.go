package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"pickup-service/internal/pkg/auth"
	"pickup-service/pkg/logger"
)

const HeaderRequestID = "X-Request-ID"

// Middleware пишет метрики и лог запроса. Id запроса берется из заголовка или генерируется.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(HeaderRequestID)
			if _, err := uuid.Parse(requestID); err != nil {
				requestID = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, requestID)

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			ctx, slot := auth.WithIdentitySlot(r.Context())
			next.ServeHTTP(rw, r.WithContext(ctx))

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)

			// шаблон маршрута вместо пути, чтобы id не раздували кардинальность
			handlerPath := r.URL.Path
			route := mux.CurrentRoute(r)
			if route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					handlerPath = template
				}
			}

			HTTPRequestDuration.WithLabelValues(r.Method, handlerPath, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, handlerPath, statusCode).Inc()

			fields := []logger.Field{
				logger.NewField("request_id", requestID),
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("status", statusCode),
				logger.NewField("duration", duration.String()),
			}
			if identity, ok := slot.Identity(); ok {
				fields = append(fields,
					logger.NewField("role", string(identity.Role)),
					logger.NewField("tenant_id", identity.TenantID),
				)
				if identity.Role == auth.RoleDriver {
					fields = append(fields, logger.NewField("driver_id", identity.DriverID))
				}
			}

			reqLog := log.With(fields...)
			if rw.statusCode >= http.StatusInternalServerError {
				reqLog.Warn("HTTP request")
				return
			}
			reqLog.Info("HTTP request")
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}
