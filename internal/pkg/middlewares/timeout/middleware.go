package timeout

import (
	"net/http"
	"time"
)

// timeoutBody совпадает с форматом ошибок API, transient клиент может повторить.
const timeoutBody = `{"error":"transient","message":"request timed out"}`

// Middleware ограничивает время обработки запроса. Контекст запроса отменяется по истечении timeout,
// клиент получает 503, если хендлер не успел ответить.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := http.TimeoutHandler(next, timeout, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// заголовки хендлера перекрывают этот, ответ по таймауту остается с ним
			w.Header().Set("Content-Type", "application/json")
			limited.ServeHTTP(w, r)
		})
	}
}
