package idempotency

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/httpresponse"
	"pickup-service/pkg/logger"
)

const (
	HeaderKey    = "Idempotency-Key"
	headerReplay = "Idempotent-Replayed"
	keyPrefix    = "pickup:idempotency:"
	maxKeyLength = 255
	maxBodyBytes = 1 << 20
)

type record struct {
	Status      int    `json:"status"`
	Body        string `json:"body"`
	ContentType string `json:"content_type,omitempty"`
	RequestHash string `json:"request_hash"`
}

// Middleware повторный запрос с тем же Idempotency-Key получает сохраненный ответ.
// Ответы 5xx не сохраняются, такой запрос можно повторить.
// Без заголовка запрос проходит как обычно.
func Middleware(log handlerLogger, store store, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			idempotencyKey := strings.TrimSpace(r.Header.Get(HeaderKey))
			if idempotencyKey == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(idempotencyKey) > maxKeyLength {
				httpresponse.WriteError(w, log, http.StatusBadRequest, httpresponse.KindBadRequest, HeaderKey+" is too long")
				return
			}

			// лишний байт отличает тело ровно на лимит от обрезанного
			body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
			if err != nil {
				httpresponse.WriteError(w, log, http.StatusBadRequest, httpresponse.KindBadRequest, "failed to read request body")
				return
			}
			if len(body) > maxBodyBytes {
				httpresponse.WriteError(w, log, http.StatusRequestEntityTooLarge, httpresponse.KindPayloadTooLarge,
					"request body exceeds "+strconv.Itoa(maxBodyBytes)+" bytes")
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			requestHash := hashBytes(body)
			key := storageKey(r, idempotencyKey)

			reqLog := log.With(
				logger.NewField("idempotency_key", idempotencyKey),
				logger.NewField("path", r.URL.Path),
			)

			stored, err := store.Get(r.Context(), key).Result()
			switch {
			case errors.Is(err, redis.Nil):
				// первый запрос с этим ключом
			case err != nil:
				// без Redis запрос выполняется без защиты от повтора
				reqLog.With(
					logger.NewField("error", err),
				).Warn("idempotency store unavailable")
				next.ServeHTTP(w, r)
				return
			default:
				var saved record
				if err := json.Unmarshal([]byte(stored), &saved); err != nil {
					httpresponse.WriteInternal(w, reqLog, err)
					return
				}
				if saved.RequestHash != requestHash {
					httpresponse.WriteError(w, log, http.StatusUnprocessableEntity, httpresponse.KindUnprocessable,
						"idempotency key reused with a different request body")
					return
				}
				reqLog.Debug("replaying stored response")
				writeStored(w, saved)
				return
			}

			capture := &responseCapture{ResponseWriter: w}
			next.ServeHTTP(capture, r)

			status := capture.statusCode()
			if status >= http.StatusInternalServerError {
				return
			}

			payload, err := json.Marshal(record{
				Status:      status,
				Body:        base64.StdEncoding.EncodeToString(capture.body.Bytes()),
				ContentType: capture.Header().Get("Content-Type"),
				RequestHash: requestHash,
			})
			if err != nil {
				reqLog.With(logger.NewField("error", err)).Error("marshal idempotency record")
				return
			}

			err = store.SetNX(r.Context(), key, string(payload), ttl).Err()
			if err != nil {
				reqLog.With(logger.NewField("error", err)).Error("persist idempotency record")
			}
		})
	}
}

// storageKey ключ привязан к владельцу запроса, методу и пути.
func storageKey(r *http.Request, idempotencyKey string) string {
	identity, _ := auth.IdentityFromContext(r.Context())
	scope := strings.Join([]string{
		string(identity.Role),
		identity.Subject,
		strconv.FormatInt(identity.DriverID, 10),
		strconv.FormatInt(identity.TenantID, 10),
		r.Method,
		r.URL.Path,
		idempotencyKey,
	}, "|")

	sum := sha256.Sum256([]byte(scope))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func writeStored(w http.ResponseWriter, saved record) {
	if saved.ContentType != "" {
		w.Header().Set("Content-Type", saved.ContentType)
	}
	w.Header().Set(headerReplay, "true")
	w.WriteHeader(saved.Status)

	decoded, err := base64.StdEncoding.DecodeString(saved.Body)
	if err == nil {
		_, _ = w.Write(decoded)
	}
}

func hashBytes(payload []byte) string {
	sum := sha256.Sum256(payload)
	return base64.StdEncoding.EncodeToString(sum[:])
}

type responseCapture struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (r *responseCapture) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseCapture) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) statusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}
