package auth

import (
	"net/http"
	"slices"
	"strings"

	pkgauth "pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/httpresponse"
	"pickup-service/pkg/logger"
)

const bearerPrefix = "bearer "

// Middleware проверяет bearer токен и кладет Identity в контекст запроса.
func Middleware(log handlerLogger, verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if len(raw) < len(bearerPrefix) || !strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
				w.Header().Set("WWW-Authenticate", "Bearer")
				httpresponse.WriteError(w, log, http.StatusUnauthorized, httpresponse.KindUnauthorized, pkgauth.ErrMissingToken.Error())
				return
			}

			identity, err := verifier.Parse(raw[len(bearerPrefix):])
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Debug("rejected bearer token")

				w.Header().Set("WWW-Authenticate", "Bearer")
				httpresponse.WriteError(w, log, http.StatusUnauthorized, httpresponse.KindUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(pkgauth.WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole пропускает только перечисленные роли, ставится после Middleware.
func RequireRole(log handlerLogger, roles ...pkgauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := pkgauth.IdentityFromContext(r.Context())
			if !ok {
				httpresponse.WriteError(w, log, http.StatusUnauthorized, httpresponse.KindUnauthorized, pkgauth.ErrMissingToken.Error())
				return
			}
			if !slices.Contains(roles, identity.Role) {
				httpresponse.WriteError(w, log, http.StatusForbidden, "authorization_denied", "role "+string(identity.Role)+" is not allowed here")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
