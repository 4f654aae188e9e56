package tenants_get

import (
	"errors"
	"net/http"

	"pickup-service/internal/handlers/rest/converters"
	"pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/httpresponse"
	"pickup-service/internal/service/assignment"
	"pickup-service/internal/service/tenant"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	tenants, err := h.service.GetTenants(r.Context(), actor)
	if err != nil {
		if errors.Is(err, tenant.ErrForbidden) {
			httpresponse.WriteError(w, h.log, http.StatusForbidden, assignment.KindAuthorizationDenied, err.Error())
			return
		}
		httpresponse.WriteInternal(w, h.log, err)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.TenantsToDTO(tenants))
}
