package tenant_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"pickup-service/internal/generated/dto"
	"pickup-service/internal/handlers/rest/converters"
	"pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/httpresponse"
	"pickup-service/internal/service/assignment"
	"pickup-service/internal/service/tenant"
	"pickup-service/pkg/logger"
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

	var tenantDTO dto.TenantCreate
	err := json.NewDecoder(r.Body).Decode(&tenantDTO)
	if err != nil {
		httpresponse.WriteBadRequest(w, h.log, "invalid JSON body")
		return
	}

	created, err := h.service.CreateTenant(r.Context(), actor, tenantDTO.Name)
	if err != nil {
		switch {
		case errors.Is(err, tenant.ErrInvalidName):
			httpresponse.WriteError(w, h.log, http.StatusBadRequest, assignment.KindValidation, err.Error())
		case errors.Is(err, tenant.ErrForbidden):
			httpresponse.WriteError(w, h.log, http.StatusForbidden, assignment.KindAuthorizationDenied, err.Error())
		case errors.Is(err, tenant.ErrConflict):
			httpresponse.WriteError(w, h.log, http.StatusConflict, assignment.KindConflict, err.Error())
		default:
			httpresponse.WriteInternal(w, h.log, err)
		}
		return
	}

	h.log.With(
		logger.NewField("tenant_id", created.ID),
	).Info("tenant created")

	httpresponse.WriteJSON(w, h.log, http.StatusCreated, converters.TenantToDTO(created))
}
