package drivers_get

import (
	"net/http"
	"strconv"

	"pickup-service/internal/handlers/rest/converters"
	"pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/httpresponse"
)

const tenantParam = "tenant_id"

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

// ServeHTTP без tenant_id список тенанта админа, у глобального админа все водители.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	var tenantID int64
	if raw := r.URL.Query().Get(tenantParam); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpresponse.WriteBadRequest(w, h.log, "tenant_id must be an integer")
			return
		}
		tenantID = parsed
	}

	drivers, err := h.service.GetDrivers(r.Context(), actor, tenantID)
	if err != nil {
		httpresponse.WriteDriverError(w, h.log, err)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.DriversToDTO(drivers))
}
