package driver_get

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"pickup-service/internal/handlers/rest/converters"
	"pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/httpresponse"
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

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		httpresponse.WriteBadRequest(w, h.log, "driver id must be an integer")
		return
	}

	driverEntity, err := h.service.GetDriver(r.Context(), actor, id)
	if err != nil {
		httpresponse.WriteDriverError(w, h.log, err)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.DriverToDTO(driverEntity))
}
