package driver_put

import (
	"encoding/json"
	"net/http"

	"pickup-service/internal/entities"
	"pickup-service/internal/generated/dto"
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

// ServeHTTP частичное обновление, отсутствующие поля не меняются.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	var driverUpdateDTO dto.DriverUpdate
	err := json.NewDecoder(r.Body).Decode(&driverUpdateDTO)
	if err != nil {
		httpresponse.WriteBadRequest(w, h.log, "invalid JSON body")
		return
	}

	driverModifyEntity := entities.DriverModify{
		ID:       &driverUpdateDTO.ID,
		TenantID: driverUpdateDTO.TenantID,
		Name:     driverUpdateDTO.Name,
		Phone:    driverUpdateDTO.Phone,
	}
	if driverUpdateDTO.Status != nil {
		statusType := entities.DriverStatusType(*driverUpdateDTO.Status)
		driverModifyEntity.Status = &statusType
	}

	updated, err := h.service.UpdateDriver(r.Context(), actor, driverModifyEntity)
	if err != nil {
		httpresponse.WriteDriverError(w, h.log, err)
		return
	}

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.DriverToDTO(updated))
}
