package driver_post

import (
	"encoding/json"
	"net/http"

	"pickup-service/internal/entities"
	"pickup-service/internal/generated/dto"
	"pickup-service/internal/pkg/auth"
	"pickup-service/internal/pkg/httpresponse"
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

	var driverCreateDTO dto.DriverCreate
	err := json.NewDecoder(r.Body).Decode(&driverCreateDTO)
	if err != nil {
		httpresponse.WriteBadRequest(w, h.log, "invalid JSON body")
		return
	}

	driverModifyEntity := entities.DriverModify{
		TenantID: &driverCreateDTO.TenantID,
		Name:     &driverCreateDTO.Name,
		Phone:    &driverCreateDTO.Phone,
	}
	// без статуса сервис ставит offline
	if driverCreateDTO.Status != nil {
		statusType := entities.DriverStatusType(*driverCreateDTO.Status)
		driverModifyEntity.Status = &statusType
	}

	id, err := h.service.CreateDriver(r.Context(), actor, driverModifyEntity)
	if err != nil {
		httpresponse.WriteDriverError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("driver_id", id),
		logger.NewField("tenant_id", driverCreateDTO.TenantID),
	).Info("driver created")

	httpresponse.WriteJSON(w, h.log, http.StatusCreated, dto.DriverCreateResponse{ID: id})
}
