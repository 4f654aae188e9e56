package pickup_post

import (
	"encoding/json"
	"net/http"

	"pickup-service/internal/entities"
	"pickup-service/internal/generated/dto"
	"pickup-service/internal/handlers/rest/converters"
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

// ServeHTTP tenant_id в теле нужен только админу без своего тенанта.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	var createDTO dto.PickupCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		httpresponse.WriteBadRequest(w, h.log, "invalid JSON body")
		return
	}

	tenantID := actor.TenantID
	if createDTO.TenantID != nil {
		tenantID = *createDTO.TenantID
	}

	result, err := h.service.CreatePickup(r.Context(), actor, entities.PickupCreate{
		TenantID:          tenantID,
		CustomerRequestID: createDTO.CustomerRequestID,
		PickupAddress:     createDTO.PickupAddress,
		VehicleInfo:       createDTO.VehicleInfo,
		ScheduledAt:       createDTO.ScheduledAt,
	})
	if err != nil {
		httpresponse.WriteAssignmentError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("pickup_id", result.Pickup.ID),
		logger.NewField("tenant_id", result.Pickup.TenantID),
		logger.NewField("customer_request_id", result.Pickup.CustomerRequestID),
	).Info("pickup created")

	httpresponse.WriteJSON(w, h.log, http.StatusCreated, converters.ResultToDTO(result))
}
