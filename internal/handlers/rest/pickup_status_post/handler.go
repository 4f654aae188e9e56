package pickup_status_post

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		httpresponse.WriteUnauthorized(w, h.log)
		return
	}

	var changeDTO dto.StatusChangeRequest
	err := json.NewDecoder(r.Body).Decode(&changeDTO)
	if err != nil {
		httpresponse.WriteBadRequest(w, h.log, "invalid JSON body")
		return
	}

	change := entities.StatusChange{
		NewStatus: entities.PickupStatusType(changeDTO.Status),
		Notes:     changeDTO.Notes,
	}
	// цена строкой, чтобы не терять копейки на float
	if changeDTO.FinalPrice != nil {
		price, err := decimal.NewFromString(*changeDTO.FinalPrice)
		if err != nil {
			httpresponse.WriteBadRequest(w, h.log, "final_price must be a decimal number")
			return
		}
		change.FinalPrice = &price
	}

	pickupID := mux.Vars(r)["id"]
	result, err := h.service.AdvanceStatus(r.Context(), actor, pickupID, change)
	if err != nil {
		httpresponse.WriteAssignmentError(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("pickup_id", result.Pickup.ID),
		logger.NewField("status", result.Pickup.Status.String()),
		logger.NewField("driver_id", actor.DriverID),
	).Info("pickup status advanced")

	httpresponse.WriteJSON(w, h.log, http.StatusOK, converters.ResultToDTO(result))
}
