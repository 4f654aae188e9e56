package assignment

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"pickup-service/internal/entities"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	maxReasonLength = 500
	maxNotesLength  = 2000

	// final_price хранится как NUMERIC(12, 2)
	finalPriceScale = 2
)

var maxFinalPrice = decimal.New(1, 10)

var validate = validator.New(validator.WithRequiredStructEnabled())

func isValidPickupID(id string) bool {
	return validate.Var(id, "required,uuid") == nil
}

func isValidReason(reason string) bool {
	return validate.Var(strings.TrimSpace(reason), "required,max=500") == nil
}

func isValidNotes(notes string) bool {
	return validate.Var(notes, "max=2000") == nil
}

func isValidCustomerRequestID(id string) bool {
	return validate.Var(strings.TrimSpace(id), "required,max=128,printascii") == nil
}

func isValidAddress(address string) bool {
	return validate.Var(strings.TrimSpace(address), "required,max=500") == nil
}

func isValidVehicleInfo(info string) bool {
	return validate.Var(info, "max=500") == nil
}

func isKnownStatus(status entities.PickupStatusType) bool {
	switch status {
	case entities.PickupPending,
		entities.PickupScheduled,
		entities.PickupAssigned,
		entities.PickupInProgress,
		entities.PickupCompleted,
		entities.PickupCanceled:
		return true
	default:
		return false
	}
}

func normalizeLimit(limit int) (uint64, error) {
	if limit == 0 {
		return defaultListLimit, nil
	}
	if limit < 1 || limit > maxListLimit {
		return 0, ErrInvalidLimit
	}
	return uint64(limit), nil
}

func validateStatusChange(change entities.StatusChange) error {
	if !isKnownStatus(change.NewStatus) {
		return ErrInvalidStatus
	}
	if change.Notes != nil && !isValidNotes(*change.Notes) {
		return ErrInvalidNotes
	}

	if change.NewStatus != entities.PickupCompleted {
		if change.FinalPrice != nil {
			return ErrUnexpectedFinalPrice
		}
		return nil
	}

	if change.FinalPrice == nil {
		return ErrFinalPriceRequired
	}
	if !isValidFinalPrice(*change.FinalPrice) {
		return ErrInvalidFinalPrice
	}
	return nil
}

// isValidFinalPrice цена должна лечь в колонку без округления.
func isValidFinalPrice(price decimal.Decimal) bool {
	return price.GreaterThan(decimal.Zero) &&
		price.LessThan(maxFinalPrice) &&
		price.Equal(price.Round(finalPriceScale))
}

func validatePickupCreate(create entities.PickupCreate) error {
	if create.TenantID <= 0 {
		return ErrInvalidTenantID
	}
	if !isValidCustomerRequestID(create.CustomerRequestID) {
		return ErrInvalidCustomerRequestID
	}
	if !isValidAddress(create.PickupAddress) {
		return ErrInvalidAddress
	}
	if !isValidVehicleInfo(create.VehicleInfo) {
		return ErrInvalidVehicleInfo
	}
	return nil
}
