package driver

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"pickup-service/internal/entities"
)

var validate = validator.New()

func isValidName(name string) bool {
	return validate.Var(strings.TrimSpace(name), "required,max=200") == nil
}

func isValidPhone(phone string) bool {
	return validate.Var(phone, "required,e164") == nil
}

func isValidReason(reason string) bool {
	return validate.Var(reason, "max=500") == nil
}

func isValidStatus(status entities.DriverStatusType) bool {
	switch status {
	case entities.DriverAvailable,
		entities.DriverOnJob,
		entities.DriverBreak,
		entities.DriverOffline,
		entities.DriverInactive,
		entities.DriverBusy:
		return true
	default:
		return false
	}
}

// isSelfServiceStatus статусы, которые водитель выставляет себе сам. inactive только через админа.
func isSelfServiceStatus(status entities.DriverStatusType) bool {
	return isValidStatus(status) && status != entities.DriverInactive
}

// releasableStatuses статусы, из которых водитель без heartbeat переводится в offline.
var releasableStatuses = []entities.DriverStatusType{
	entities.DriverAvailable,
	entities.DriverBusy,
	entities.DriverOnJob,
	entities.DriverBreak,
}
