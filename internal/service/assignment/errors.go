package assignment

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок, по ним handlers и метрики определяют категорию.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("pickup is no longer available")
	ErrNotOwner            = errors.New("pickup is not assigned to this driver")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrTerminal            = errors.New("pickup is completed or canceled")
	ErrAuthorizationDenied = errors.New("authorization denied")
	ErrTransient           = errors.New("temporary failure, retry later")
)

var (
	ErrInvalidPickupID          = fmt.Errorf("%w: invalid pickup id", ErrValidation)
	ErrInvalidTenantID          = fmt.Errorf("%w: invalid tenant id", ErrValidation)
	ErrInvalidLimit             = fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, maxListLimit)
	ErrInvalidStatus            = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidReason            = fmt.Errorf("%w: reason is required and must be at most %d characters", ErrValidation, maxReasonLength)
	ErrInvalidNotes             = fmt.Errorf("%w: notes must be at most %d characters", ErrValidation, maxNotesLength)
	ErrFinalPriceRequired       = fmt.Errorf("%w: final price is required to complete a pickup", ErrValidation)
	ErrInvalidFinalPrice        = fmt.Errorf("%w: final price must be positive, below 10000000000 and have at most 2 decimal places", ErrValidation)
	ErrUnexpectedFinalPrice     = fmt.Errorf("%w: final price is accepted only on completion", ErrValidation)
	ErrInvalidCustomerRequestID = fmt.Errorf("%w: invalid customer request id", ErrValidation)
	ErrInvalidAddress           = fmt.Errorf("%w: pickup address is required", ErrValidation)
	ErrInvalidVehicleInfo       = fmt.Errorf("%w: vehicle info is too long", ErrValidation)

	ErrPickupNotFound = fmt.Errorf("%w: pickup", ErrNotFound)
	ErrDriverNotFound = fmt.Errorf("%w: driver", ErrNotFound)
	ErrTenantNotFound = fmt.Errorf("%w: tenant", ErrNotFound)

	ErrDriverInactive = fmt.Errorf("%w: driver is inactive", ErrAuthorizationDenied)
	ErrWrongTenant    = fmt.Errorf("%w: resource belongs to another tenant", ErrAuthorizationDenied)
	ErrWrongActor     = fmt.Errorf("%w: operation is not allowed for this actor", ErrAuthorizationDenied)
)

const (
	KindValidation          = "validation"
	KindNotFound            = "not_found"
	KindConflict            = "conflict"
	KindNotOwner            = "not_owner"
	KindIllegalTransition   = "illegal_transition"
	KindTerminal            = "terminal"
	KindAuthorizationDenied = "authorization_denied"
	KindTransient           = "transient"
	KindInternal            = "internal"
)

// Kind категория ошибки из таксономии сервиса, для неизвестных ошибок KindInternal.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrNotOwner):
		return KindNotOwner
	case errors.Is(err, ErrIllegalTransition):
		return KindIllegalTransition
	case errors.Is(err, ErrTerminal):
		return KindTerminal
	case errors.Is(err, ErrAuthorizationDenied):
		return KindAuthorizationDenied
	case errors.Is(err, ErrTransient):
		return KindTransient
	default:
		return KindInternal
	}
}
