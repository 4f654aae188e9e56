package driver

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidDriverID       = fmt.Errorf("%w: invalid driver id", ErrValidation)
	ErrInvalidTenantID       = fmt.Errorf("%w: invalid tenant id", ErrValidation)
	ErrInvalidName           = fmt.Errorf("%w: invalid name", ErrValidation)
	ErrInvalidPhone          = fmt.Errorf("%w: phone must be in E.164 format", ErrValidation)
	ErrInvalidStatus         = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidReason         = fmt.Errorf("%w: reason is too long", ErrValidation)
	ErrInvalidThreshold      = fmt.Errorf("%w: threshold must be positive", ErrValidation)

	ErrDriverNotFound = errors.New("driver not found")
	ErrTenantNotFound = errors.New("tenant not found")
	ErrConflict       = errors.New("resource already exists")

	ErrTransient = errors.New("temporary failure, retry later")

	ErrForbidden      = errors.New("operation is not allowed for this actor")
	ErrDriverInactive = fmt.Errorf("%w: driver is inactive", ErrForbidden)
)
