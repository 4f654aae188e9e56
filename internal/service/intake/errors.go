package intake

import "errors"

var (
	ErrInvalidEvent     = errors.New("pickup request id, tenant and status are required")
	ErrUndefinedStatus  = errors.New("undefined pickup request status")
	ErrAlreadyProcessed = errors.New("pickup request already processed")
)
