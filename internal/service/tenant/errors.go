package tenant

import "errors"

var (
	ErrInvalidName = errors.New("invalid tenant name")
	ErrForbidden   = errors.New("tenant administration requires a global administrator")
	ErrConflict    = errors.New("tenant already exists")
)
