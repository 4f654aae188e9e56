package entities

import "time"

// Tenant организация (скрапъярд), в рамках которой изолированы водители и заявки.
type Tenant struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
