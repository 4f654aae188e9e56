package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"pickup-service/internal/entities"
)

type Role string

const (
	RoleDriver Role = "driver"
	RoleAdmin  Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleDriver || r == RoleAdmin
}

// Claims токен выпускает внешний провайдер, сервис только проверяет подпись и издателя.
type Claims struct {
	Role     Role  `json:"role"`
	DriverID int64 `json:"driver_id,omitempty"`
	TenantID int64 `json:"tenant_id,omitempty"`
	jwt.RegisteredClaims
}

// Identity проверенный владелец запроса.
type Identity struct {
	Subject  string
	Role     Role
	DriverID int64
	TenantID int64
}

// Actor явный актор для вызовов сервисов.
func (i Identity) Actor() entities.Actor {
	if i.Role == RoleDriver {
		return entities.DriverActor(i.DriverID, i.TenantID)
	}
	return entities.AdminActor(i.TenantID)
}
