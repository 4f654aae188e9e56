//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	pkgauth "pickup-service/internal/pkg/auth"
	"pickup-service/pkg/logger"
)

type Verifier interface {
	Parse(tokenString string) (pkgauth.Identity, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
