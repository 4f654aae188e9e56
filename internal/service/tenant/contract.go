//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tenant_test
package tenant

import (
	"context"

	"pickup-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, name string) (*entities.Tenant, error)
	GetAll(ctx context.Context) ([]entities.Tenant, error)
}
