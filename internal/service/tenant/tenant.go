package tenant

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"pickup-service/internal/entities"
)

var validate = validator.New()

type Tenant struct {
	repository Repository
}

func New(repository Repository) *Tenant {
	return &Tenant{
		repository: repository,
	}
}

// CreateTenant доступно только админу без привязки к тенанту.
func (s *Tenant) CreateTenant(ctx context.Context, actor entities.Actor, name string) (*entities.Tenant, error) {
	if !isGlobalAdmin(actor) {
		return nil, ErrForbidden
	}

	name = strings.TrimSpace(name)
	if validate.Var(name, "required,max=200") != nil {
		return nil, ErrInvalidName
	}

	tenant, err := s.repository.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}
	return tenant, nil
}

func (s *Tenant) GetTenants(ctx context.Context, actor entities.Actor) ([]entities.Tenant, error) {
	if !isGlobalAdmin(actor) {
		return nil, ErrForbidden
	}

	tenants, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenants: %w", err)
	}
	return tenants, nil
}

func isGlobalAdmin(actor entities.Actor) bool {
	return actor.Type == entities.ActorAdmin && actor.TenantID == 0
}
