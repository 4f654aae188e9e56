package auth

import (
	"context"

	"pickup-service/internal/entities"
)

type (
	contextKey struct{}
	slotKey    struct{}
)

// IdentitySlot заполняется при WithIdentity ниже по цепочке и виден внешним middleware.
type IdentitySlot struct {
	identity Identity
	set      bool
}

func (s *IdentitySlot) Identity() (Identity, bool) {
	return s.identity, s.set
}

func WithIdentitySlot(ctx context.Context) (context.Context, *IdentitySlot) {
	slot := &IdentitySlot{}
	return context.WithValue(ctx, slotKey{}, slot), slot
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	if slot, ok := ctx.Value(slotKey{}).(*IdentitySlot); ok {
		slot.identity = identity
		slot.set = true
	}
	return context.WithValue(ctx, contextKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(Identity)
	return identity, ok
}

// ActorFromContext актор проверенного владельца запроса.
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return entities.Actor{}, false
	}
	return identity.Actor(), true
}
