package auth

import (
	"context"
	"errors"

	"brickvest-backend/internal/domain/user"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Principal is the authenticated caller as asserted by the auth collaborator
// (JWT middleware). Every mutating usecase takes one.
type Principal struct {
	UserID string
	Role   user.Role
}

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	if !ok || p.UserID == "" {
		return Principal{}, ErrUnauthorized
	}
	return p, nil
}

// RequireAdmin gates admin-only operations. The role set is closed; anything
// outside it is rejected rather than ignored.
func RequireAdmin(p Principal) error {
	switch p.Role {
	case user.RoleAdmin:
		return nil
	case user.RoleInvestor, user.RoleLender:
		return ErrForbidden
	default:
		return ErrForbidden
	}
}

func RequireRole(p Principal, want user.Role) error {
	if p.Role != want {
		return ErrForbidden
	}
	return nil
}
