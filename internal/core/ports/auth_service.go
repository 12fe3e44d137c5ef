package ports

import (
	"context"

	"github.com/adminhub/user-console/internal/core/domain"
)

// SignupInput carries the data needed to register an account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	// Roles defaults to {ROLE_USER} when empty. Only seeding and admin flows
	// pass anything else.
	Roles []string
}

// AuthService implements registration, login, and logout.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the given token until its natural expiry.
	Logout(ctx context.Context, token string) error
}
