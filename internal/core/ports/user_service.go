package ports

import (
	"context"

	"github.com/adminhub/user-console/internal/core/domain"
)

// Actor is the authenticated identity performing an operation, extracted from
// the verified token claims.
type Actor struct {
	ID    int64
	Roles []string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	for _, r := range a.Roles {
		if r == domain.RoleAdmin {
			return true
		}
	}
	return false
}

// CreateUserInput carries the data for an admin-created account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Roles    []string
}

// UpdateUserInput carries the mutable user fields.
type UpdateUserInput struct {
	Name  string
	Email string
	Roles []string
}

// UserService defines use-case operations on user accounts. Ownership rules:
// list, create, and delete are admin-only; get and update allow the owner or
// an admin.
type UserService interface {
	List(ctx context.Context, actor Actor, query ListQuery) (*domain.Page[domain.User], error)
	Get(ctx context.Context, actor Actor, id int64) (*domain.User, error)
	Create(ctx context.Context, actor Actor, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor Actor, id int64, input UpdateUserInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, actor Actor, id int64, password string) error
	Delete(ctx context.Context, actor Actor, id int64) error
}
