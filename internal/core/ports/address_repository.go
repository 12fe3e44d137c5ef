package ports

import (
	"context"

	"github.com/adminhub/user-console/internal/core/domain"
)

// AddressRepository defines persistence for user addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) (*domain.Address, error)
	// FindByID retrieves an address by id. When userID > 0 the address must
	// also belong to that user.
	FindByID(ctx context.Context, userID, id int64) (*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) (*domain.Address, error)
	Delete(ctx context.Context, userID, id int64) error
	// ListByUser pages through one user's addresses.
	ListByUser(ctx context.Context, userID int64, query ListQuery) (*domain.Page[domain.Address], error)
	// ListAll pages through every address regardless of owner.
	ListAll(ctx context.Context, query ListQuery) (*domain.Page[domain.Address], error)
	// DeleteByUser removes all addresses owned by a user.
	DeleteByUser(ctx context.Context, userID int64) error
}
