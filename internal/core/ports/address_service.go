package ports

import (
	"context"

	"github.com/adminhub/user-console/internal/core/domain"
)

// AddressInput carries the fields of an address create or update.
type AddressInput struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	Country      string
}

// AddressService defines use-case operations on addresses nested under a user.
// Every operation allows the owning user or an admin; ListAll is admin-only.
type AddressService interface {
	List(ctx context.Context, actor Actor, userID int64, query ListQuery) (*domain.Page[domain.Address], error)
	ListAll(ctx context.Context, actor Actor, query ListQuery) (*domain.Page[domain.Address], error)
	Get(ctx context.Context, actor Actor, userID, id int64) (*domain.Address, error)
	Create(ctx context.Context, actor Actor, userID int64, input AddressInput) (*domain.Address, error)
	Update(ctx context.Context, actor Actor, userID, id int64, input AddressInput) (*domain.Address, error)
	Delete(ctx context.Context, actor Actor, userID, id int64) error
}
