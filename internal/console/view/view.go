// Package view holds the console's controllers: the state and behavior of
// each screen, decoupled from any rendering. Views compose the API clients,
// the session store, and the notification store into one CRUD workflow each.
package view

import (
	"context"
	"errors"

	"github.com/adminhub/user-console/internal/infrastructure/cep"
	"github.com/adminhub/user-console/pkg/apiclient"
)

// pageSize is fixed across every list view.
const pageSize = 10

// UserAPI is the slice of the API client the user views need.
type UserAPI interface {
	List(ctx context.Context, opts apiclient.ListOptions) (*apiclient.Page[apiclient.User], error)
	Get(ctx context.Context, id int64) (*apiclient.User, error)
	Create(ctx context.Context, input apiclient.CreateUserInput) (*apiclient.User, error)
	Update(ctx context.Context, id int64, input apiclient.UpdateUserInput) (*apiclient.User, error)
	UpdatePassword(ctx context.Context, id int64, password string) error
	Delete(ctx context.Context, id int64) error
}

// AddressAPI is the slice of the API client the address views need.
type AddressAPI interface {
	List(ctx context.Context, userID int64, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error)
	ListAll(ctx context.Context, opts apiclient.ListOptions) (*apiclient.Page[apiclient.Address], error)
	Get(ctx context.Context, userID, id int64) (*apiclient.Address, error)
	Create(ctx context.Context, userID int64, input apiclient.AddressInput) (*apiclient.Address, error)
	Update(ctx context.Context, userID, id int64, input apiclient.AddressInput) (*apiclient.Address, error)
	Delete(ctx context.Context, userID, id int64) error
}

// SignupAPI registers new accounts.
type SignupAPI interface {
	Signup(ctx context.Context, input apiclient.SignupInput) (*apiclient.User, error)
}

// CEPLookup resolves a postal code to address data.
type CEPLookup interface {
	Lookup(ctx context.Context, raw string) (*cep.Info, error)
}

// errorMessage extracts the server-provided message from an API failure, or
// falls back to a generic one for transport errors.
func errorMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
