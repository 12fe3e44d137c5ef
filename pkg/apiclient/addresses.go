package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// AddressesClient wraps the per-user /api/users/{id}/addresses endpoints and
// the admin-wide /api/addresses listing.
type AddressesClient struct {
	c *Client
}

// List fetches one page of a user's addresses.
func (a *AddressesClient) List(ctx context.Context, userID int64, opts ListOptions) (*Page[Address], error) {
	var page Page[Address]
	path := fmt.Sprintf("/api/users/%d/addresses", userID)
	if err := a.c.do(ctx, http.MethodGet, path, opts.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAll fetches one page across every user's addresses. Admin only.
func (a *AddressesClient) ListAll(ctx context.Context, opts ListOptions) (*Page[Address], error) {
	var page Page[Address]
	if err := a.c.do(ctx, http.MethodGet, "/api/addresses", opts.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single address scoped to its owner.
func (a *AddressesClient) Get(ctx context.Context, userID, id int64) (*Address, error) {
	var address Address
	path := fmt.Sprintf("/api/users/%d/addresses/%d", userID, id)
	if err := a.c.do(ctx, http.MethodGet, path, nil, nil, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// Create adds an address under the given user.
func (a *AddressesClient) Create(ctx context.Context, userID int64, input AddressInput) (*Address, error) {
	var address Address
	path := fmt.Sprintf("/api/users/%d/addresses", userID)
	if err := a.c.do(ctx, http.MethodPost, path, nil, input, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// Update replaces the fields of an existing address.
func (a *AddressesClient) Update(ctx context.Context, userID, id int64, input AddressInput) (*Address, error) {
	var address Address
	path := fmt.Sprintf("/api/users/%d/addresses/%d", userID, id)
	if err := a.c.do(ctx, http.MethodPut, path, nil, input, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// Delete removes an address.
func (a *AddressesClient) Delete(ctx context.Context, userID, id int64) error {
	path := fmt.Sprintf("/api/users/%d/addresses/%d", userID, id)
	return a.c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
