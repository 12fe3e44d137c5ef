package apiclient

import (
	"context"
	"fmt"
	"net/http"
)

// UsersClient wraps the /api/users endpoints.
type UsersClient struct {
	c *Client
}

// CreateUserInput carries the fields for an admin-created account.
type CreateUserInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
}

// UpdateUserInput carries the mutable account fields.
type UpdateUserInput struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles,omitempty"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

// List fetches one page of users.
func (u *UsersClient) List(ctx context.Context, opts ListOptions) (*Page[User], error) {
	var page Page[User]
	if err := u.c.do(ctx, http.MethodGet, "/api/users", opts.values(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches a single user by id.
func (u *UsersClient) Get(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := u.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create provisions a new account.
func (u *UsersClient) Create(ctx context.Context, input CreateUserInput) (*User, error) {
	var user User
	if err := u.c.do(ctx, http.MethodPost, "/api/users", nil, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update changes an account's name, email, and roles.
func (u *UsersClient) Update(ctx context.Context, id int64, input UpdateUserInput) (*User, error) {
	var user User
	if err := u.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d", id), nil, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces an account's password.
func (u *UsersClient) UpdatePassword(ctx context.Context, id int64, password string) error {
	return u.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/users/%d/password", id), nil, passwordRequest{Password: password}, nil)
}

// Delete removes an account.
func (u *UsersClient) Delete(ctx context.Context, id int64) error {
	return u.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil, nil)
}
