package apiclient

import (
	"context"
	"net/http"
)

// AuthClient wraps the /api/auth endpoints.
type AuthClient struct {
	c *Client
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupInput carries the data for self-registration.
type SignupInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
}

// Login exchanges credentials for a token plus the account profile.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := a.c.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Signup registers a new account.
func (a *AuthClient) Signup(ctx context.Context, input SignupInput) (*User, error) {
	var user User
	if err := a.c.do(ctx, http.MethodPost, "/api/auth/signup", nil, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout revokes the current token server-side. The bearer token comes from
// the client's token source.
func (a *AuthClient) Logout(ctx context.Context) error {
	return a.c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}
