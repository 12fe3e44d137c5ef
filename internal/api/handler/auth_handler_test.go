package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/adminhub/user-console/internal/core/domain"
	"github.com/adminhub/user-console/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, input ports.SignupInput) (*domain.User, error)
	loginFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
	logoutFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		signupFn: func(_ context.Context, input ports.SignupInput) (*domain.User, error) {
			if input.Name != "Alice" || input.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 1, Name: input.Name, Email: input.Email, Roles: []string{domain.RoleUser}}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(e, http.MethodPost, "/api/auth/signup",
		jsonBody(`{"name":"Alice","email":"alice@example.com","password":"hunter2"}`), 0)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	data := assertSuccess(t, rec, http.StatusCreated)
	user, ok := data.(map[string]any)
	if !ok {
		t.Fatalf("expected user in data")
	}
	if user["email"] != "alice@example.com" || user["id"] != float64(1) {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Signup_ValidationFailure(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	// Password below minimum length.
	c, _ := newContext(e, http.MethodPost, "/api/auth/signup",
		jsonBody(`{"name":"Alice","email":"alice@example.com","password":"abc"}`), 0)

	err := h.Signup(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	if httpCode(t, err) != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newContext(e, http.MethodPost, "/api/auth/signup",
		jsonBody(`{"name":"Bob","email":"bob@example.com","password":"hunter2"}`), 0)

	if err := h.Signup(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "hunter2" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{ID: 1, Name: "Alice", Email: email, Roles: []string{domain.RoleAdmin}}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(e, http.MethodPost, "/api/auth/login",
		jsonBody(`{"email":"alice@example.com","password":"hunter2"}`), 0)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	data := assertSuccess(t, rec, http.StatusOK)
	payload, ok := data.(map[string]any)
	if !ok {
		t.Fatalf("expected login payload")
	}
	if payload["token"] != "token123" {
		t.Fatalf("missing token: %+v", payload)
	}
	if payload["email"] != "alice@example.com" || payload["id"] != float64(1) {
		t.Fatalf("unexpected login payload: %+v", payload)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newContext(e, http.MethodPost, "/api/auth/login",
		jsonBody(`{"email":"alice@example.com","password":"wrong"}`), 0)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newEcho()
	var revoked string
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(e, http.MethodPost, "/api/auth/logout", nil, 0)
	c.Request().Header.Set("Authorization", "Bearer token123")

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if revoked != "token123" {
		t.Fatalf("expected token passed to service, got %q", revoked)
	}
	assertSuccess(t, rec, http.StatusOK)
}

func TestAuthHandler_Logout_NoToken(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		logoutFn: func(context.Context, string) error {
			t.Fatalf("should not be called without a bearer token")
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newContext(e, http.MethodPost, "/api/auth/logout", nil, 0)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertSuccess(t, rec, http.StatusOK)
}
