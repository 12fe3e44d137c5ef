package handler

import "time"

type createUserRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Email    string   `json:"email"    validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Roles    []string `json:"roles"    validate:"omitempty,dive,oneof=ROLE_USER ROLE_ADMIN"`
}

type updateUserRequest struct {
	Name  string   `json:"name"  validate:"required"`
	Email string   `json:"email" validate:"required,email"`
	Roles []string `json:"roles" validate:"omitempty,dive,oneof=ROLE_USER ROLE_ADMIN"`
}

type updatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// Response-only types owned by the transport layer. Intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
