package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/user-console/internal/api/metrics"
	"github.com/adminhub/user-console/internal/core/ports"
)

// UserHandler handles HTTP requests for user account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns a page of users. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "Zero-based page number"
// @Param        size       query     int     false  "Page size (default 10, max 100)"
// @Param        sortBy     query     string  false  "Sort field: name, email, createdAt"
// @Param        direction  query     string  false  "asc or desc"
// @Param        search     query     string  false  "Substring match on name or email"
// @Success      200        {object}  envelope
// @Failure      403        {object}  envelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), actor, listQuery(c))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "users retrieved", mapPage(page, toUserResponse))
}

// Get returns a single user. Owner or admin.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  envelope{data=userResponse}
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "user retrieved", toUserResponse(user))
}

// Create provisions a new account. Admin only.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  envelope{data=userResponse}
// @Failure      400   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), actor, ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "created").Inc()
	return respond(c, http.StatusCreated, "user created", toUserResponse(user))
}

// Update changes name, email, and (admin only) roles. Owner or admin.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Updated fields"
// @Success      200   {object}  envelope{data=userResponse}
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), actor, id, ports.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Roles: req.Roles,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "updated").Inc()
	return respond(c, http.StatusOK, "user updated", toUserResponse(user))
}

// UpdatePassword replaces the account password. Owner or admin.
//
// @Summary      Change a user's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "User id"
// @Param        body  body      updatePasswordRequest  true  "New password"
// @Success      200   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /users/{id}/password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdatePassword(c.Request().Context(), actor, id, req.Password); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "updated").Inc()
	return respond(c, http.StatusOK, "password updated", nil)
}

// Delete removes an account and its addresses. Admin only; self-delete is
// rejected by the service.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "deleted").Inc()
	return respond(c, http.StatusOK, "user deleted", nil)
}
