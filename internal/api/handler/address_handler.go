package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/user-console/internal/api/metrics"
	"github.com/adminhub/user-console/internal/core/ports"
)

// AddressHandler handles HTTP requests for addresses nested under a user.
type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

func (h *AddressHandler) input(req addressRequest) ports.AddressInput {
	return ports.AddressInput{
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
	}
}

// List returns a page of one user's addresses. Owner or admin.
//
// @Summary      List a user's addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        userId     path      int     true   "Owning user id"
// @Param        page       query     int     false  "Zero-based page number"
// @Param        size       query     int     false  "Page size (default 10, max 100)"
// @Param        sortBy     query     string  false  "Sort field: street, city, state, zipCode, createdAt"
// @Param        direction  query     string  false  "asc or desc"
// @Param        search     query     string  false  "Substring match on street, city, neighborhood, or zip code"
// @Success      200        {object}  envelope
// @Failure      403        {object}  envelope
// @Router       /users/{userId}/addresses [get]
func (h *AddressHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	page, err := h.service.List(c.Request().Context(), actor, userID, listQuery(c))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "addresses retrieved", mapPage(page, toAddressResponse))
}

// ListAll returns a page across every user's addresses. Admin only.
//
// @Summary      List all addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int     false  "Zero-based page number"
// @Param        size       query     int     false  "Page size (default 10, max 100)"
// @Param        sortBy     query     string  false  "Sort field: street, city, state, zipCode, createdAt"
// @Param        direction  query     string  false  "asc or desc"
// @Param        search     query     string  false  "Substring match on street, city, neighborhood, or zip code"
// @Success      200        {object}  envelope
// @Failure      403        {object}  envelope
// @Router       /addresses [get]
func (h *AddressHandler) ListAll(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	page, err := h.service.ListAll(c.Request().Context(), actor, listQuery(c))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "addresses retrieved", mapPage(page, toAddressResponse))
}

// Get returns a single address scoped to its owner. Owner or admin.
//
// @Summary      Get an address
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "Owning user id"
// @Param        id      path      int  true  "Address id"
// @Success      200     {object}  envelope{data=addressResponse}
// @Failure      403     {object}  envelope
// @Failure      404     {object}  envelope
// @Router       /users/{userId}/addresses/{id} [get]
func (h *AddressHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	address, err := h.service.Get(c.Request().Context(), actor, userID, id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "address retrieved", toAddressResponse(address))
}

// Create adds an address under the given user. Owner or admin.
//
// @Summary      Create an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int             true  "Owning user id"
// @Param        body    body      addressRequest  true  "Address details"
// @Success      201     {object}  envelope{data=addressResponse}
// @Failure      400     {object}  envelope
// @Failure      403     {object}  envelope
// @Router       /users/{userId}/addresses [post]
func (h *AddressHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.service.Create(c.Request().Context(), actor, userID, h.input(req))
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("address", "created").Inc()
	return respond(c, http.StatusCreated, "address created", toAddressResponse(address))
}

// Update replaces the fields of an existing address. Owner or admin.
//
// @Summary      Update an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int             true  "Owning user id"
// @Param        id      path      int             true  "Address id"
// @Param        body    body      addressRequest  true  "Updated fields"
// @Success      200     {object}  envelope{data=addressResponse}
// @Failure      403     {object}  envelope
// @Failure      404     {object}  envelope
// @Router       /users/{userId}/addresses/{id} [put]
func (h *AddressHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	address, err := h.service.Update(c.Request().Context(), actor, userID, id, h.input(req))
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("address", "updated").Inc()
	return respond(c, http.StatusOK, "address updated", toAddressResponse(address))
}

// Delete removes an address scoped to its owner. Owner or admin.
//
// @Summary      Delete an address
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "Owning user id"
// @Param        id      path      int  true  "Address id"
// @Success      200     {object}  envelope
// @Failure      403     {object}  envelope
// @Failure      404     {object}  envelope
// @Router       /users/{userId}/addresses/{id} [delete]
func (h *AddressHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, userID, id); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("address", "deleted").Inc()
	return respond(c, http.StatusOK, "address deleted", nil)
}
