package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adminhub/user-console/internal/core/ports"
)

// ctxActor extracts the identity the Auth middleware injected. A missing or
// zero user_id means the middleware did not run; reject with 401 rather than
// letting a zero-valued actor reach a service.
func ctxActor(c echo.Context) (ports.Actor, error) {
	id, _ := c.Get("user_id").(int64)
	if id == 0 {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	roles, _ := c.Get("roles").([]string)
	return ports.Actor{ID: id, Roles: roles}, nil
}

// pathID parses the named numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// listQuery reads the pagination, sorting, and search query parameters shared
// by every list endpoint.
func listQuery(c echo.Context) ports.ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return ports.ListQuery{
		Page:      page,
		Size:      size,
		SortBy:    c.QueryParam("sortBy"),
		Direction: c.QueryParam("direction"),
		Search:    c.QueryParam("search"),
	}.Normalize()
}
