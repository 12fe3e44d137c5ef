package handler

import "github.com/labstack/echo/v4"

// envelope is the canonical response wrapper. Every endpoint, success or
// failure, renders exactly this shape.
type envelope struct {
	Result  string `json:"result"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// respond renders a SUCCESS envelope with the given status, message, and payload.
func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Result: "SUCCESS", Message: message, Data: data})
}
