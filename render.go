package folio

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Error string `json:"error"`
}

// Render writes v as an HTTP 200 JSON response.
func Render(c echo.Context, v any) error {
	return RenderStatus(c, http.StatusOK, v)
}

// RenderStatus writes v as JSON with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, v any) error {
	if c.QueryParam("pretty") != "" {
		return c.JSONPretty(code, v, "  ")
	}
	return c.JSON(code, v)
}

// RenderError writes {"error": msg} with the given status code.
func RenderError(c echo.Context, code int, msg string) error {
	return RenderStatus(c, code, errorResponse{Error: msg})
}
