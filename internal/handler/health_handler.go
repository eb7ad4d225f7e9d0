package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health handles the liveness probe. It never touches the database.
func Health(c echo.Context) error {
	return writeSuccess(c, http.StatusOK, "Server is running", nil)
}
