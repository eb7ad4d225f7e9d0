package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"foodhub/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const invalidBodyMessage = "Invalid JSON body"

// writeJSON writes the envelope with the given status code.
func writeJSON(c echo.Context, status int, resp model.Response) error {
	return c.JSON(status, resp)
}

// writeSuccess writes a successful envelope carrying data.
func writeSuccess(c echo.Context, status int, message string, data interface{}) error {
	return writeJSON(c, status, model.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// writeMessage writes a failure envelope with no underlying error text.
func writeMessage(c echo.Context, status int, message string) error {
	return writeJSON(c, status, model.Response{
		Success: false,
		Message: message,
	})
}

// writeError maps a service error to its status code and envelope.
// Storage failures carry the underlying error text in the error field.
func writeError(c echo.Context, err error, logger zerolog.Logger) error {
	status := StatusFor(err)

	resp := model.Response{Success: false}

	var de *model.DomainError
	if errors.As(err, &de) {
		resp.Message = de.Message
		if de.Err != nil {
			resp.Error = de.Err.Error()
		}
	} else {
		resp.Message = "Internal server error"
		resp.Error = err.Error()
	}

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("path", c.Path()).
		Msg("request failed")

	return writeJSON(c, status, resp)
}

// StatusFor returns the HTTP status code for an error kind.
func StatusFor(err error) int {
	switch model.KindOf(err) {
	case model.KindValidation:
		return http.StatusBadRequest
	case model.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// maxID is the largest value a SERIAL id column can hold.
const maxID = math.MaxInt32

// parseID reads the :id path parameter. Text that is not an integer is a
// validation error with invalidMessage. An integer that no row can carry
// (not positive, or beyond the SERIAL range) returns notFound.
func parseID(c echo.Context, invalidMessage string, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, notFound
		}
		return 0, model.NewValidationError(invalidMessage)
	}
	if id <= 0 || id > maxID {
		return 0, notFound
	}
	return id, nil
}

// bindJSON decodes the request body into v.
func bindJSON(c echo.Context, v interface{}) error {
	return (&echo.DefaultBinder{}).BindBody(c, v)
}
