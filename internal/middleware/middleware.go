package middleware

import (
	"fmt"
	"mime"
	"net/http"
	"time"

	"foodhub/internal/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// HeaderRequestID carries the request correlation id in both directions.
const HeaderRequestID = echo.HeaderXRequestID

// RequestIDKey is the echo context key holding the request id.
const RequestIDKey = "request_id"

// CORS allows any origin to call the API without credentials.
func CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:  []string{echo.HeaderContentType, HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
	})
}

// RequestID propagates the caller's X-Request-ID or generates a new one.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			c.Set(RequestIDKey, id)
			c.Response().Header().Set(HeaderRequestID, id)

			return next(c)
		}
	}
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Let echo write the error response so the final status is logged
			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			requestID, _ := c.Get(RequestIDKey).(string)

			logger.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Str("request_id", requestID).
				Str("remote_addr", req.RemoteAddr).
				Msg("http request")

			return nil
		}
	}
}

// Recovery recovers from panics and returns a 500 envelope.
func Recovery(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error().
						Interface("panic", r).
						Str("method", c.Request().Method).
						Str("path", c.Request().URL.Path).
						Msg("panic recovered")

					if c.Response().Committed {
						return
					}
					err = c.JSON(http.StatusInternalServerError, model.Response{
						Success: false,
						Message: "Internal server error",
						Error:   fmt.Sprint(r),
					})
				}
			}()

			return next(c)
		}
	}
}

// RequireJSON rejects POST and PUT requests whose body is not declared as JSON.
func RequireJSON() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			if method != http.MethodPost && method != http.MethodPut {
				return next(c)
			}

			mediaType, _, err := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
			if err != nil || mediaType != echo.MIMEApplicationJSON {
				return c.JSON(http.StatusBadRequest, model.Response{
					Success: false,
					Message: "Content-Type must be application/json",
				})
			}

			return next(c)
		}
	}
}
