package router

import (
	"errors"
	"net/http"

	"foodhub/internal/handler"
	"foodhub/internal/middleware"
	"foodhub/internal/model"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	dishHandler *handler.DishHandler,
	categoryHandler *handler.CategoryHandler,
	logger zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	// Applied in order: RemoveTrailingSlash -> RequestID -> Logging -> Recovery -> CORS
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logging(logger))
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.CORS())

	// Only routes that read a body require JSON, so unknown paths still get 404
	requireJSON := middleware.RequireJSON()

	// Health check endpoints
	e.GET("/health", handler.Health)

	api := e.Group("/api")
	api.GET("/health", handler.Health)

	// Dish routes
	api.GET("/dishes", dishHandler.List)
	api.GET("/dishes/filter", dishHandler.Filter)
	api.GET("/dishes/:id", dishHandler.GetByID)
	api.POST("/dishes", dishHandler.Create, requireJSON)
	api.PUT("/dishes/:id", dishHandler.Update, requireJSON)
	api.DELETE("/dishes/:id", dishHandler.Delete)

	// Category routes
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id", categoryHandler.GetByID)
	api.POST("/categories", categoryHandler.Create, requireJSON)
	api.PUT("/categories/:id", categoryHandler.Update, requireJSON)
	api.DELETE("/categories/:id", categoryHandler.Delete)

	return e
}

// errorHandler renders router and framework errors with the API envelope.
func errorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			switch status {
			case http.StatusNotFound:
				message = "Route not found"
			case http.StatusMethodNotAllowed:
				message = "Method not allowed"
			default:
				message = http.StatusText(status)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
		}

		resp := model.Response{Success: false, Message: message}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, resp)
		}
		if err != nil {
			logger.Error().Err(err).Msg("failed to write error response")
		}
	}
}
