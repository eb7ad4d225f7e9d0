package handler

import (
	"net/http"

	"foodhub/internal/model"
	"foodhub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const invalidDishID = "Invalid dish id"

// DishHandler handles dish-related HTTP requests.
type DishHandler struct {
	service service.DishService
	logger  zerolog.Logger
}

// NewDishHandler creates a new dish handler.
func NewDishHandler(service service.DishService, logger zerolog.Logger) *DishHandler {
	return &DishHandler{
		service: service,
		logger:  logger.With().Str("handler", "dish").Logger(),
	}
}

// List handles GET /api/dishes requests.
func (h *DishHandler) List(c echo.Context) error {
	dishes, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, h.logger)
	}

	return writeJSON(c, http.StatusOK, model.ListResponse("Dishes fetched successfully", dishes))
}

// Filter handles GET /api/dishes/filter requests.
func (h *DishHandler) Filter(c echo.Context) error {
	query := model.DishFilterQuery{
		MinPrice:  c.QueryParam("minPrice"),
		MaxPrice:  c.QueryParam("maxPrice"),
		MinRating: c.QueryParam("minRating"),
		SortBy:    c.QueryParam("sortBy"),
	}

	dishes, err := h.service.Filter(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	return writeJSON(c, http.StatusOK, model.ListResponse("Filtered dishes fetched successfully", dishes))
}

// GetByID handles GET /api/dishes/:id requests.
func (h *DishHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, invalidDishID, model.ErrDishNotFound)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	dish, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	return writeSuccess(c, http.StatusOK, "Dish fetched successfully", dish)
}

// Create handles POST /api/dishes requests.
func (h *DishHandler) Create(c echo.Context) error {
	var req model.CreateDishRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid dish body")
		return writeMessage(c, http.StatusBadRequest, invalidBodyMessage)
	}

	dish, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	return writeSuccess(c, http.StatusCreated, "Dish added successfully", dish)
}

// Update handles PUT /api/dishes/:id requests.
func (h *DishHandler) Update(c echo.Context) error {
	id, err := parseID(c, invalidDishID, model.ErrDishNotFound)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	var req model.UpdateDishRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid dish body")
		return writeMessage(c, http.StatusBadRequest, invalidBodyMessage)
	}

	dish, err := h.service.Update(c.Request().Context(), id, &req)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	return writeSuccess(c, http.StatusOK, "Dish updated successfully", dish)
}

// Delete handles DELETE /api/dishes/:id requests.
func (h *DishHandler) Delete(c echo.Context) error {
	id, err := parseID(c, invalidDishID, model.ErrDishNotFound)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err, h.logger)
	}

	return writeSuccess(c, http.StatusOK, "Dish deleted successfully", nil)
}
