package handler

import (
	"net/http"

	"foodhub/internal/model"
	"foodhub/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const invalidCategoryID = "Invalid category id"

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	service service.CategoryService
	logger  zerolog.Logger
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(service service.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		logger:  logger.With().Str("handler", "category").Logger(),
	}
}

// List handles GET /api/categories requests.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeError(c, err, h.logger)
	}

	return writeJSON(c, http.StatusOK, model.ListResponse("Categories fetched successfully", categories))
}

// GetByID handles GET /api/categories/:id requests.
func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, invalidCategoryID, model.ErrCategoryNotFound)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	category, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	return writeSuccess(c, http.StatusOK, "Category fetched successfully", category)
}

// Create handles POST /api/categories requests.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req model.CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid category body")
		return writeMessage(c, http.StatusBadRequest, invalidBodyMessage)
	}

	category, err := h.service.Create(c.Request().Context(), &req)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	return writeSuccess(c, http.StatusCreated, "Category added successfully", category)
}

// Update handles PUT /api/categories/:id requests.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c, invalidCategoryID, model.ErrCategoryNotFound)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	var req model.UpdateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid category body")
		return writeMessage(c, http.StatusBadRequest, invalidBodyMessage)
	}

	category, err := h.service.Update(c.Request().Context(), id, &req)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	return writeSuccess(c, http.StatusOK, "Category updated successfully", category)
}

// Delete handles DELETE /api/categories/:id requests.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c, invalidCategoryID, model.ErrCategoryNotFound)
	if err != nil {
		return writeError(c, err, h.logger)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err, h.logger)
	}

	return writeSuccess(c, http.StatusOK, "Category deleted successfully", nil)
}
