package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lessonhub/internal/errors"
	"lessonhub/internal/service"
)

// LessonHandler handles lesson listing endpoints.
type LessonHandler struct {
	lessonService service.LessonService
}

// NewLessonHandler creates a new lesson handler.
func NewLessonHandler(lessonService service.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

// List godoc
// @Summary List lessons with offset/limit pagination
// @Tags lesson
// @Produce json
// @Param category query string false "Category filter, 'all' for none" default(all)
// @Param offset query int false "Items to skip" default(0)
// @Param limit query int false "Page size" default(5)
// @Success 200 {object} Envelope
// @Failure 500 {object} errors.ErrorResponse
// @Router /lesson/list [get]
func (h *LessonHandler) List(c echo.Context) error {
	category := c.QueryParam("category")
	offset := parseIntDefault(c.QueryParam("offset"), 0)
	limit := parseIntDefault(c.QueryParam("limit"), service.DefaultLimit)

	page, err := h.lessonService.List(c.Request().Context(), category, offset, limit)
	if err != nil {
		return err
	}

	return respond(c, page)
}

// Get godoc
// @Summary Get a single lesson
// @Tags lesson
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /lesson/{id} [get]
func (h *LessonHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.ErrLessonNotFound
	}

	lesson, err := h.lessonService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, lesson)
}

// parseIntDefault falls back to def when the value is absent or not a valid
// non-negative integer.
func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
