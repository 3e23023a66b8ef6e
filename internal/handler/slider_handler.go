package handler

import (
	"github.com/labstack/echo/v4"

	"lessonhub/internal/service"
)

// SliderHandler handles slider endpoints.
type SliderHandler struct {
	sliderService service.SliderService
}

// NewSliderHandler creates a new slider handler.
func NewSliderHandler(sliderService service.SliderService) *SliderHandler {
	return &SliderHandler{sliderService: sliderService}
}

// List godoc
// @Summary List all promotional sliders
// @Tags slider
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} errors.ErrorResponse
// @Router /slider/list [get]
func (h *SliderHandler) List(c echo.Context) error {
	sliders, err := h.sliderService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, sliders)
}
