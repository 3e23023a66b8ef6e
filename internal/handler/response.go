package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform success body: {success: true, data: ...}.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func respond(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}
