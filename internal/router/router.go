package router

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lessonhub/internal/config"
	apperrors "lessonhub/internal/errors"
	"lessonhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	lessonHandler *handler.LessonHandler,
	sliderHandler *handler.SliderHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.Secure())

	e.HTTPErrorHandler = httpErrorHandler

	e.Static("/uploads", cfg.UploadDir)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.Envelope{Success: true, Data: "hello world"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.POST("/user/register", authHandler.Register)
	e.POST("/user/login", authHandler.Login)
	e.POST("/user/uploadAvatar", userHandler.UploadAvatar)
	e.GET("/user/validate", userHandler.Validate)

	e.GET("/slider/list", sliderHandler.List)
	e.GET("/lesson/list", lessonHandler.List)
	e.GET("/lesson/:id", lessonHandler.Get)
}

// httpErrorHandler is the single point where domain errors become wire
// responses: {success: false, message, errors}.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var echoErr *echo.HTTPError
	if stderrors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound {
			// unmatched route
			writeError(c, apperrors.MapErrorToHTTP(apperrors.ErrRouteNotFound))
			return
		}
		writeError(c, apperrors.NewHTTPError(echoErr.Code, fmt.Sprintf("%v", echoErr.Message)))
		return
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	writeError(c, httpErr)
}

func writeError(c echo.Context, httpErr *apperrors.HTTPError) {
	if err := c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse()); err != nil {
		c.Logger().Error(err)
	}
}
