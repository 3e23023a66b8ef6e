package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lessonhub/internal/errors"
	"lessonhub/internal/service"
	"lessonhub/internal/storage"
)

// UserHandler handles identity resolution and avatar upload endpoints.
type UserHandler struct {
	authService service.AuthService
	fileStore   storage.FileStore
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService service.AuthService, fileStore storage.FileStore) *UserHandler {
	return &UserHandler{
		authService: authService,
		fileStore:   fileStore,
	}
}

// Validate godoc
// @Summary Resolve the current user from a bearer token
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Envelope
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/validate [get]
func (h *UserHandler) Validate(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return errors.ErrMissingCredential
	}

	user, err := h.authService.ValidateToken(c.Request().Context(), token)
	if err != nil {
		return err
	}

	return respond(c, user)
}

// UploadAvatar godoc
// @Summary Upload an avatar image for a user
// @Tags user
// @Accept mpfd
// @Produce json
// @Param userId formData string true "User ID"
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} Envelope "data is the public avatar URI"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/uploadAvatar [post]
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	userID, err := uuid.Parse(c.FormValue("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "avatar file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read avatar file")
	}
	defer src.Close()

	uri, err := h.fileStore.Save(fileHeader.Filename, src)
	if err != nil {
		return err
	}

	avatarURL, err := h.authService.UpdateAvatar(c.Request().Context(), userID, uri)
	if err != nil {
		return err
	}

	return respond(c, avatarURL)
}

// bearerToken extracts the token from the Authorization header. The "Bearer"
// scheme prefix is optional.
func bearerToken(c echo.Context) string {
	authz := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if after, ok := strings.CutPrefix(authz, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return authz
}
