package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"voiceforge/internal/apperr"
	"voiceforge/internal/middleware"
	"voiceforge/internal/service"
)

// UserHandler exposes self-service profile endpoints.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me handles GET /api/users/me
func (h *UserHandler) Me(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == nil {
		return apperr.Unauthorized("Authentication required")
	}

	user, err := h.users.Get(c.Request().Context(), *userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe handles PATCH /api/users/me
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == nil {
		return apperr.Unauthorized("Authentication required")
	}

	var req service.UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), *userID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
