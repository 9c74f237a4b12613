package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"voiceforge/internal/service"
	"voiceforge/pkg/logger"
	"voiceforge/prometheus"
)

// AuthHandler exposes registration, login and the token/password flows.
type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RegisterCounter.Inc()

	var req service.RegisterRequest
	if err := bind(c, &req); err != nil {
		prometheus.RecordAuthError("invalid_request")
		return err
	}

	result, err := h.auth.Register(c.Request().Context(), req)
	if err != nil {
		prometheus.RecordAuthError("register_failed")
		return err
	}

	prometheus.IncreaseActiveTokens()
	log.Info("User registered", zap.String("email", result.User.Email))

	return c.JSON(http.StatusCreated, result)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.Inc()

	var req service.LoginRequest
	if err := bind(c, &req); err != nil {
		prometheus.RecordAuthError("invalid_request")
		return err
	}

	result, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		prometheus.RecordAuthError("login_failed")
		return err
	}

	prometheus.IncreaseActiveTokens()
	log.Info("User logged in", zap.String("email", result.User.Email))

	return c.JSON(http.StatusOK, result)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}
	if err := bind(c, &req); err != nil {
		prometheus.RecordAuthError("invalid_request")
		return err
	}

	result, err := h.auth.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		prometheus.RecordAuthError("refresh_failed")
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// ForgotPassword handles POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.auth.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	// Same answer whether or not the email exists.
	return c.JSON(http.StatusOK, echo.Map{
		"message": "If this email exists, a reset link will be sent.",
	})
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.auth.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Password has been reset successfully",
	})
}
