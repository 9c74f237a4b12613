package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"voiceforge/internal/apperr"
	"voiceforge/internal/model"
	"voiceforge/pkg/jwtutil"
	"voiceforge/pkg/logger"
	"voiceforge/prometheus"
)

const (
	userIDKey   = "user_id"
	emailKey    = "email"
	userRoleKey = "user_role"
)

// AuthMiddleware validates the JWT token from the Authorization header
// and stores the caller's identity in the request context.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Debug("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return apperr.Unauthorized("Missing authorization token")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Debug("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return apperr.Unauthorized("Invalid authorization format, expected Bearer token")
		}

		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Debug("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return apperr.Unauthorized("Invalid or expired token")
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(emailKey, claims.Email)
		c.Set(userRoleKey, model.Role(claims.Role))

		return next(c)
	}
}

// OptionalAuthMiddleware parses a Bearer token when one is supplied but
// lets anonymous requests through. Tenant resolution downgrades such
// callers to the viewer role.
func OptionalAuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return next(c)
		}

		if claims, err := jwtutil.ValidateToken(parts[1]); err == nil {
			c.Set(userIDKey, claims.UserID)
			c.Set(emailKey, claims.Email)
			c.Set(userRoleKey, model.Role(claims.Role))
		}

		return next(c)
	}
}

// UserID returns the authenticated user's id, or nil for anonymous
// requests.
func UserID(c echo.Context) *uuid.UUID {
	if id, ok := c.Get(userIDKey).(uuid.UUID); ok {
		return &id
	}
	return nil
}

// UserRole returns the caller's global role; viewer when unauthenticated.
func UserRole(c echo.Context) model.Role {
	if role, ok := c.Get(userRoleKey).(model.Role); ok && model.ValidRole(role) {
		return role
	}
	return model.RoleViewer
}

// RequireGlobalRole gates a route group on the caller's global role
// carried in the JWT, e.g. the tenant management API.
func RequireGlobalRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !model.HasAnyRole(UserRole(c), roles...) {
				return apperr.Forbidden("Admin access required")
			}
			return next(c)
		}
	}
}
