package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"voiceforge/internal/apperr"
	"voiceforge/internal/model"
	"voiceforge/pkg/logger"
	"voiceforge/prometheus"
)

const tenantKey = "tenant"

// TenantSlugHeader carries the tenant scope on every tenant-scoped route.
const TenantSlugHeader = "x-tenant-slug"

// TenantResolver resolves a slug plus optional user into a tenant context.
type TenantResolver interface {
	ResolveContext(ctx context.Context, slug string, userID *uuid.UUID) (model.TenantContext, error)
}

// TenantMiddleware resolves the x-tenant-slug header into the tenant
// context gating all tenant-scoped routes. Tenant management routes do
// not use it; they are gated by the global admin role instead.
func TenantMiddleware(resolver TenantResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			slug := c.Request().Header.Get(TenantSlugHeader)
			if slug == "" {
				prometheus.RecordTenantError("missing_slug")
				return apperr.Validation("Tenant context is required")
			}

			tc, err := resolver.ResolveContext(c.Request().Context(), slug, UserID(c))
			if err != nil {
				log.Debug("Failed to resolve tenant context", zap.String("slug", slug), zap.Error(err))
				prometheus.RecordTenantError("resolve_failed")
				return err
			}

			c.Set(tenantKey, tc)
			return next(c)
		}
	}
}

// Tenant returns the resolved tenant context. The bool is false when
// the tenant middleware did not run.
func Tenant(c echo.Context) (model.TenantContext, bool) {
	tc, ok := c.Get(tenantKey).(model.TenantContext)
	return tc, ok
}

// RequireTenantRole gates a route on the caller's role within the
// resolved tenant.
func RequireTenantRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tc, ok := Tenant(c)
			if !ok {
				return apperr.Validation("Tenant context is required")
			}
			if !model.HasAnyRole(tc.Role, roles...) {
				return apperr.Forbidden("Insufficient role")
			}
			return next(c)
		}
	}
}
