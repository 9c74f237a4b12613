package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"voiceforge/internal/apperr"
	"voiceforge/internal/service"
	"voiceforge/pkg/logger"
	"voiceforge/prometheus"
)

// TenantHandler exposes tenant registration and the admin tenant CRUD.
type TenantHandler struct {
	tenants *service.TenantService
}

func NewTenantHandler(tenants *service.TenantService) *TenantHandler {
	return &TenantHandler{tenants: tenants}
}

// Register handles POST /api/tenants/register. Public: creates a tenant
// and its first admin user atomically.
func (h *TenantHandler) Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordTenantOperation("register")

	var req service.RegisterTenantRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tenant, user, err := h.tenants.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	log.Info("Tenant registered",
		zap.String("name", tenant.Name),
		zap.String("slug", tenant.Slug),
		zap.String("tenant_id", tenant.ID.String()))

	return c.JSON(http.StatusCreated, echo.Map{
		"tenantId": tenant.ID,
		"userId":   user.ID,
	})
}

// List handles GET /api/tenants
func (h *TenantHandler) List(c echo.Context) error {
	prometheus.RecordTenantOperation("list")

	tenants, err := h.tenants.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenants)
}

// Get handles GET /api/tenants/:id
func (h *TenantHandler) Get(c echo.Context) error {
	prometheus.RecordTenantOperation("get")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	tenant, err := h.tenants.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenant)
}

// Create handles POST /api/tenants
func (h *TenantHandler) Create(c echo.Context) error {
	prometheus.RecordTenantOperation("create")

	var req service.CreateTenantRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tenant, err := h.tenants.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tenant)
}

// Update handles PUT /api/tenants/:id
func (h *TenantHandler) Update(c echo.Context) error {
	prometheus.RecordTenantOperation("update")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req service.UpdateTenantRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tenant, err := h.tenants.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenant)
}

// SetStatus handles PATCH /api/tenants/:id/status
func (h *TenantHandler) SetStatus(c echo.Context) error {
	prometheus.RecordTenantOperation("status")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req struct {
		IsActive *bool `json:"isActive" validate:"required"`
	}
	if err := bind(c, &req); err != nil {
		return err
	}

	tenant, err := h.tenants.SetStatus(c.Request().Context(), id, *req.IsActive)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenant)
}

// Delete handles DELETE /api/tenants/:id
func (h *TenantHandler) Delete(c echo.Context) error {
	prometheus.RecordTenantOperation("delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.tenants.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperr.Validation("Invalid id")
	}
	return id, nil
}
