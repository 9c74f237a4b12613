package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"voiceforge/internal/service"
)

// ThemeHandler exposes the per-tenant theme endpoints.
type ThemeHandler struct {
	themes *service.ThemeService
}

func NewThemeHandler(themes *service.ThemeService) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

// Get handles GET /api/themes
func (h *ThemeHandler) Get(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	theme, err := h.themes.Get(c.Request().Context(), tc.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, theme)
}

// Upsert handles POST /api/themes
func (h *ThemeHandler) Upsert(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	var req service.UpsertThemeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	theme, err := h.themes.Upsert(c.Request().Context(), tc.ID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, theme)
}

// Delete handles DELETE /api/themes
func (h *ThemeHandler) Delete(c echo.Context) error {
	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	if err := h.themes.Delete(c.Request().Context(), tc.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
