package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"voiceforge/internal/apperr"
	"voiceforge/internal/middleware"
	"voiceforge/internal/model"
	"voiceforge/internal/service"
	"voiceforge/pkg/logger"
	"voiceforge/prometheus"
)

// PersonalVoiceHandler exposes the tenant-scoped personal voice CRUD.
type PersonalVoiceHandler struct {
	voices *service.PersonalVoiceService
}

func NewPersonalVoiceHandler(voices *service.PersonalVoiceService) *PersonalVoiceHandler {
	return &PersonalVoiceHandler{voices: voices}
}

// List handles GET /api/personal-voices
func (h *PersonalVoiceHandler) List(c echo.Context) error {
	prometheus.RecordVoiceOperation("list")

	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	voices, err := h.voices.GetAllVoices(c.Request().Context(), tc.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, voices)
}

// GetByID handles GET /api/personal-voices/id/:id
func (h *PersonalVoiceHandler) GetByID(c echo.Context) error {
	prometheus.RecordVoiceOperation("get")

	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	voice, err := h.voices.GetVoiceByID(c.Request().Context(), id, tc.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, voice)
}

// GetByKey handles GET /api/personal-voices/key/:key
func (h *PersonalVoiceHandler) GetByKey(c echo.Context) error {
	prometheus.RecordVoiceOperation("get")

	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	voice, err := h.voices.GetVoiceByKey(c.Request().Context(), c.Param("key"), tc.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, voice)
}

// Create handles POST /api/personal-voices
func (h *PersonalVoiceHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordVoiceOperation("create")

	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	var req service.CreatePersonalVoiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	voice, err := h.voices.CreateVoice(c.Request().Context(), req, tc.ID)
	if err != nil {
		return err
	}

	log.Info("Personal voice created",
		zap.String("key", voice.Key),
		zap.String("tenant_id", tc.ID.String()))

	return c.JSON(http.StatusCreated, voice)
}

// Update handles PUT /api/personal-voices/:id
func (h *PersonalVoiceHandler) Update(c echo.Context) error {
	prometheus.RecordVoiceOperation("update")

	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req service.UpdatePersonalVoiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	voice, err := h.voices.UpdateVoice(c.Request().Context(), id, req, tc.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, voice)
}

// Delete handles DELETE /api/personal-voices/:id
func (h *PersonalVoiceHandler) Delete(c echo.Context) error {
	prometheus.RecordVoiceOperation("delete")

	tc, err := tenantContext(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.voices.DeleteVoice(c.Request().Context(), id, tc.ID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func tenantContext(c echo.Context) (model.TenantContext, error) {
	tc, ok := middleware.Tenant(c)
	if !ok {
		return model.TenantContext{}, apperr.Validation("Tenant context is required")
	}
	return tc, nil
}
