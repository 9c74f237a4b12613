package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"voiceforge/internal/apperr"
	"voiceforge/internal/model"
	"voiceforge/internal/repository"
)

// ThemeStore is the persistence behavior the theme service needs.
type ThemeStore interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (model.Theme, error)
	Create(ctx context.Context, theme *model.Theme) error
	Update(ctx context.Context, theme *model.Theme) error
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) error
}

// UpsertThemeRequest is the theme write payload.
type UpsertThemeRequest struct {
	Colors ThemeColorsPayload `json:"colors" validate:"required"`
	Logo   ThemeLogoPayload   `json:"logo" validate:"required"`
}

type ThemeColorsPayload struct {
	Primary        string `json:"primary" validate:"required"`
	PrimaryLight   string `json:"primaryLight" validate:"required"`
	Secondary      string `json:"secondary" validate:"required"`
	SecondaryLight string `json:"secondaryLight" validate:"required"`
}

type ThemeLogoPayload struct {
	Primary string `json:"primary" validate:"required"`
	Dark    string `json:"dark,omitempty"`
	Light   string `json:"light,omitempty"`
}

// ThemeService manages the single theme each tenant owns.
type ThemeService struct {
	store ThemeStore
}

func NewThemeService(store ThemeStore) *ThemeService {
	return &ThemeService{store: store}
}

// Get returns the tenant's theme.
func (s *ThemeService) Get(ctx context.Context, tenantID uuid.UUID) (model.Theme, error) {
	theme, err := s.store.FindByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Theme{}, apperr.NotFound("Theme not found")
		}
		return model.Theme{}, apperr.Internal("failed to get theme", err)
	}
	return theme, nil
}

// Upsert creates the tenant's theme or replaces the existing one; the
// unique index on tenant_id guarantees a single row either way.
func (s *ThemeService) Upsert(ctx context.Context, tenantID uuid.UUID, req UpsertThemeRequest) (model.Theme, error) {
	colors := model.ThemeColors{
		Primary:        req.Colors.Primary,
		PrimaryLight:   req.Colors.PrimaryLight,
		Secondary:      req.Colors.Secondary,
		SecondaryLight: req.Colors.SecondaryLight,
	}
	logo := model.ThemeLogo{
		Primary: req.Logo.Primary,
		Dark:    req.Logo.Dark,
		Light:   req.Logo.Light,
	}

	existing, err := s.store.FindByTenant(ctx, tenantID)
	switch {
	case err == nil:
		existing.Colors = colors
		existing.Logo = logo
		existing.UpdatedAt = time.Now()
		if err := s.store.Update(ctx, &existing); err != nil {
			return model.Theme{}, apperr.Internal("failed to update theme", err)
		}
		return existing, nil

	case errors.Is(err, repository.ErrNotFound):
		now := time.Now()
		theme := model.Theme{
			ID:        uuid.New(),
			TenantID:  tenantID,
			Colors:    colors,
			Logo:      logo,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.store.Create(ctx, &theme); err != nil {
			return model.Theme{}, apperr.Internal("failed to create theme", err)
		}
		return theme, nil

	default:
		return model.Theme{}, apperr.Internal("failed to get theme", err)
	}
}

// Delete removes the tenant's theme.
func (s *ThemeService) Delete(ctx context.Context, tenantID uuid.UUID) error {
	if err := s.store.DeleteByTenant(ctx, tenantID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Theme not found")
		}
		return apperr.Internal("failed to delete theme", err)
	}
	return nil
}
