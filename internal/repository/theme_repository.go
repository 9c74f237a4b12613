package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voiceforge/internal/model"
	"voiceforge/prometheus"
)

// ThemeRepo persists per-tenant themes. The unique index on tenant_id
// keeps it at one row per tenant.
type ThemeRepo struct {
	db *gorm.DB
}

func NewThemeRepo(db *gorm.DB) *ThemeRepo {
	return &ThemeRepo{db: db}
}

// FindByTenant returns the tenant's theme.
func (r *ThemeRepo) FindByTenant(ctx context.Context, tenantID uuid.UUID) (model.Theme, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var theme model.Theme
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&theme).Error
	if err != nil {
		return model.Theme{}, translate(err)
	}
	return theme, nil
}

// Create inserts the tenant's theme. A second insert for the same
// tenant surfaces as ErrDuplicateKey.
func (r *ThemeRepo) Create(ctx context.Context, theme *model.Theme) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return translate(r.db.WithContext(ctx).Create(theme).Error)
}

// Update saves the existing theme row.
func (r *ThemeRepo) Update(ctx context.Context, theme *model.Theme) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	return translate(r.db.WithContext(ctx).Save(theme).Error)
}

// DeleteByTenant removes the tenant's theme.
func (r *ThemeRepo) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&model.Theme{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
