package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voiceforge/internal/model"
	"voiceforge/prometheus"
)

// TenantRepo persists tenants and their memberships.
type TenantRepo struct {
	db *gorm.DB
}

func NewTenantRepo(db *gorm.DB) *TenantRepo {
	return &TenantRepo{db: db}
}

// Create inserts a tenant; a slug collision surfaces as ErrDuplicateKey.
func (r *TenantRepo) Create(ctx context.Context, tenant *model.Tenant) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return translate(r.db.WithContext(ctx).Create(tenant).Error)
}

// FindAll returns all tenants ordered by creation time.
func (r *TenantRepo) FindAll(ctx context.Context) ([]model.Tenant, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var tenants []model.Tenant
	if err := r.db.WithContext(ctx).Order("created_at").Find(&tenants).Error; err != nil {
		return nil, translate(err)
	}
	return tenants, nil
}

// FindByID returns the tenant regardless of its active flag.
func (r *TenantRepo) FindByID(ctx context.Context, id uuid.UUID) (model.Tenant, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var tenant model.Tenant
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tenant).Error; err != nil {
		return model.Tenant{}, translate(err)
	}
	return tenant, nil
}

// FindActiveBySlug resolves a slug to an active tenant. Disabled
// tenants are indistinguishable from missing ones.
func (r *TenantRepo) FindActiveBySlug(ctx context.Context, slug string) (model.Tenant, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var tenant model.Tenant
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&tenant).Error
	if err != nil {
		return model.Tenant{}, translate(err)
	}
	return tenant, nil
}

// Update saves the tenant row. Slug is immutable; callers never change it.
func (r *TenantRepo) Update(ctx context.Context, tenant *model.Tenant) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	return translate(r.db.WithContext(ctx).Save(tenant).Error)
}

// SetActive toggles the soft-disable flag.
func (r *TenantRepo) SetActive(ctx context.Context, id uuid.UUID, isActive bool) (model.Tenant, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	result := r.db.WithContext(ctx).
		Model(&model.Tenant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": isActive, "updated_at": time.Now()})
	if result.Error != nil {
		return model.Tenant{}, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return model.Tenant{}, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes the tenant row.
func (r *TenantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tenant{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindMembership returns the user's membership in the tenant.
func (r *TenantRepo) FindMembership(ctx context.Context, userID, tenantID uuid.UUID) (model.UserTenant, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var membership model.UserTenant
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tenant_id = ?", userID, tenantID).
		First(&membership).Error
	if err != nil {
		return model.UserTenant{}, translate(err)
	}
	return membership, nil
}

// Register creates the tenant, its first admin user and the admin
// membership in one transaction, so registration is atomic from the
// caller's perspective.
func (r *TenantRepo) Register(ctx context.Context, tenant *model.Tenant, user *model.User, membership *model.UserTenant) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tenant).Error; err != nil {
			return err
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		membership.UserID = user.ID
		membership.TenantID = tenant.ID
		return tx.Create(membership).Error
	})
	return translate(err)
}
