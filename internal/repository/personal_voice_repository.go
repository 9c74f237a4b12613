package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voiceforge/internal/model"
	"voiceforge/prometheus"
)

// PersonalVoiceRepo performs tenant-scoped persistence for personal
// voices. Every predicate ANDs tenant_id so a guessed id from another
// tenant behaves exactly like a missing row.
type PersonalVoiceRepo struct {
	db *gorm.DB
}

func NewPersonalVoiceRepo(db *gorm.DB) *PersonalVoiceRepo {
	return &PersonalVoiceRepo{db: db}
}

// FindAll returns every personal voice belonging to the tenant.
func (r *PersonalVoiceRepo) FindAll(ctx context.Context, tenantID uuid.UUID) ([]model.PersonalVoice, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var voices []model.PersonalVoice
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at").
		Find(&voices).Error
	if err != nil {
		return nil, translate(err)
	}
	return voices, nil
}

// FindByID returns the voice with the given id within the tenant.
func (r *PersonalVoiceRepo) FindByID(ctx context.Context, id, tenantID uuid.UUID) (model.PersonalVoice, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var voice model.PersonalVoice
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&voice).Error
	if err != nil {
		return model.PersonalVoice{}, translate(err)
	}
	return voice, nil
}

// FindByKey returns the voice with the given key within the tenant.
func (r *PersonalVoiceRepo) FindByKey(ctx context.Context, key string, tenantID uuid.UUID) (model.PersonalVoice, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var voice model.PersonalVoice
	err := r.db.WithContext(ctx).
		Where("key = ? AND tenant_id = ?", key, tenantID).
		First(&voice).Error
	if err != nil {
		return model.PersonalVoice{}, translate(err)
	}
	return voice, nil
}

// Create inserts the voice. A (tenant_id, key) collision comes back as
// ErrDuplicateKey from the composite unique index.
func (r *PersonalVoiceRepo) Create(ctx context.Context, voice *model.PersonalVoice) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return translate(r.db.WithContext(ctx).Create(voice).Error)
}

// Update saves the full voice row, again guarded by the unique index.
func (r *PersonalVoiceRepo) Update(ctx context.Context, voice *model.PersonalVoice) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	return translate(r.db.WithContext(ctx).Save(voice).Error)
}

// Delete hard-deletes the voice within the tenant.
func (r *PersonalVoiceRepo) Delete(ctx context.Context, id, tenantID uuid.UUID) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&model.PersonalVoice{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
