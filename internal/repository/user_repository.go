package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voiceforge/internal/model"
	"voiceforge/prometheus"
)

// UserRepo persists users.
type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a user; an email collision surfaces as ErrDuplicateKey.
func (r *UserRepo) Create(ctx context.Context, user *model.User) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// FindByID returns the user with the given id.
func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return model.User{}, translate(err)
	}
	return user, nil
}

// FindByEmail returns the user with the given email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return model.User{}, translate(err)
	}
	return user, nil
}

// UpdateProfile applies the provided profile fields and returns the
// updated user. Zero-value fields in updates are skipped.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (model.User, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return model.User{}, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return model.User{}, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

// SetResetToken stores a password reset token with its expiry.
func (r *UserRepo) SetResetToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	return translate(r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reset_token":         token,
			"reset_token_expires": expires,
			"updated_at":          time.Now(),
		}).Error)
}

// FindByValidResetToken returns the user holding an unexpired reset token.
func (r *UserRepo) FindByValidResetToken(ctx context.Context, token string) (model.User, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var user model.User
	err := r.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expires > ?", token, time.Now()).
		First(&user).Error
	if err != nil {
		return model.User{}, translate(err)
	}
	return user, nil
}

// UpdatePassword replaces the password hash and clears any reset token.
func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	return translate(r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password":            passwordHash,
			"reset_token":         nil,
			"reset_token_expires": nil,
			"updated_at":          time.Now(),
		}).Error)
}

// CreateMembership adds a user to a tenant. A second membership for the
// same (user, tenant) pair surfaces as ErrDuplicateKey.
func (r *UserRepo) CreateMembership(ctx context.Context, membership *model.UserTenant) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return translate(r.db.WithContext(ctx).Create(membership).Error)
}
