package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"voiceforge/internal/model"
	"voiceforge/prometheus"
)

// TokenRepo persists and validates refresh token hashes.
type TokenRepo struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) *TokenRepo {
	return &TokenRepo{db: db}
}

// Store inserts a refresh token hash row.
func (r *TokenRepo) Store(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	token := model.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	}
	return translate(r.db.WithContext(ctx).Create(&token).Error)
}

// Validate returns the owning user id if a non-revoked, non-expired
// token with this hash exists.
func (r *TokenRepo) Validate(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var token model.RefreshToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", tokenHash, time.Now()).
		First(&token).Error
	if err != nil {
		return uuid.Nil, translate(err)
	}
	return token.UserID, nil
}

// Revoke marks a single token as revoked.
func (r *TokenRepo) Revoke(ctx context.Context, tokenHash string) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	now := time.Now()
	return translate(r.db.WithContext(ctx).
		Model(&model.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", tokenHash).
		Update("revoked_at", now).Error)
}

// RevokeAllForUser revokes every active token owned by the user.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	now := time.Now()
	return translate(r.db.WithContext(ctx).
		Model(&model.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error)
}
