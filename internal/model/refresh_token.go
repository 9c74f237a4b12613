package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken persists a sha256 hash of an issued refresh token so
// tokens can be rotated and revoked. The raw token never touches the
// database.
type RefreshToken struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TokenHash string     `gorm:"type:text;uniqueIndex;not null"`
	ExpiresAt time.Time  `gorm:"not null"`
	RevokedAt *time.Time `gorm:""`
	CreatedAt time.Time
}
