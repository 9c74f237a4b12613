package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents the user model stored in the database.
// A user belongs to tenants through UserTenant memberships.
type User struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName         string     `json:"firstName" gorm:"type:text;not null"`
	LastName          string     `json:"lastName" gorm:"type:text;not null"`
	Email             string     `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Password          string     `json:"-" gorm:"type:text;not null"`
	Role              Role       `json:"role" gorm:"type:text;not null;default:'member'"`
	IsActive          bool       `json:"isActive" gorm:"not null;default:true"`
	AvatarURL         string     `json:"avatarUrl,omitempty" gorm:"type:text"`
	ResetToken        *string    `json:"-" gorm:"type:text"`
	ResetTokenExpires *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// UserTenant associates a user with a tenant and carries the
// per-tenant role. Exactly one membership exists per (user, tenant)
// pair and a user has at most one default membership; both are
// enforced by unique indexes.
type UserTenant struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_user_tenant"`
	TenantID  uuid.UUID `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex:idx_user_tenant"`
	Role      Role      `json:"role" gorm:"type:text;not null;default:'member'"`
	IsDefault bool      `json:"isDefault" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Tenant Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
}
