package model

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated organizational account.
// All business data is partitioned by tenant id.
type Tenant struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Slug      string    `json:"slug" gorm:"type:text;uniqueIndex;not null"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	Settings  string    `json:"settings,omitempty" gorm:"type:jsonb"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TenantContext is the resolved tenant scope attached to a request.
// Role is the caller's role within the tenant; unauthenticated callers
// get RoleViewer.
type TenantContext struct {
	ID   uuid.UUID
	Name string
	Slug string
	Role Role
}
