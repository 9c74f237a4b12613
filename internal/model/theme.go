package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// ThemeColors holds the tenant's brand palette.
type ThemeColors struct {
	Primary        string `json:"primary"`
	PrimaryLight   string `json:"primaryLight"`
	Secondary      string `json:"secondary"`
	SecondaryLight string `json:"secondaryLight"`
}

// ThemeLogo holds the tenant's logo variants. Dark and light are optional.
type ThemeLogo struct {
	Primary string `json:"primary"`
	Dark    string `json:"dark,omitempty"`
	Light   string `json:"light,omitempty"`
}

// Theme is a tenant's visual configuration. One row per tenant,
// enforced by the unique index on tenant_id; writes upsert.
type Theme struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID   `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex"`
	Colors    ThemeColors `json:"colors" gorm:"type:jsonb;not null"`
	Logo      ThemeLogo   `json:"logo" gorm:"type:jsonb;not null"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (c ThemeColors) Value() (driver.Value, error) { return jsonValue(c) }

func (c *ThemeColors) Scan(value interface{}) error { return jsonScan(value, c) }

func (l ThemeLogo) Value() (driver.Value, error) { return jsonValue(l) }

func (l *ThemeLogo) Scan(value interface{}) error { return jsonScan(value, l) }
