package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VoiceProfile describes who the writer is.
type VoiceProfile struct {
	JobTitle           string   `json:"jobTitle"`
	GeographicalFocus  string   `json:"geographicalFocus"`
	SkillsAndExpertise []string `json:"skillsAndExpertise"`
}

// ToneOfVoice describes how the writer sounds.
type ToneOfVoice struct {
	WritingSample         string   `json:"writingSample"`
	ToneOfVoiceAttributes []string `json:"toneOfVoiceAttributes"`
}

// VoiceAudience describes who the writer addresses.
type VoiceAudience struct {
	AudienceDemographics []string `json:"audienceDemographics"`
}

// VoiceFineTuning holds the generation tuning knobs.
type VoiceFineTuning struct {
	Temperature     float64 `json:"temperature"`
	EngagementStyle string  `json:"engagementStyle"`
	UseEmojis       bool    `json:"useEmojis"`
	Translate       bool    `json:"translate"`
	TranslateTo     string  `json:"translateTo"`
}

// PersonalVoice is a per-tenant configuration profile describing a
// user's writing style preferences. (tenant_id, key) is unique.
type PersonalVoice struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID       `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex:idx_tenant_voice_key"`
	Key        string          `json:"key" gorm:"type:text;not null;uniqueIndex:idx_tenant_voice_key"`
	Name       string          `json:"name" gorm:"type:text;not null"`
	Enabled    bool            `json:"enabled" gorm:"not null;default:true"`
	Profile    VoiceProfile    `json:"profile" gorm:"type:jsonb;not null"`
	Tone       ToneOfVoice     `json:"toneOfVoice" gorm:"column:tone_of_voice;type:jsonb;not null"`
	Audience   VoiceAudience   `json:"audience" gorm:"type:jsonb;not null"`
	FineTuning VoiceFineTuning `json:"fineTuning" gorm:"type:jsonb;not null"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Value implements driver.Valuer so gorm can persist the struct as jsonb.
func (p VoiceProfile) Value() (driver.Value, error) { return jsonValue(p) }

// Scan implements sql.Scanner.
func (p *VoiceProfile) Scan(value interface{}) error { return jsonScan(value, p) }

func (t ToneOfVoice) Value() (driver.Value, error) { return jsonValue(t) }

func (t *ToneOfVoice) Scan(value interface{}) error { return jsonScan(value, t) }

func (a VoiceAudience) Value() (driver.Value, error) { return jsonValue(a) }

func (a *VoiceAudience) Scan(value interface{}) error { return jsonScan(value, a) }

func (f VoiceFineTuning) Value() (driver.Value, error) { return jsonValue(f) }

func (f *VoiceFineTuning) Scan(value interface{}) error { return jsonScan(value, f) }

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src, dst interface{}) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
