package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"voiceforge/internal/apperr"
	"voiceforge/internal/model"
	"voiceforge/internal/repository"
)

// PersonalVoiceStore is the persistence behavior the service needs.
type PersonalVoiceStore interface {
	FindAll(ctx context.Context, tenantID uuid.UUID) ([]model.PersonalVoice, error)
	FindByID(ctx context.Context, id, tenantID uuid.UUID) (model.PersonalVoice, error)
	FindByKey(ctx context.Context, key string, tenantID uuid.UUID) (model.PersonalVoice, error)
	Create(ctx context.Context, voice *model.PersonalVoice) error
	Update(ctx context.Context, voice *model.PersonalVoice) error
	Delete(ctx context.Context, id, tenantID uuid.UUID) error
}

// CreatePersonalVoiceRequest is the create payload.
type CreatePersonalVoiceRequest struct {
	Key        string                 `json:"key" validate:"required"`
	Name       string                 `json:"name" validate:"required"`
	Enabled    *bool                  `json:"enabled"`
	Profile    VoiceProfilePayload    `json:"profile" validate:"required"`
	Tone       ToneOfVoicePayload     `json:"toneOfVoice" validate:"required"`
	Audience   VoiceAudiencePayload   `json:"audience" validate:"required"`
	FineTuning VoiceFineTuningPayload `json:"fineTuning" validate:"required"`
}

// UpdatePersonalVoiceRequest is the partial update payload; only
// provided sections are merged.
type UpdatePersonalVoiceRequest struct {
	Key        *string                 `json:"key,omitempty" validate:"omitempty,min=1"`
	Name       *string                 `json:"name,omitempty" validate:"omitempty,min=1"`
	Enabled    *bool                   `json:"enabled,omitempty"`
	Profile    *VoiceProfilePayload    `json:"profile,omitempty"`
	Tone       *ToneOfVoicePayload     `json:"toneOfVoice,omitempty"`
	Audience   *VoiceAudiencePayload   `json:"audience,omitempty"`
	FineTuning *VoiceFineTuningPayload `json:"fineTuning,omitempty"`
}

type VoiceProfilePayload struct {
	JobTitle           string   `json:"jobTitle" validate:"required"`
	GeographicalFocus  string   `json:"geographicalFocus" validate:"required"`
	SkillsAndExpertise []string `json:"skillsAndExpertise"`
}

type ToneOfVoicePayload struct {
	WritingSample         string   `json:"writingSample" validate:"required"`
	ToneOfVoiceAttributes []string `json:"toneOfVoiceAttributes"`
}

type VoiceAudiencePayload struct {
	AudienceDemographics []string `json:"audienceDemographics"`
}

type VoiceFineTuningPayload struct {
	Temperature     float64 `json:"temperature"`
	EngagementStyle string  `json:"engagementStyle" validate:"required"`
	UseEmojis       bool    `json:"useEmojis"`
	Translate       bool    `json:"translate"`
	TranslateTo     string  `json:"translateTo"`
}

// PersonalVoiceService applies the business rules for personal voices.
// Tenant isolation lives in the store queries; duplicate-key detection
// relies on the database unique index rather than a racy pre-check.
type PersonalVoiceService struct {
	store PersonalVoiceStore
}

func NewPersonalVoiceService(store PersonalVoiceStore) *PersonalVoiceService {
	return &PersonalVoiceService{store: store}
}

// GetAllVoices returns every voice belonging to the tenant.
func (s *PersonalVoiceService) GetAllVoices(ctx context.Context, tenantID uuid.UUID) ([]model.PersonalVoice, error) {
	voices, err := s.store.FindAll(ctx, tenantID)
	if err != nil {
		return nil, apperr.Internal("failed to list personal voices", err)
	}
	return voices, nil
}

// GetVoiceByID returns the voice with the given id within the tenant.
func (s *PersonalVoiceService) GetVoiceByID(ctx context.Context, id, tenantID uuid.UUID) (model.PersonalVoice, error) {
	voice, err := s.store.FindByID(ctx, id, tenantID)
	if err != nil {
		return model.PersonalVoice{}, s.wrap(err, "failed to get personal voice")
	}
	return voice, nil
}

// GetVoiceByKey returns the voice with the given key within the tenant.
func (s *PersonalVoiceService) GetVoiceByKey(ctx context.Context, key string, tenantID uuid.UUID) (model.PersonalVoice, error) {
	voice, err := s.store.FindByKey(ctx, key, tenantID)
	if err != nil {
		return model.PersonalVoice{}, s.wrap(err, "failed to get personal voice")
	}
	return voice, nil
}

// CreateVoice inserts a new voice for the tenant.
func (s *PersonalVoiceService) CreateVoice(ctx context.Context, req CreatePersonalVoiceRequest, tenantID uuid.UUID) (model.PersonalVoice, error) {
	now := time.Now()
	voice := model.PersonalVoice{
		ID:       uuid.New(),
		TenantID: tenantID,
		Key:      req.Key,
		Name:     req.Name,
		Enabled:  true,
		Profile: model.VoiceProfile{
			JobTitle:           req.Profile.JobTitle,
			GeographicalFocus:  req.Profile.GeographicalFocus,
			SkillsAndExpertise: req.Profile.SkillsAndExpertise,
		},
		Tone: model.ToneOfVoice{
			WritingSample:         req.Tone.WritingSample,
			ToneOfVoiceAttributes: req.Tone.ToneOfVoiceAttributes,
		},
		Audience: model.VoiceAudience{
			AudienceDemographics: req.Audience.AudienceDemographics,
		},
		FineTuning: model.VoiceFineTuning{
			Temperature:     req.FineTuning.Temperature,
			EngagementStyle: req.FineTuning.EngagementStyle,
			UseEmojis:       req.FineTuning.UseEmojis,
			Translate:       req.FineTuning.Translate,
			TranslateTo:     req.FineTuning.TranslateTo,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Enabled != nil {
		voice.Enabled = *req.Enabled
	}

	if err := s.store.Create(ctx, &voice); err != nil {
		return model.PersonalVoice{}, s.wrap(err, "failed to create personal voice")
	}
	return voice, nil
}

// UpdateVoice merges the provided fields into the existing voice.
func (s *PersonalVoiceService) UpdateVoice(ctx context.Context, id uuid.UUID, req UpdatePersonalVoiceRequest, tenantID uuid.UUID) (model.PersonalVoice, error) {
	voice, err := s.store.FindByID(ctx, id, tenantID)
	if err != nil {
		return model.PersonalVoice{}, s.wrap(err, "failed to get personal voice")
	}

	if req.Key != nil {
		voice.Key = *req.Key
	}
	if req.Name != nil {
		voice.Name = *req.Name
	}
	if req.Enabled != nil {
		voice.Enabled = *req.Enabled
	}
	if req.Profile != nil {
		voice.Profile = model.VoiceProfile{
			JobTitle:           req.Profile.JobTitle,
			GeographicalFocus:  req.Profile.GeographicalFocus,
			SkillsAndExpertise: req.Profile.SkillsAndExpertise,
		}
	}
	if req.Tone != nil {
		voice.Tone = model.ToneOfVoice{
			WritingSample:         req.Tone.WritingSample,
			ToneOfVoiceAttributes: req.Tone.ToneOfVoiceAttributes,
		}
	}
	if req.Audience != nil {
		voice.Audience = model.VoiceAudience{
			AudienceDemographics: req.Audience.AudienceDemographics,
		}
	}
	if req.FineTuning != nil {
		voice.FineTuning = model.VoiceFineTuning{
			Temperature:     req.FineTuning.Temperature,
			EngagementStyle: req.FineTuning.EngagementStyle,
			UseEmojis:       req.FineTuning.UseEmojis,
			Translate:       req.FineTuning.Translate,
			TranslateTo:     req.FineTuning.TranslateTo,
		}
	}
	voice.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, &voice); err != nil {
		return model.PersonalVoice{}, s.wrap(err, "failed to update personal voice")
	}
	return voice, nil
}

// DeleteVoice hard-deletes the voice.
func (s *PersonalVoiceService) DeleteVoice(ctx context.Context, id, tenantID uuid.UUID) error {
	if err := s.store.Delete(ctx, id, tenantID); err != nil {
		return s.wrap(err, "failed to delete personal voice")
	}
	return nil
}

func (s *PersonalVoiceService) wrap(err error, internalMsg string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound("Personal voice not found")
	case errors.Is(err, repository.ErrDuplicateKey):
		return apperr.Duplicate("A personal voice with this key already exists")
	default:
		return apperr.Internal(internalMsg, err)
	}
}
