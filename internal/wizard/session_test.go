package wizard

import (
	"testing"

	"github.com/google/uuid"

	"voiceforge/internal/model"
)

func sampleVoice(id uuid.UUID) model.PersonalVoice {
	return model.PersonalVoice{
		ID:      id,
		Key:     "personal-voice-1",
		Name:    "Personal Voice - Marketing Lead",
		Enabled: true,
		Profile: model.VoiceProfile{
			JobTitle:           "Marketing Lead",
			GeographicalFocus:  "Europe",
			SkillsAndExpertise: []string{"Copywriting", "Branding"},
		},
		Tone: model.ToneOfVoice{
			WritingSample:         "We craft stories that stick.",
			ToneOfVoiceAttributes: []string{"Friendly", "Bold"},
		},
		Audience: model.VoiceAudience{
			AudienceDemographics: []string{"Founders"},
		},
		FineTuning: model.VoiceFineTuning{
			Temperature:     0.7,
			EngagementStyle: "Persuasive",
			UseEmojis:       true,
		},
	}
}

func TestLoadAdoptsFirstVoice(t *testing.T) {
	s := NewSession()
	id := uuid.New()
	s.Load([]model.PersonalVoice{sampleVoice(id), sampleVoice(uuid.New())})

	if !s.HasVoice() {
		t.Fatal("expected a voice to be loaded")
	}
	if !s.InPreview() {
		t.Fatal("expected session to start in preview")
	}
	saved, ok := s.Saved()
	if !ok {
		t.Fatal("expected saved form state")
	}
	if saved.Profile.JobTitle != "Marketing Lead" {
		t.Fatalf("expected hydrated job title, got %q", saved.Profile.JobTitle)
	}
	if saved.Profile.Skills != "Copywriting, Branding" {
		t.Fatalf("expected joined skills, got %q", saved.Profile.Skills)
	}
}

func TestLoadWithNoVoices(t *testing.T) {
	s := NewSession()
	s.Load(nil)

	if s.HasVoice() {
		t.Fatal("expected no voice loaded")
	}
	if s.InPreview() {
		t.Fatal("expected form flow, not preview")
	}
}

func TestEditRehydratesFlowAtProfileStep(t *testing.T) {
	s := NewSession()
	s.Load([]model.PersonalVoice{sampleVoice(uuid.New())})

	s.Edit()

	if s.InPreview() {
		t.Fatal("expected edit mode, not preview")
	}
	if s.Flow().Current() != StepProfile {
		t.Fatalf("expected profile step, got %q", s.Flow().Current())
	}
	state := s.Flow().State()
	if state.Profile.Region != "Europe" {
		t.Fatalf("expected hydrated region, got %q", state.Profile.Region)
	}
	if len(state.Voice.Tones) != 2 {
		t.Fatalf("expected hydrated tones, got %v", state.Voice.Tones)
	}
}

func TestEditWithoutLoadedVoiceIsNoOp(t *testing.T) {
	s := NewSession()
	s.Edit()
	if s.Flow().Current() != StepIntro {
		t.Fatalf("expected intro step, got %q", s.Flow().Current())
	}
}

func TestFinishPayloadCarriesVoiceID(t *testing.T) {
	s := NewSession()
	id := uuid.New()
	s.Load([]model.PersonalVoice{sampleVoice(id)})
	s.Edit()

	_, gotID := s.FinishPayload()
	if gotID == nil {
		t.Fatal("expected the loaded voice id for an update")
	}
	if *gotID != id {
		t.Fatalf("expected id %s, got %s", id, *gotID)
	}
}

func TestFinishPayloadNilIDForFirstSetup(t *testing.T) {
	s := NewSession()
	if _, gotID := s.FinishPayload(); gotID != nil {
		t.Fatalf("expected nil id for a first-time setup, got %s", *gotID)
	}
}

func TestMarkSavedReturnsToPreview(t *testing.T) {
	s := NewSession()
	saved := sampleVoice(uuid.New())
	s.MarkSaved(saved)

	if !s.InPreview() {
		t.Fatal("expected preview after save")
	}
	_, gotID := s.FinishPayload()
	if gotID == nil || *gotID != saved.ID {
		t.Fatal("expected saved id to be tracked for the next edit")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	s := NewSession()
	s.Load([]model.PersonalVoice{sampleVoice(uuid.New())})

	if id := s.ConfirmDelete(); id != nil {
		t.Fatal("expected delete without confirmation to be refused")
	}
	if !s.RequestDelete() {
		t.Fatal("expected delete request to open confirmation")
	}
	if !s.ConfirmingDelete() {
		t.Fatal("expected pending confirmation")
	}
}

func TestCancelDeleteKeepsVoice(t *testing.T) {
	s := NewSession()
	s.Load([]model.PersonalVoice{sampleVoice(uuid.New())})
	s.RequestDelete()
	s.CancelDelete()

	if s.ConfirmingDelete() {
		t.Fatal("expected confirmation to be closed")
	}
	if !s.HasVoice() {
		t.Fatal("expected voice to survive a cancelled delete")
	}
}

func TestConfirmDeleteResetsSession(t *testing.T) {
	s := NewSession()
	id := uuid.New()
	s.Load([]model.PersonalVoice{sampleVoice(id)})
	s.RequestDelete()

	gotID := s.ConfirmDelete()
	if gotID == nil || *gotID != id {
		t.Fatalf("expected deleted id %s, got %v", id, gotID)
	}
	if s.HasVoice() {
		t.Fatal("expected no voice after delete")
	}
	if s.Flow().Current() != StepIntro {
		t.Fatalf("expected flow reset to intro, got %q", s.Flow().Current())
	}
}

func TestRequestDeleteWithoutVoice(t *testing.T) {
	s := NewSession()
	if s.RequestDelete() {
		t.Fatal("expected delete request to be refused with nothing loaded")
	}
}
