package wizard

import (
	"fmt"
	"strings"
	"time"

	"voiceforge/internal/model"
	"voiceforge/internal/service"
)

// ToFormState hydrates editable form state from a persisted voice.
// The creativity level and audience type are form-only fields, so they
// come back as defaults rather than what the user last picked.
func ToFormState(voice model.PersonalVoice) FormState {
	return FormState{
		Profile: ProfileData{
			JobTitle: voice.Profile.JobTitle,
			Region:   voice.Profile.GeographicalFocus,
			Skills:   strings.Join(voice.Profile.SkillsAndExpertise, ", "),
		},
		Voice: VoiceData{
			WritingSample:   voice.Tone.WritingSample,
			CreativityLevel: CreativityBalanced,
			Tones:           append([]string(nil), voice.Tone.ToneOfVoiceAttributes...),
		},
		Audience: AudienceData{
			TargetGroups: append([]string(nil), voice.Audience.AudienceDemographics...),
		},
		FineTuning: FineTuningData{
			CallToAction:      voice.FineTuning.EngagementStyle,
			UseEmojis:         voice.FineTuning.UseEmojis,
			TranslateContent:  voice.FineTuning.Translate,
			TranslateLanguage: voice.FineTuning.TranslateTo,
		},
	}
}

// ToAPIModel converts form state into a create payload, defaulting
// every empty field so the persisted record is always well-formed.
// The key and name are regenerated on each conversion; callers that
// are editing an existing voice must carry its id separately and issue
// an update, or a new record is created instead.
func ToAPIModel(state FormState) service.CreatePersonalVoiceRequest {
	skills := splitSkills(state.Profile.Skills)
	if len(skills) == 0 {
		skills = []string{"General"}
	}

	tones := state.Voice.Tones
	if len(tones) == 0 {
		tones = []string{"Professional"}
	}

	groups := state.Audience.TargetGroups
	if len(groups) == 0 {
		groups = []string{"General Audience"}
	}

	enabled := true
	return service.CreatePersonalVoiceRequest{
		Key:     fmt.Sprintf("personal-voice-%d", time.Now().UnixMilli()),
		Name:    "Personal Voice - " + orDefault(state.Profile.JobTitle, "User"),
		Enabled: &enabled,
		Profile: service.VoiceProfilePayload{
			JobTitle:           orDefault(state.Profile.JobTitle, "Professional"),
			GeographicalFocus:  orDefault(state.Profile.Region, "Global"),
			SkillsAndExpertise: skills,
		},
		Tone: service.ToneOfVoicePayload{
			WritingSample:         orDefault(state.Voice.WritingSample, "This is a sample text for the personal voice."),
			ToneOfVoiceAttributes: tones,
		},
		Audience: service.VoiceAudiencePayload{
			AudienceDemographics: groups,
		},
		FineTuning: service.VoiceFineTuningPayload{
			Temperature:     0.7,
			EngagementStyle: orDefault(state.FineTuning.CallToAction, "Informative"),
			UseEmojis:       state.FineTuning.UseEmojis,
			Translate:       state.FineTuning.TranslateContent,
			TranslateTo:     state.FineTuning.TranslateLanguage,
		},
	}
}

// splitSkills turns the comma-joined skills string into a trimmed,
// non-empty list.
func splitSkills(skills string) []string {
	if skills == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(skills, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
