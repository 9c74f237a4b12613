// Package wizard implements the multi-step personal voice setup flow:
// a linear stepper over four data-entry sections, per-step validation,
// and conversion between the editable form shape and the persisted
// personal voice model.
package wizard

// Step identifies one screen of the setup flow.
type Step string

const (
	StepIntro      Step = "intro"
	StepProfile    Step = "profile"
	StepVoice      Step = "voice"
	StepAudience   Step = "audience"
	StepFineTuning Step = "fine-tuning"
)

// stepOrder fixes the linear navigation order.
var stepOrder = []Step{
	StepIntro,
	StepProfile,
	StepVoice,
	StepAudience,
	StepFineTuning,
}

// CreativityLevel is a form-only setting; the persisted voice model
// carries no such field, so it resets to balanced on every reload.
type CreativityLevel string

const (
	CreativityConservative   CreativityLevel = "conservative"
	CreativityBalanced       CreativityLevel = "balanced"
	CreativityHighlyCreative CreativityLevel = "highlyCreative"
)

// ProfileData holds the "Your Profile" step. Skills is a single
// comma-joined string in the form, split into a list on save.
type ProfileData struct {
	JobTitle string
	Region   string
	Skills   string
}

// VoiceData holds the "Your Voice" step.
type VoiceData struct {
	WritingSample   string
	CreativityLevel CreativityLevel
	Tones           []string
}

// AudienceData holds the "Audience" step.
type AudienceData struct {
	TargetGroups []string
}

// FineTuningData holds the "Fine-tuning" step.
type FineTuningData struct {
	AudienceType      string
	CallToAction      string
	UseEmojis         bool
	TranslateContent  bool
	TranslateLanguage string
}

// FormState is the complete editable state of the flow.
type FormState struct {
	Profile    ProfileData
	Voice      VoiceData
	Audience   AudienceData
	FineTuning FineTuningData
}

// NewFormState returns the empty defaults every flow starts from.
func NewFormState() FormState {
	return FormState{
		Voice: VoiceData{CreativityLevel: CreativityBalanced},
	}
}

// Patch types carry partial section updates; nil fields are left
// untouched so each step only writes what it owns.

type ProfilePatch struct {
	JobTitle *string
	Region   *string
	Skills   *string
}

type VoicePatch struct {
	WritingSample   *string
	CreativityLevel *CreativityLevel
	Tones           *[]string
}

type AudiencePatch struct {
	TargetGroups *[]string
}

type FineTuningPatch struct {
	AudienceType      *string
	CallToAction      *string
	UseEmojis         *bool
	TranslateContent  *bool
	TranslateLanguage *string
}

// Flow is the state container for the setup wizard. It is not safe
// for concurrent use; each caller owns its own flow.
type Flow struct {
	state   FormState
	current Step
}

// NewFlow starts a fresh flow at the intro screen.
func NewFlow() *Flow {
	return &Flow{
		state:   NewFormState(),
		current: StepIntro,
	}
}

// State returns a copy of the current form state.
func (f *Flow) State() FormState {
	return f.state
}

// Current returns the step the flow is on.
func (f *Flow) Current() Step {
	return f.current
}

// GoToStep jumps to the given step unconditionally.
func (f *Flow) GoToStep(step Step) {
	f.current = step
}

// GoToNextStep moves one position forward; no-op on the last step.
func (f *Flow) GoToNextStep() {
	idx := stepIndex(f.current)
	if idx >= 0 && idx < len(stepOrder)-1 {
		f.current = stepOrder[idx+1]
	}
}

// GoToPreviousStep moves one position back; no-op on the first step.
func (f *Flow) GoToPreviousStep() {
	idx := stepIndex(f.current)
	if idx > 0 {
		f.current = stepOrder[idx-1]
	}
}

// ResetForm restores the empty defaults and returns to the intro.
func (f *Flow) ResetForm() {
	f.state = NewFormState()
	f.current = StepIntro
}

// UpdateProfile shallow-merges the patch into the profile section.
func (f *Flow) UpdateProfile(p ProfilePatch) {
	if p.JobTitle != nil {
		f.state.Profile.JobTitle = *p.JobTitle
	}
	if p.Region != nil {
		f.state.Profile.Region = *p.Region
	}
	if p.Skills != nil {
		f.state.Profile.Skills = *p.Skills
	}
}

// UpdateVoice shallow-merges the patch into the voice section.
func (f *Flow) UpdateVoice(p VoicePatch) {
	if p.WritingSample != nil {
		f.state.Voice.WritingSample = *p.WritingSample
	}
	if p.CreativityLevel != nil {
		f.state.Voice.CreativityLevel = *p.CreativityLevel
	}
	if p.Tones != nil {
		f.state.Voice.Tones = append([]string(nil), *p.Tones...)
	}
}

// UpdateAudience shallow-merges the patch into the audience section.
func (f *Flow) UpdateAudience(p AudiencePatch) {
	if p.TargetGroups != nil {
		f.state.Audience.TargetGroups = append([]string(nil), *p.TargetGroups...)
	}
}

// UpdateFineTuning shallow-merges the patch into the fine-tuning section.
func (f *Flow) UpdateFineTuning(p FineTuningPatch) {
	if p.AudienceType != nil {
		f.state.FineTuning.AudienceType = *p.AudienceType
	}
	if p.CallToAction != nil {
		f.state.FineTuning.CallToAction = *p.CallToAction
	}
	if p.UseEmojis != nil {
		f.state.FineTuning.UseEmojis = *p.UseEmojis
	}
	if p.TranslateContent != nil {
		f.state.FineTuning.TranslateContent = *p.TranslateContent
	}
	if p.TranslateLanguage != nil {
		f.state.FineTuning.TranslateLanguage = *p.TranslateLanguage
	}
}

func stepIndex(step Step) int {
	for i, s := range stepOrder {
		if s == step {
			return i
		}
	}
	return -1
}
