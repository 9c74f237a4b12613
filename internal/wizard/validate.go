package wizard

// StepResult carries the outcome of validating one step. Errors is
// keyed by field name with a user-facing message.
type StepResult struct {
	Valid  bool
	Errors map[string]string
}

func result(errors map[string]string) StepResult {
	return StepResult{Valid: len(errors) == 0, Errors: errors}
}

// ValidateProfile requires job title, region and skills to be present.
func ValidateProfile(p ProfileData) StepResult {
	errors := map[string]string{}
	if p.JobTitle == "" {
		errors["jobTitle"] = "Job title is required"
	}
	if p.Region == "" {
		errors["region"] = "Please select a region"
	}
	if p.Skills == "" {
		errors["skills"] = "Please describe your skills"
	}
	return result(errors)
}

// ValidateVoice requires a creativity level and at least one tone.
func ValidateVoice(v VoiceData) StepResult {
	errors := map[string]string{}
	if v.CreativityLevel == "" {
		errors["creativityLevel"] = "Please select a creativity level"
	}
	if len(v.Tones) == 0 {
		errors["tones"] = "Please select at least one tone"
	}
	return result(errors)
}

// ValidateAudience requires at least one target group.
func ValidateAudience(a AudienceData) StepResult {
	errors := map[string]string{}
	if len(a.TargetGroups) == 0 {
		errors["targetGroups"] = "Please select at least one audience group"
	}
	return result(errors)
}

// ValidateFineTuning never blocks; every field has a usable default.
func ValidateFineTuning(FineTuningData) StepResult {
	return result(map[string]string{})
}

// ValidateStep validates the named step against the form state. The
// intro step has no inputs and is always valid.
func ValidateStep(step Step, state FormState) StepResult {
	switch step {
	case StepProfile:
		return ValidateProfile(state.Profile)
	case StepVoice:
		return ValidateVoice(state.Voice)
	case StepAudience:
		return ValidateAudience(state.Audience)
	case StepFineTuning:
		return ValidateFineTuning(state.FineTuning)
	default:
		return result(map[string]string{})
	}
}

// Advance validates the current step and moves forward only when it
// passes. The returned result carries the blocking errors otherwise.
func (f *Flow) Advance() StepResult {
	res := ValidateStep(f.current, f.state)
	if res.Valid {
		f.GoToNextStep()
	}
	return res
}
