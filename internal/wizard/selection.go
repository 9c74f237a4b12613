package wizard

// MaxSelections caps how many tones or target groups may be picked at
// once. The cap is enforced here in the flow, never by the persistence
// layer.
const MaxSelections = 4

// CanSelect reports whether option may be added to selected. Already
// selected options can always be toggled off.
func CanSelect(selected []string, option string) bool {
	if contains(selected, option) {
		return true
	}
	return len(selected) < MaxSelections
}

// toggle flips option in selected: removal always succeeds, addition
// is dropped once the cap is reached.
func toggle(selected []string, option string) []string {
	if contains(selected, option) {
		out := make([]string, 0, len(selected)-1)
		for _, s := range selected {
			if s != option {
				out = append(out, s)
			}
		}
		return out
	}
	if len(selected) >= MaxSelections {
		return selected
	}
	return append(append([]string(nil), selected...), option)
}

// ToggleTone toggles a tone selection and reports whether the flow
// state changed.
func (f *Flow) ToggleTone(tone string) bool {
	next := toggle(f.state.Voice.Tones, tone)
	changed := len(next) != len(f.state.Voice.Tones)
	f.state.Voice.Tones = next
	return changed
}

// ToggleTargetGroup toggles an audience group selection and reports
// whether the flow state changed.
func (f *Flow) ToggleTargetGroup(group string) bool {
	next := toggle(f.state.Audience.TargetGroups, group)
	changed := len(next) != len(f.state.Audience.TargetGroups)
	f.state.Audience.TargetGroups = next
	return changed
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
