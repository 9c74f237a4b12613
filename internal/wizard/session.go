package wizard

import (
	"github.com/google/uuid"

	"voiceforge/internal/model"
	"voiceforge/internal/service"
)

// Session drives the preview/edit/delete lifecycle around a flow: it
// remembers which persisted voice is loaded so a finished edit updates
// that record in place instead of creating a new one, and it gates
// deletion behind an explicit confirmation.
type Session struct {
	flow             *Flow
	saved            *FormState
	voiceID          *uuid.UUID
	editMode         bool
	confirmingDelete bool
}

// NewSession starts a session with a fresh flow and nothing loaded.
func NewSession() *Session {
	return &Session{flow: NewFlow()}
}

// Flow exposes the underlying step flow.
func (s *Session) Flow() *Flow {
	return s.flow
}

// Load takes the tenant's voices and adopts the first one, if any, as
// the previewed record.
func (s *Session) Load(voices []model.PersonalVoice) {
	if len(voices) == 0 {
		s.saved = nil
		s.voiceID = nil
		return
	}
	state := ToFormState(voices[0])
	id := voices[0].ID
	s.saved = &state
	s.voiceID = &id
}

// HasVoice reports whether a persisted voice is loaded.
func (s *Session) HasVoice() bool {
	return s.saved != nil
}

// InPreview reports whether the session shows the saved voice rather
// than the form flow.
func (s *Session) InPreview() bool {
	return s.saved != nil && !s.editMode
}

// Saved returns the loaded voice's form state, if any.
func (s *Session) Saved() (FormState, bool) {
	if s.saved == nil {
		return FormState{}, false
	}
	return *s.saved, true
}

// Edit re-hydrates the flow from the saved voice and jumps to the
// profile step. No-op when nothing is loaded.
func (s *Session) Edit() {
	if s.saved == nil {
		return
	}
	s.flow.state = *s.saved
	s.flow.state.Voice.Tones = append([]string(nil), s.saved.Voice.Tones...)
	s.flow.state.Audience.TargetGroups = append([]string(nil), s.saved.Audience.TargetGroups...)
	s.flow.GoToStep(StepProfile)
	s.editMode = true
}

// FinishPayload converts the current form state into a create payload
// and returns the id of the voice being edited, nil for a first-time
// setup. The caller decides between create and update from the id.
func (s *Session) FinishPayload() (service.CreatePersonalVoiceRequest, *uuid.UUID) {
	return ToAPIModel(s.flow.State()), s.voiceID
}

// MarkSaved records the persisted result of a finished flow and
// returns the session to preview mode.
func (s *Session) MarkSaved(voice model.PersonalVoice) {
	state := ToFormState(voice)
	id := voice.ID
	s.saved = &state
	s.voiceID = &id
	s.editMode = false
}

// RequestDelete opens the confirmation gate. It reports false when
// there is nothing to delete.
func (s *Session) RequestDelete() bool {
	if s.saved == nil {
		return false
	}
	s.confirmingDelete = true
	return true
}

// ConfirmingDelete reports whether deletion is awaiting confirmation.
func (s *Session) ConfirmingDelete() bool {
	return s.confirmingDelete
}

// CancelDelete closes the confirmation gate without deleting.
func (s *Session) CancelDelete() {
	s.confirmingDelete = false
}

// ConfirmDelete completes a confirmed deletion: it returns the id to
// delete and resets the session to an empty intro flow. Nil is
// returned when no confirmation was pending.
func (s *Session) ConfirmDelete() *uuid.UUID {
	if !s.confirmingDelete || s.voiceID == nil {
		return nil
	}
	id := *s.voiceID
	s.saved = nil
	s.voiceID = nil
	s.confirmingDelete = false
	s.editMode = false
	s.flow.ResetForm()
	return &id
}
