// Package form holds the session-scoped state of the two-screen add-customer flow.
package form

import (
	"errors"
	"sync"

	"go.uber.org/atomic"

	"customer-intake/pkg/models"
)

// Phase is the submission lifecycle of a form.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	}
	return "unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

var (
	ErrAlreadySubmitted = errors.New("form already submitted")
	ErrSubmitInProgress = errors.New("submission already in progress")
)

// Snapshot is a point-in-time copy of a form.
type Snapshot struct {
	Data       models.FormData `json:"data"`
	Phase      Phase           `json:"phase"`
	Generation uint64          `json:"generation"`
}

// State is the mutable form owned by one session. Updates merge and never
// clear fields they were not given. Submitted is terminal until Reset.
type State struct {
	mu        sync.Mutex
	data      models.FormData
	phase     Phase
	observers map[int]func(Snapshot)
	nextObs   int

	// generation changes on every Reset so late responses can be told apart.
	generation atomic.Uint64
}

// New returns an empty form in the editing phase.
func New() *State {
	return &State{observers: make(map[int]func(Snapshot))}
}

// UpdateFirstScreen merges contact screen fields and returns the new snapshot.
func (s *State) UpdateFirstScreen(p models.ContactPatch) Snapshot {
	return s.mutate(func(d *models.FormData) { p.ApplyTo(d) })
}

// UpdateSecondScreen merges preferences screen fields and returns the new snapshot.
func (s *State) UpdateSecondScreen(p models.PreferencesPatch) Snapshot {
	return s.mutate(func(d *models.FormData) { p.ApplyTo(d) })
}

// Reset restores the empty form, clears the submitted latch and starts a new
// generation.
func (s *State) Reset() Snapshot {
	s.mu.Lock()
	s.data = models.FormData{}
	s.phase = PhaseEditing
	s.generation.Inc()
	snap := s.snapshotLocked()
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, snap)
	return snap
}

// Snapshot returns a copy of the current form.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Data returns a copy of the collected fields.
func (s *State) Data() models.FormData {
	return s.Snapshot().Data
}

// Phase returns the current submission phase.
func (s *State) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Generation identifies the form instance between resets.
func (s *State) Generation() uint64 {
	return s.generation.Load()
}

// BeginSubmit moves Editing to Submitting and returns the snapshot to send.
func (s *State) BeginSubmit() (Snapshot, error) {
	s.mu.Lock()
	switch s.phase {
	case PhaseSubmitted:
		s.mu.Unlock()
		return Snapshot{}, ErrAlreadySubmitted
	case PhaseSubmitting:
		s.mu.Unlock()
		return Snapshot{}, ErrSubmitInProgress
	}
	s.phase = PhaseSubmitting
	snap := s.snapshotLocked()
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, snap)
	return snap, nil
}

// FinishSubmit ends a submission started by BeginSubmit. A successful one
// latches the form as Submitted, anything else returns it to Editing. It
// reports false and changes nothing when the form was reset in between.
func (s *State) FinishSubmit(generation uint64, succeeded bool) bool {
	s.mu.Lock()
	if s.generation.Load() != generation || s.phase != PhaseSubmitting {
		s.mu.Unlock()
		return false
	}
	if succeeded {
		s.phase = PhaseSubmitted
	} else {
		s.phase = PhaseEditing
	}
	snap := s.snapshotLocked()
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, snap)
	return true
}

// Subscribe registers fn to receive every new snapshot. The returned func
// removes it.
func (s *State) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *State) mutate(apply func(*models.FormData)) Snapshot {
	s.mu.Lock()
	apply(&s.data)
	snap := s.snapshotLocked()
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, snap)
	return snap
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{Data: s.data, Phase: s.phase, Generation: s.generation.Load()}
}

func (s *State) observersLocked() []func(Snapshot) {
	if len(s.observers) == 0 {
		return nil
	}
	out := make([]func(Snapshot), 0, len(s.observers))
	for _, fn := range s.observers {
		out = append(out, fn)
	}
	return out
}

func notify(obs []func(Snapshot), snap Snapshot) {
	for _, fn := range obs {
		fn(snap)
	}
}
