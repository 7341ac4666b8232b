// Package session owns the per-UI-session state: the add-customer form, the
// current screen, the cached customer list and pending delete confirmations.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"customer-intake/pkg/form"
	"customer-intake/pkg/services"
	"customer-intake/pkg/validation"
)

// Screen identifies where a session is in the app.
type Screen int

const (
	ScreenEntry Screen = iota
	ScreenContact
	ScreenPreferences
	ScreenCustomers
)

var screenNames = map[Screen]string{
	ScreenEntry:       "entry",
	ScreenContact:     "contact",
	ScreenPreferences: "preferences",
	ScreenCustomers:   "customers",
}

func (s Screen) String() string {
	if name, ok := screenNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Screen) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseScreen maps a screen name back to its Screen.
func ParseScreen(name string) (Screen, bool) {
	for s, n := range screenNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// ErrWrongScreen is returned for a move the current screen does not offer.
var ErrWrongScreen = errors.New("move not allowed from the current screen")

// Session is one UI session. The form it owns is reset whenever the user
// leaves the add flow.
type Session struct {
	ID   string
	Form *form.State
	List *services.RecordListWorkflow

	mu       sync.Mutex
	screen   Screen
	lastSeen time.Time
	deletes  map[string]*services.DeleteRequest
}

func newSession(list *services.RecordListWorkflow, now time.Time) *Session {
	return &Session{
		ID:       uuid.New().String(),
		Form:     form.New(),
		List:     list,
		screen:   ScreenEntry,
		lastSeen: now,
		deletes:  make(map[string]*services.DeleteRequest),
	}
}

func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Navigate moves to screen. The preferences screen is only reachable through
// Next. Leaving the add flow for anything other than the other add screen
// discards the form.
func (s *Session) Navigate(to Screen) error {
	if to == ScreenPreferences {
		if s.Screen() == ScreenPreferences {
			return nil
		}
		return s.Next()
	}

	s.mu.Lock()
	from := s.screen
	s.screen = to
	s.mu.Unlock()

	if inAddFlow(from) && !inAddFlow(to) {
		s.Form.Reset()
	}
	return nil
}

// Next advances from the contact screen to the preferences screen. It returns
// a *validation.Failure when the first screen's fields are incomplete and
// ErrWrongScreen when the session is not on the contact screen.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != ScreenContact {
		return ErrWrongScreen
	}
	if failure := validation.CanAdvanceFromScreenOne(s.Form.Data()); failure != nil {
		return failure
	}
	s.screen = ScreenPreferences
	return nil
}

// Back goes one screen back. Going back from preferences keeps the form.
func (s *Session) Back() Screen {
	switch s.Screen() {
	case ScreenPreferences:
		_ = s.Navigate(ScreenContact)
	default:
		_ = s.Navigate(ScreenEntry)
	}
	return s.Screen()
}

// ReturnToEntry is called once a successful submission has been shown.
func (s *Session) ReturnToEntry() {
	s.mu.Lock()
	s.screen = ScreenEntry
	s.mu.Unlock()
}

// HoldDelete stores a pending delete and returns the token that confirms or
// aborts it. An earlier request for the same customer is aborted and its
// token stops working.
func (s *Session) HoldDelete(req *services.DeleteRequest) string {
	token := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	for t, held := range s.deletes {
		if held.ID() == req.ID() {
			held.Abort()
			delete(s.deletes, t)
		}
	}
	s.deletes[token] = req
	return token
}

// PendingDeletes reports how many delete confirmations the session holds.
func (s *Session) PendingDeletes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.deletes)
}

// TakeDelete removes and returns the pending delete for token.
func (s *Session) TakeDelete(token string) (*services.DeleteRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.deletes[token]
	if ok {
		delete(s.deletes, token)
	}
	return req, ok
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func inAddFlow(s Screen) bool {
	return s == ScreenContact || s == ScreenPreferences
}
