package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"customer-intake/pkg/services"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Store keeps live sessions and expires idle ones.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	newList  func() *services.RecordListWorkflow
	logger   *slog.Logger
	now      func() time.Time
}

// NewStore creates a store whose sessions expire after ttl without use.
// newList builds the customer list workflow each session gets.
func NewStore(ttl time.Duration, newList func() *services.RecordListWorkflow, logger *slog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		newList:  newList,
		logger:   logger,
		now:      time.Now,
	}
}

func (st *Store) Create() *Session {
	s := newSession(st.newList(), st.now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.logger.Info("session created", "session", s.ID)
	return s
}

// Get returns a live session and marks it used.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	now := st.now()
	if st.ttl > 0 && now.Sub(s.idleSince()) > st.ttl {
		st.Delete(id)
		return nil, ErrSessionExpired
	}

	s.touch(now)
	return s, nil
}

// Delete drops a session. Its form is reset so a pending success timer has
// nothing left to act on.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()

	if ok {
		s.Form.Reset()
		st.logger.Info("session ended", "session", id)
	}
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle for longer than the ttl and returns how many
// were removed.
func (st *Store) Sweep() int {
	if st.ttl <= 0 {
		return 0
	}
	now := st.now()

	var expired []string
	st.mu.RLock()
	for id, s := range st.sessions {
		if now.Sub(s.idleSince()) > st.ttl {
			expired = append(expired, id)
		}
	}
	st.mu.RUnlock()

	for _, id := range expired {
		st.Delete(id)
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				st.logger.Info("expired idle sessions", "count", n)
			}
		}
	}
}
