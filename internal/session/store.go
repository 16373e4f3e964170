package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrStoreFull is returned by Create once the session limit is reached.
var ErrStoreFull = errors.New("session limit reached")

// Store keeps the live sessions in memory.
type Store struct {
	opts   Options
	max    int
	logger *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty store creating sessions with opts. max limits
// the number of live sessions.
func NewStore(opts Options, max int, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		opts:     opts,
		max:      max,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Options returns the options sessions are created with.
func (st *Store) Options() Options {
	return st.opts
}

// Create adds a new session.
func (st *Store) Create() (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.sessions) >= st.max {
		return nil, ErrStoreFull
	}

	s, err := New(uuid.NewString(), st.opts, st.logger)
	if err != nil {
		return nil, err
	}
	st.sessions[s.ID] = s
	activeSessions.Inc()
	return s, nil
}

// Get looks a session up by id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session. It reports whether the session existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	activeSessions.Dec()
	return true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
