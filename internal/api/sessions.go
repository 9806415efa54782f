package api

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"ai_site_builder/internal/editor"
)

// ErrTooManySessions is returned when the store is at capacity.
var ErrTooManySessions = errors.New("too many open editor sessions")

// SessionOptions bounds the editor sessions kept by a SessionStore.
type SessionOptions struct {
	IdleTTL     time.Duration // sessions unused for longer are disposed; zero keeps them
	MaxSessions int           // zero means unlimited
}

type session struct {
	handle   *editor.Handle
	lastUsed time.Time
}

// SessionStore keeps the live editor handles created over HTTP.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	opts     SessionOptions
	now      func() time.Time
}

func NewSessionStore(opts SessionOptions) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		opts:     opts,
		now:      time.Now,
	}
}

// Full reports whether a new session would be rejected.
func (s *SessionStore) Full() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.MaxSessions > 0 && len(s.sessions) >= s.opts.MaxSessions
}

// Add registers handle under a new random ID.
func (s *SessionStore) Add(handle *editor.Handle) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opts.MaxSessions > 0 && len(s.sessions) >= s.opts.MaxSessions {
		return "", ErrTooManySessions
	}
	id := uuid.NewString()
	s.sessions[id] = &session{handle: handle, lastUsed: s.now()}
	return id, nil
}

// Get returns the session's handle and marks it as used.
func (s *SessionStore) Get(id string) (*editor.Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastUsed = s.now()
	return sess.handle, true
}

// Remove forgets the session and returns its handle for disposal.
func (s *SessionStore) Remove(id string) (*editor.Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	delete(s.sessions, id)
	return sess.handle, true
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep disposes sessions idle for longer than the TTL and returns how many
// were closed.
func (s *SessionStore) Sweep() int {
	if s.opts.IdleTTL <= 0 {
		return 0
	}
	s.mu.Lock()
	cutoff := s.now().Add(-s.opts.IdleTTL)
	var expired []*editor.Handle
	for id, sess := range s.sessions {
		if sess.lastUsed.Before(cutoff) {
			expired = append(expired, sess.handle)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, handle := range expired {
		if err := editor.Dispose(handle); err != nil {
			log.Printf("WARN: idle session disposed with error: %v", err)
		}
	}
	if len(expired) > 0 {
		log.Printf("Closed %d idle editor sessions", len(expired))
	}
	return len(expired)
}

// Run sweeps idle sessions every interval until ctx is done.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	if s.opts.IdleTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-ctx.Done():
			return
		}
	}
}

// Close disposes every session, used on shutdown.
func (s *SessionStore) Close() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[string]*session)
	s.mu.Unlock()

	for _, sess := range sessions {
		_ = editor.Dispose(sess.handle)
	}
}
