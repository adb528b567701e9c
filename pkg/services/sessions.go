package services

import (
	"context"
	"sync"
	"time"

	"github.com/agrimind/landing/pkg/metrics"
)

type session struct {
	waitlist *Waitlist
	lastSeen time.Time
}

// SessionStore keeps per-visitor waitlist state in memory. Sessions idle
// for longer than the TTL are dropped by Sweep.
type SessionStore struct {
	sessions map[string]*session
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Waitlist returns the waitlist for id, creating it on first use, and marks
// the session as seen.
func (s *SessionStore) Waitlist(id string) *Waitlist {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[id]
	if !exists || now.Sub(sess.lastSeen) > s.ttl {
		sess = &session{waitlist: NewWaitlist()}
		s.sessions[id] = sess
		metrics.ActiveSessions.Set(float64(len(s.sessions)))
	}
	sess.lastSeen = now
	return sess.waitlist
}

// Len reports the number of sessions held, expired or not.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
func (s *SessionStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	metrics.ActiveSessions.Set(float64(len(s.sessions)))
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
