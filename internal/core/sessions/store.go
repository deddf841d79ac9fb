// Package sessions keeps the dashboard sessions of uploaded files in memory.
package sessions

import (
	"errors"
	"sort"
	"sync"
	"time"

	"dashboard-service/internal/core/dashboard"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("sessão não encontrada ou expirada")

type entry struct {
	session  *dashboard.Session
	lastSeen time.Time
}

// Store is a TTL bounded, size bounded map of sessions.
// Updates run under the store lock, so two filter changes on one session never overlap.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	max     int
	nowFn   func() time.Time
	entries map[string]*entry
}

// NewStore creates a store. ttl <= 0 disables expiry and max <= 0 disables the size bound.
func NewStore(ttl time.Duration, max int) *Store {
	return &Store{
		ttl:     ttl,
		max:     max,
		nowFn:   time.Now,
		entries: make(map[string]*entry),
	}
}

// Put stores a session, evicting expired sessions and, when full, the least recently used ones.
func (s *Store) Put(session *dashboard.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	s.expireLocked(now)
	if s.max > 0 {
		for len(s.entries) >= s.max {
			s.evictOldestLocked()
		}
	}
	s.entries[session.ID] = &entry{session: session, lastSeen: now}
}

// Update runs fn with the session while holding the store lock; fn may mutate the session filters.
func (s *Store) Update(id string, fn func(*dashboard.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	e, ok := s.entries[id]
	if !ok || s.expired(e, now) {
		delete(s.entries, id)
		return ErrNotFound
	}
	e.lastSeen = now
	return fn(e.session)
}

// Delete drops a session; deleting an unknown id is not an error.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(s.nowFn())
	return len(s.entries)
}

func (s *Store) expired(e *entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.lastSeen) > s.ttl
}

func (s *Store) expireLocked(now time.Time) {
	for id, e := range s.entries {
		if s.expired(e, now) {
			delete(s.entries, id)
		}
	}
}

func (s *Store) evictOldestLocked() {
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.entries[ids[i]].lastSeen.Before(s.entries[ids[j]].lastSeen)
	})
	if len(ids) > 0 {
		delete(s.entries, ids[0])
	}
}
