package state

import (
	"sync"
	"time"
)

// SessionStore keeps one snapshot per browser session, created on first
// interaction and dropped after idleTTL without activity. Snapshots are never
// written back to the warehouse.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	idleTTL  time.Duration
	now      func() time.Time
}

type sessionEntry struct {
	snap     Snapshot
	lastSeen time.Time
}

func NewSessionStore(idleTTL time.Duration) *SessionStore {
	if idleTTL <= 0 {
		idleTTL = 12 * time.Hour
	}
	return &SessionStore{
		sessions: make(map[string]sessionEntry),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Get returns the stored snapshot for the session id, or a fresh one.
func (s *SessionStore) Get(id string) Snapshot {
	if id == "" {
		return NewSnapshot()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok || s.now().Sub(entry.lastSeen) > s.idleTTL {
		return NewSnapshot()
	}
	return entry.snap
}

// Put stores the snapshot and opportunistically sweeps idle sessions.
func (s *SessionStore) Put(id string, snap Snapshot) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sessions[id] = sessionEntry{snap: snap, lastSeen: now}
	for key, entry := range s.sessions {
		if now.Sub(entry.lastSeen) > s.idleTTL {
			delete(s.sessions, key)
		}
	}
}
