package httpapi

import (
	"errors"
	"sync"
	"time"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/session"
)

// errSessionNotFound is returned for unknown or expired session IDs.
var errSessionNotFound = errors.New("session not found")

// entry serializes access to one session.
type entry struct {
	mu       sync.Mutex
	sess     session.Session
	lastUsed time.Time
}

// Registry holds the running sessions of the HTTP adapter. Sessions
// themselves are not safe for concurrent use, so every call goes
// through the entry's mutex.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
}

// NewRegistry creates a Registry that forgets sessions idle for longer
// than ttl (0 keeps them forever).
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Add registers s.
func (r *Registry) Add(s session.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[s.ID()] = &entry{sess: s, lastUsed: r.now()}
}

// With runs fn on the session id of app while holding its lock.
func (r *Registry) With(id string, app crowns.App, fn func(session.Session) error) error {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok || e.sess.App() != app {
		return errSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = r.now()
	return fn(e.sess)
}

// Remove forgets the session id.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Sweep removes idle sessions and returns them so the caller can
// finish them.
func (r *Registry) Sweep() []session.Session {
	if r.ttl <= 0 {
		return nil
	}
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	var expired []session.Session
	for id, e := range r.entries {
		if !e.mu.TryLock() {
			continue
		}
		if e.lastUsed.Before(cutoff) {
			expired = append(expired, e.sess)
			delete(r.entries, id)
		}
		e.mu.Unlock()
	}
	return expired
}
