package sse

import (
	"sync"

	domainerrors "elevenstore/internal/domain/errors"
	"elevenstore/internal/errors"
)

// Registry indexes the bridges of open sessions.
type Registry struct {
	mu      sync.RWMutex
	bridges map[string]*Bridge
}

func NewRegistry() *Registry {
	return &Registry{bridges: make(map[string]*Bridge)}
}

func (r *Registry) Add(sessionID string, b *Bridge) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bridges[sessionID] = b
}

func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bridges, sessionID)
}

// Get returns ErrSessionNotFound for unknown or closed sessions.
func (r *Registry) Get(sessionID string) (*Bridge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bridges[sessionID]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrSessionNotFound)
	}

	return b, nil
}

// Len reports the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bridges)
}

// CloseAll closes every bridge so their streams end.
func (r *Registry) CloseAll() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bridges {
		b.Close()
	}
}
