// Package session holds the signed-in user shared between views.
package session

import (
	"maps"
	"sync"

	"usersignup/internal/domain"
)

// Store is an in-memory, concurrency-safe user session.
type Store struct {
	mu   sync.RWMutex
	user domain.User
}

func NewStore() *Store {
	return &Store{}
}

// GetUser returns the current user, or nil when nobody is signed in.
func (s *Store) GetUser() domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SetUser replaces the current user. The map is copied so later writes
// by the caller do not leak into the session.
func (s *Store) SetUser(user domain.User) {
	var copied domain.User
	if user != nil {
		copied = maps.Clone(user)
	}

	s.mu.Lock()
	s.user = copied
	s.mu.Unlock()
}
