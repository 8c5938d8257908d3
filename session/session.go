package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"

	"learnify/models"
)

// Store maps opaque bearer tokens to user snapshots. Tokens never expire;
// a token stays valid until Revoke is called with it or the backing store
// is cleared. The snapshot is taken at login and is not refreshed when the
// user row changes.
type Store interface {
	Create(ctx context.Context, user models.User) (string, error)
	Resolve(ctx context.Context, token string) (models.User, bool)
	Revoke(ctx context.Context, token string) error
}

// NewToken creates a random session token
func NewToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// MemoryStore keeps sessions in a process-wide map. Restarting the process
// drops every session.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]models.User)}
}

func (s *MemoryStore) Create(_ context.Context, user models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := NewToken()
	s.sessions[token] = user
	return token, nil
}

func (s *MemoryStore) Resolve(_ context.Context, token string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.sessions[token]
	return user, exists
}

func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
