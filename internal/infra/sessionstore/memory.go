package sessionstore

import (
	"context"
	"sync"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/infra"
)

// MemoryStore keeps associations for the lifetime of the process.
// The mutex protects the map only; it does not serialize issuance.
type MemoryStore struct {
	mu   sync.RWMutex
	keys map[string]key.SessionKey
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{keys: make(map[string]key.SessionKey)}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (*key.SessionKey, error) {
	s.mu.RLock()
	sk, ok := s.keys[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, infra.NewErr(infra.KindNotFound, "session key not found", nil)
	}
	return &sk, nil
}

func (s *MemoryStore) Put(_ context.Context, sk *key.SessionKey) error {
	s.mu.Lock()
	s.keys[sk.SessionID] = *sk
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}
