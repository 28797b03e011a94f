package memory

import (
	"context"
	"sync"

	"oficina_nova_brasil/internal/usecase/interfaces"
)

// Store keeps slots in process memory. Used by tests and STORAGE_DRIVER=memory.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

var _ interfaces.IKeyValueStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, name string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.slots[name]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}

func (s *Store) Set(_ context.Context, name string, payload []byte) error {
	cp := append([]byte(nil), payload...)
	s.mu.Lock()
	s.slots[name] = cp
	s.mu.Unlock()
	return nil
}
