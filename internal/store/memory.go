package store

import (
	"context"
	"sync"
)

// MemoryStore est le double en mémoire du Store, utilisé par les tests
// et utilisable comme backend alternatif. Il enregistre aussi les
// publications pour vérifier les notifications.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string

	Published []string // canaux notifiés, dans l'ordre
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) Publish(_ context.Context, channel, payload string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Published = append(m.Published, channel+":"+payload)
	return nil
}
