package repository

import (
	"context"
	"sync"
)

// Memory is the in-memory backend. Operations never fail. Unlike the durable
// backend it is mutated concurrently by request goroutines, so it carries a
// mutex.
type Memory[T Entity, I any, P Patch[T]] struct {
	mu      sync.Mutex
	items   []T
	prepare func(I) T
}

// NewMemory creates an in-memory repository. prepare builds a stored record
// from an insert payload (id, timestamps, defaults).
func NewMemory[T Entity, I any, P Patch[T]](prepare func(I) T) *Memory[T, I, P] {
	return &Memory[T, I, P]{prepare: prepare}
}

func (m *Memory[T, I, P]) Get(_ context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range m.items {
		if item.GetID() == id {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (m *Memory[T, I, P]) Create(_ context.Context, data I) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := m.prepare(data)
	m.items = append(m.items, item)
	return &item, nil
}

func (m *Memory[T, I, P]) Update(_ context.Context, id string, patch P) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].GetID() == id {
			patch.Apply(&m.items[i])
			updated := m.items[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (m *Memory[T, I, P]) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].GetID() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory[T, I, P]) List(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}
