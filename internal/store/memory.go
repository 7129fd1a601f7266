package store

import (
	"context"
	"sync"
	"time"
)

// Memory keeps the document in process memory. Used by tests in place of
// File so they never touch the filesystem.
type Memory[T any] struct {
	mu  sync.Mutex
	doc Document[T]
	set bool

	// Now lets tests pin the clock. Defaults to time.Now.
	Now func() time.Time
	// SaveErr, when set, is returned by every Save call.
	SaveErr error
}

func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{}
}

func (m *Memory[T]) Load(ctx context.Context) (Document[T], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return Document[T]{UpdatedAt: m.now().UTC(), Items: []T{}}, nil
	}
	out := m.doc
	out.Items = append([]T(nil), m.doc.Items...)
	return out, nil
}

func (m *Memory[T]) Save(ctx context.Context, doc Document[T]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	doc.UpdatedAt = m.now().UTC()
	if doc.Items == nil {
		doc.Items = []T{}
	}
	doc.Items = append([]T(nil), doc.Items...)
	m.doc = doc
	m.set = true
	return nil
}

// UpdatedAt reports the stamp of the last Save, zero if none happened.
func (m *Memory[T]) UpdatedAt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return time.Time{}
	}
	return m.doc.UpdatedAt
}

func (m *Memory[T]) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}
