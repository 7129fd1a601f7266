// Package store persists a JSON aggregate ({updatedAt, items}) as a single
// file, replaced atomically on every write. Repositories get the Store
// interface injected so tests can run against the in-memory variant.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Document is one JSON aggregate on disk.
type Document[T any] struct {
	UpdatedAt time.Time `json:"updatedAt"`
	Items     []T       `json:"items"`
}

type Store[T any] interface {
	// Load returns the current document. A missing, unreadable or corrupt
	// backing file yields an empty document, never an error.
	Load(ctx context.Context) (Document[T], error)
	// Save replaces the document and stamps UpdatedAt. The replace is
	// all-or-nothing: a concurrent reader sees either the old or the new
	// file, never a partial write.
	Save(ctx context.Context, doc Document[T]) error
}

// File is the flat-file implementation of Store.
type File[T any] struct {
	path string
	now  func() time.Time
}

func NewFile[T any](path string) *File[T] {
	return &File[T]{path: path, now: time.Now}
}

// Path returns the backing file location.
func (f *File[T]) Path() string { return f.path }

func (f *File[T]) Load(ctx context.Context) (Document[T], error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return f.empty(), nil
	}
	var doc Document[T]
	if err := json.Unmarshal(raw, &doc); err != nil {
		return f.empty(), nil
	}
	if doc.Items == nil {
		doc.Items = []T{}
	}
	return doc, nil
}

func (f *File[T]) Save(ctx context.Context, doc Document[T]) error {
	doc.UpdatedAt = f.now().UTC()
	if doc.Items == nil {
		doc.Items = []T{}
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

func (f *File[T]) empty() Document[T] {
	return Document[T]{UpdatedAt: f.now().UTC(), Items: []T{}}
}
