package product

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avansten/marketplace/internal/store"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	List(ctx context.Context) ([]Product, time.Time, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) error
	Update(ctx context.Context, id string, u Update) (Product, error)
	Delete(ctx context.Context, id string) error
}

type repo struct {
	store store.Store[Product]

	// Serializes read-modify-write cycles so two concurrent catalog edits
	// cannot silently drop each other. Readers stay lock-free; the atomic
	// file replace keeps their view consistent.
	mu sync.Mutex
}

func NewRepository(s store.Store[Product]) Repository {
	return &repo{store: s}
}

func (r *repo) List(ctx context.Context) ([]Product, time.Time, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load catalog: %w", err)
	}
	return doc.Items, doc.UpdatedAt, nil
}

func (r *repo) Get(ctx context.Context, id string) (Product, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return Product{}, fmt.Errorf("load catalog: %w", err)
	}
	for _, p := range doc.Items {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func (r *repo) Create(ctx context.Context, p Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	// newest first, matching the admin panel's listing order
	doc.Items = append([]Product{p}, doc.Items...)
	if err := r.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

func (r *repo) Update(ctx context.Context, id string, u Update) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.store.Load(ctx)
	if err != nil {
		return Product{}, fmt.Errorf("load catalog: %w", err)
	}
	for i, p := range doc.Items {
		if p.ID != id {
			continue
		}
		updated, err := p.Apply(u)
		if err != nil {
			return Product{}, err
		}
		doc.Items[i] = updated
		if err := r.store.Save(ctx, doc); err != nil {
			return Product{}, fmt.Errorf("save catalog: %w", err)
		}
		return updated, nil
	}
	return Product{}, ErrNotFound
}

func (r *repo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	kept := doc.Items[:0:0]
	for _, p := range doc.Items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(doc.Items) {
		// nothing removed; leave the document (and its updatedAt) untouched
		return ErrNotFound
	}
	doc.Items = kept
	if err := r.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}
