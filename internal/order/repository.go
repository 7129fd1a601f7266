package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avansten/marketplace/internal/store"
)

type Repository interface {
	List(ctx context.Context) ([]Order, time.Time, error)
	// Create prepends the order, so List returns newest first.
	Create(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, id string, status Status) (Order, error)
}

type repo struct {
	store store.Store[Order]
	now   func() time.Time

	// single writer per document, see product.Repository
	mu sync.Mutex
}

func NewRepository(s store.Store[Order]) Repository {
	return &repo{store: s, now: time.Now}
}

func (r *repo) List(ctx context.Context) ([]Order, time.Time, error) {
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load orders: %w", err)
	}
	return doc.Items, doc.UpdatedAt, nil
}

func (r *repo) Create(ctx context.Context, o *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	doc.Items = append([]Order{*o}, doc.Items...)
	if err := r.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func (r *repo) UpdateStatus(ctx context.Context, id string, status Status) (Order, error) {
	if !status.Valid() {
		return Order{}, ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.store.Load(ctx)
	if err != nil {
		return Order{}, fmt.Errorf("load orders: %w", err)
	}
	for i := range doc.Items {
		if doc.Items[i].ID != id {
			continue
		}
		stamp := r.now().UTC()
		doc.Items[i].Status = status
		doc.Items[i].UpdatedAt = &stamp
		if err := r.store.Save(ctx, doc); err != nil {
			return Order{}, fmt.Errorf("save orders: %w", err)
		}
		return doc.Items[i], nil
	}
	return Order{}, ErrNotFound
}
