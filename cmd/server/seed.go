package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/google/uuid"

	"github.com/avansten/marketplace/internal/order"
	"github.com/avansten/marketplace/internal/product"
	"github.com/avansten/marketplace/internal/store"
)

// initDataFiles creates the two documents on first boot: a demo catalog so
// the storefront isn't empty, and an empty orders document. Existing files
// are left alone.
func initDataFiles(ctx context.Context, products *store.File[product.Product], orders *store.File[order.Order]) error {
	if absent(products.Path()) {
		if err := products.Save(ctx, store.Document[product.Product]{Items: demoCatalog()}); err != nil {
			return err
		}
	}
	if absent(orders.Path()) {
		if err := orders.Save(ctx, store.Document[order.Order]{}); err != nil {
			return err
		}
	}
	return nil
}

func absent(path string) bool {
	_, err := os.Stat(path)
	return errors.Is(err, fs.ErrNotExist)
}

func demoCatalog() []product.Product {
	return []product.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Aurora Headphones",
			Price:       129.99,
			Logo:        "https://images.unsplash.com/photo-1518441902117-f0a06e2e2f93?auto=format&fit=crop&w=800&q=80",
			Description: "Premium over-ear headphones with warm bass and long battery life.",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Nebula Keyboard",
			Price:       89.50,
			Logo:        "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=800&q=80",
			Description: "Mechanical keyboard with a clean, minimal aesthetic and satisfying switches.",
		},
		{
			ID:          uuid.NewString(),
			Name:        "Prism Smart Lamp",
			Price:       54.00,
			Logo:        "https://images.unsplash.com/photo-1504197885-609741792ce7?auto=format&fit=crop&w=800&q=80",
			Description: "Mood lighting with scenes and schedules. Perfect for desks and bedrooms.",
		},
	}
}
