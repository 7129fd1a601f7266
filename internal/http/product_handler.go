package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avansten/marketplace/internal/product"
)

type ProductHandler struct {
	repo product.Repository
}

func NewProductHandler(repo product.Repository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

type catalogResponse struct {
	Items     []product.Product `json:"items"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// List serves both GET /api/products and GET /admin/api/products; the two
// surfaces return the identical document.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	items, updatedAt, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	writeJSON(w, http.StatusOK, catalogResponse{Items: items, UpdatedAt: updatedAt})
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.repo.Get(r.Context(), id)
	if errors.Is(err, product.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type createProductRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Logo        string   `json:"logo"`
	Description string   `json:"description"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Price == nil {
		writeError(w, http.StatusBadRequest, "Invalid product fields")
		return
	}

	p, err := product.New(req.Name, *req.Price, req.Logo, req.Description)
	if errors.Is(err, product.ErrInvalidFields) {
		writeError(w, http.StatusBadRequest, "Invalid product fields")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	if err := h.repo.Create(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save product")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "item": p})
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Logo        *string  `json:"logo"`
	Description *string  `json:"description"`
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.repo.Update(r.Context(), id, product.Update{
		Name:        req.Name,
		Price:       req.Price,
		Logo:        req.Logo,
		Description: req.Description,
	})
	switch {
	case errors.Is(err, product.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
		return
	case errors.Is(err, product.ErrInvalidFields):
		writeError(w, http.StatusBadRequest, "Invalid product fields")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "item": p})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.repo.Delete(r.Context(), id)
	if errors.Is(err, product.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
