package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avansten/marketplace/internal/order"
)

type OrderHandler struct {
	builder *order.Builder
	repo    order.Repository
}

func NewOrderHandler(builder *order.Builder, repo order.Repository) *OrderHandler {
	return &OrderHandler{builder: builder, repo: repo}
}

type checkoutRequest struct {
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerAddress string         `json:"customerAddress"`
	Items           []checkoutItem `json:"items"`
}

type checkoutItem struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := order.Checkout{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           make([]order.CartItem, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		cmd.Items = append(cmd.Items, order.CartItem{ProductID: it.ProductID, Qty: it.Qty})
	}

	o, err := h.builder.Place(r.Context(), cmd)
	if order.IsValidation(err) {
		// the message names the offending field or product id
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to place order")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "orderId": o.ID, "total": o.Total})
}

type ordersResponse struct {
	Items     []order.Order `json:"items"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	items, updatedAt, err := h.repo.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	writeJSON(w, http.StatusOK, ordersResponse{Items: items, UpdatedAt: updatedAt})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// reject bad values before touching the document
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	o, err := h.repo.UpdateStatus(r.Context(), id, status)
	if errors.Is(err, order.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update order")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "item": o})
}
