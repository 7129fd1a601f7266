package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avansten/marketplace/internal/product"
)

type fakeProductRepo struct {
	listFunc   func(ctx context.Context) ([]product.Product, time.Time, error)
	getFunc    func(ctx context.Context, id string) (product.Product, error)
	createFunc func(ctx context.Context, p product.Product) error
	updateFunc func(ctx context.Context, id string, u product.Update) (product.Product, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (f *fakeProductRepo) List(ctx context.Context) ([]product.Product, time.Time, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return []product.Product{}, time.Time{}, nil
}

func (f *fakeProductRepo) Get(ctx context.Context, id string) (product.Product, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, id)
	}
	return product.Product{}, product.ErrNotFound
}

func (f *fakeProductRepo) Create(ctx context.Context, p product.Product) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, p)
	}
	return nil
}

func (f *fakeProductRepo) Update(ctx context.Context, id string, u product.Update) (product.Product, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, id, u)
	}
	return product.Product{}, product.ErrNotFound
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, id)
	}
	return product.ErrNotFound
}

func productTestRouter(repo product.Repository) http.Handler {
	h := NewProductHandler(repo)
	r := chi.NewRouter()
	r.Get("/api/products", h.List)
	r.Get("/api/products/{id}", h.Get)
	r.Post("/admin/api/products", h.Create)
	r.Put("/admin/api/products/{id}", h.Update)
	r.Delete("/admin/api/products/{id}", h.Delete)
	return r
}

func TestListProducts(t *testing.T) {
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeProductRepo{
		listFunc: func(ctx context.Context) ([]product.Product, time.Time, error) {
			return []product.Product{{ID: "p1", Name: "Lamp", Price: 54}}, stamp, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()
	productTestRouter(repo).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp catalogResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Lamp", resp.Items[0].Name)
	assert.True(t, stamp.Equal(resp.UpdatedAt))
}

func TestListProducts_RepositoryError(t *testing.T) {
	repo := &fakeProductRepo{
		listFunc: func(ctx context.Context) ([]product.Product, time.Time, error) {
			return nil, time.Time{}, errors.New("disk on fire")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()
	productTestRouter(repo).ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetProduct(t *testing.T) {
	repo := &fakeProductRepo{
		getFunc: func(ctx context.Context, id string) (product.Product, error) {
			return product.Product{ID: id, Name: "Lamp", Price: 54}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products/p1", nil)
	rr := httptest.NewRecorder()
	productTestRouter(repo).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp product.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "p1", resp.ID)
}

func TestGetProduct_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/products/ghost", nil)
	rr := httptest.NewRecorder()
	productTestRouter(&fakeProductRepo{}).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Not found", resp["error"])
}

func TestCreateProduct(t *testing.T) {
	var created product.Product
	repo := &fakeProductRepo{
		createFunc: func(ctx context.Context, p product.Product) error {
			created = p
			return nil
		},
	}

	body := `{"name":"  Prism   Lamp ","price":54.004,"logo":"https://cdn/l.png","description":"Mood lighting"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/api/products", strings.NewReader(body))
	rr := httptest.NewRecorder()
	productTestRouter(repo).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Prism Lamp", created.Name)
	assert.Equal(t, 54.0, created.Price)
	assert.NotEmpty(t, created.ID)

	var resp struct {
		OK   bool            `json:"ok"`
		Item product.Product `json:"item"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Equal(t, created.ID, resp.Item.ID)
}

func TestCreateProduct_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"missing price":  `{"name":"Lamp"}`,
		"negative price": `{"name":"Lamp","price":-1}`,
		"blank name":     `{"name":"   ","price":10}`,
		"bad json":       `{`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/api/products", strings.NewReader(body))
			rr := httptest.NewRecorder()
			productTestRouter(&fakeProductRepo{}).ServeHTTP(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestUpdateProduct_PassesPartialFields(t *testing.T) {
	var gotUpdate product.Update
	repo := &fakeProductRepo{
		updateFunc: func(ctx context.Context, id string, u product.Update) (product.Product, error) {
			gotUpdate = u
			return product.Product{ID: id, Name: "Lamp", Price: 49.99}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/admin/api/products/p1", strings.NewReader(`{"price":49.99}`))
	rr := httptest.NewRecorder()
	productTestRouter(repo).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, gotUpdate.Price)
	assert.Equal(t, 49.99, *gotUpdate.Price)
	assert.Nil(t, gotUpdate.Name)
	assert.Nil(t, gotUpdate.Logo)
	assert.Nil(t, gotUpdate.Description)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/admin/api/products/ghost", strings.NewReader(`{"price":1}`))
	rr := httptest.NewRecorder()
	productTestRouter(&fakeProductRepo{}).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteProduct(t *testing.T) {
	repo := &fakeProductRepo{
		deleteFunc: func(ctx context.Context, id string) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/admin/api/products/p1", nil)
	rr := httptest.NewRecorder()
	productTestRouter(repo).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/admin/api/products/ghost", nil)
	rr := httptest.NewRecorder()
	productTestRouter(&fakeProductRepo{}).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Not found", resp["error"])
}
