package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/avansten/marketplace/internal/auth"
	"github.com/avansten/marketplace/internal/order"
	"github.com/avansten/marketplace/internal/product"
)

// RouterConfig carries the boundary knobs: request budgets, body cap and
// the optional static site mounts.
type RouterConfig struct {
	RequestLimit  int
	RequestWindow time.Duration
	LoginLimit    int
	LoginWindow   time.Duration
	BodyLimit     int64
	PublicDir     string
	AdminDir      string
}

func NewRouter(
	products product.Repository,
	orders order.Repository,
	builder *order.Builder,
	authsvc *auth.Service,
	logger *zap.Logger,
	cfg RouterConfig,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	if cfg.BodyLimit > 0 {
		r.Use(limitBody(cfg.BodyLimit))
	}
	if cfg.RequestLimit > 0 {
		r.Use(rateLimit(cfg.RequestLimit, cfg.RequestWindow))
	}

	// registered before Route() calls so subrouters inherit the JSON shape
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	ph := NewProductHandler(products)
	oh := NewOrderHandler(builder, orders)
	ah := NewAuthHandler(authsvc)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", ph.List)
		r.Get("/products/{id}", ph.Get)
		r.Post("/orders", oh.Checkout)
	})

	r.Route("/admin/api", func(r chi.Router) {
		login := r.With()
		if cfg.LoginLimit > 0 {
			login = r.With(rateLimit(cfg.LoginLimit, cfg.LoginWindow))
		}
		login.Post("/login", ah.Login)

		r.Group(func(r chi.Router) {
			r.Use(requireAdmin(authsvc))
			r.Get("/products", ph.List)
			r.Post("/products", ph.Create)
			r.Put("/products/{id}", ph.Update)
			r.Delete("/products/{id}", ph.Delete)
			r.Get("/orders", oh.List)
			r.Put("/orders/{id}/status", oh.UpdateStatus)
		})
	})

	if cfg.AdminDir != "" {
		r.Get("/admin/*", staticHandler("/admin/", cfg.AdminDir))
	}
	if cfg.PublicDir != "" {
		r.Get("/*", staticHandler("/", cfg.PublicDir))
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "marketplace",
	})
}
