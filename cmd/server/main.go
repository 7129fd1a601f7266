package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/avansten/marketplace/internal/auth"
	"github.com/avansten/marketplace/internal/config"
	httpapi "github.com/avansten/marketplace/internal/http"
	"github.com/avansten/marketplace/internal/order"
	"github.com/avansten/marketplace/internal/product"
	"github.com/avansten/marketplace/internal/store"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		logger.Fatal("create data dir", zap.String("dir", cfg.Data.Dir), zap.Error(err))
	}

	productsStore := store.NewFile[product.Product](filepath.Join(cfg.Data.Dir, "products.json"))
	ordersStore := store.NewFile[order.Order](filepath.Join(cfg.Data.Dir, "orders.json"))

	ctx := context.Background()
	if err := initDataFiles(ctx, productsStore, ordersStore); err != nil {
		logger.Fatal("seed data files", zap.Error(err))
	}

	products := product.NewRepository(productsStore)
	orders := order.NewRepository(ordersStore)
	builder := order.NewBuilder(products, orders)
	authsvc := auth.NewService(
		cfg.Auth.JWTSecret,
		cfg.Auth.AdminUsernameHash,
		cfg.Auth.AdminPasswordHash,
		cfg.Auth.TokenTTL,
	)

	handler := httpapi.NewRouter(products, orders, builder, authsvc, logger, httpapi.RouterConfig{
		RequestLimit:  cfg.RateLimit.Requests,
		RequestWindow: cfg.RateLimit.Window,
		LoginLimit:    cfg.RateLimit.LoginLimit,
		LoginWindow:   cfg.RateLimit.LoginWindow,
		BodyLimit:     cfg.Server.BodyLimit,
		PublicDir:     existingDir(cfg.Static.PublicDir, logger),
		AdminDir:      existingDir(cfg.Static.AdminDir, logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("marketplace listening", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// existingDir returns dir when it points at a real directory, otherwise ""
// so the router skips the mount.
func existingDir(dir string, logger *zap.Logger) string {
	if dir == "" {
		return ""
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn("static dir missing, not mounting", zap.String("dir", dir))
		return ""
	}
	return dir
}
