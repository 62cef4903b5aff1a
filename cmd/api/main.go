package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/obinnaeze/emart-backend/api/routes"
	"github.com/obinnaeze/emart-backend/internal/cart"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	"github.com/obinnaeze/emart-backend/internal/storage"
	"github.com/obinnaeze/emart-backend/pkg/config"
	"github.com/obinnaeze/emart-backend/pkg/logger"
	"github.com/obinnaeze/emart-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	kv, err := newKV(context.Background(), cfg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap storage", err)
		os.Exit(1)
	}

	adapter, err := storage.NewAdapter(kv, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create storage adapter", err)
		os.Exit(1)
	}
	defer func() {
		if err := adapter.Close(); err != nil {
			logg.Error(context.Background(), "error closing storage", err)
		}
	}()

	if cfg.Storage.SeedOnEmpty {
		if err := adapter.SeedIfEmpty(context.Background()); err != nil {
			logg.Error(context.Background(), "failed to seed storage", err)
			os.Exit(1)
		}
	}

	registry := prometheus.NewRegistry()
	mtr := metrics.NewStoreMetrics(registry)

	catalogSvc, err := catalog.NewService(adapter, mtr)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}
	if err := catalogSvc.Reload(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to load catalog snapshots", err)
		os.Exit(1)
	}
	applyStoreOverrides(context.Background(), cfg.Store, catalogSvc)

	engine, err := cart.NewEngine(adapter, mtr)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart engine", err)
		os.Exit(1)
	}
	if err := engine.Reload(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to load cart snapshot", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"storage": cfg.Storage.Driver,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.New(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			Catalog:  catalogSvc,
			Cart:     engine,
			Adapter:  adapter,
			Metrics:  mtr,
			Registry: registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func newKV(ctx context.Context, cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Driver {
	case "redis":
		return storage.NewRedisKV(ctx, cfg.Redis)
	case "memory":
		return storage.NewMemoryKV(), nil
	default:
		return storage.NewSQLiteKV(ctx, cfg.Storage.DSN)
	}
}

// applyStoreOverrides lets deployments pin the storefront identity through
// the environment without touching the persisted settings snapshot fields
// they leave unset.
func applyStoreOverrides(ctx context.Context, store config.StoreConfig, svc *catalog.Service) {
	patch := catalog.SettingsPatch{}
	touched := false
	if store.Name != "" {
		patch.StoreName = &store.Name
		touched = true
	}
	if store.WhatsAppNumber != "" {
		patch.WhatsAppNumber = &store.WhatsAppNumber
		touched = true
	}
	if store.Currency != "" {
		patch.Currency = &store.Currency
		touched = true
	}
	if touched {
		svc.UpdateSettings(ctx, patch)
	}
}
