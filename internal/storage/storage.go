package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/obinnaeze/emart-backend/internal/cart"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	pkgerrors "github.com/obinnaeze/emart-backend/pkg/errors"
	"github.com/obinnaeze/emart-backend/pkg/logger"
)

// Well-known snapshot keys. The names predate this service and must not
// change: existing stored data is addressed by them.
const (
	KeyProducts   = "emart-products"
	KeyCategories = "emart-categories"
	KeySettings   = "emart-settings"
	KeyCart       = "whatsapp-store-cart"
)

func catalogKeys() []string {
	return []string{KeyProducts, KeyCategories, KeySettings}
}

func allKeys() []string {
	return append(catalogKeys(), KeyCart)
}

// KV is the durable key-value surface a backend must provide.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// Adapter is the persistence boundary for the catalog and cart engines:
// JSON snapshots per key, with save failures logged and swallowed so the
// in-memory engines stay authoritative for the session.
type Adapter struct {
	kv   KV
	logg *logger.Logger
}

func NewAdapter(kv KV, logg *logger.Logger) (*Adapter, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv backend required")
	}
	return &Adapter{kv: kv, logg: logg}, nil
}

func (a *Adapter) SaveProducts(ctx context.Context, products []catalog.Product) {
	a.save(ctx, KeyProducts, products)
}

func (a *Adapter) SaveCategories(ctx context.Context, categories []catalog.Category) {
	a.save(ctx, KeyCategories, categories)
}

func (a *Adapter) SaveSettings(ctx context.Context, settings catalog.StoreSettings) {
	a.save(ctx, KeySettings, settings)
}

func (a *Adapter) SaveCart(ctx context.Context, lines []cart.Line) {
	a.save(ctx, KeyCart, lines)
}

func (a *Adapter) LoadProducts(ctx context.Context) ([]catalog.Product, bool, error) {
	var products []catalog.Product
	found, err := a.load(ctx, KeyProducts, &products)
	return products, found, err
}

func (a *Adapter) LoadCategories(ctx context.Context) ([]catalog.Category, bool, error) {
	var categories []catalog.Category
	found, err := a.load(ctx, KeyCategories, &categories)
	return categories, found, err
}

func (a *Adapter) LoadSettings(ctx context.Context) (catalog.StoreSettings, bool, error) {
	var settings catalog.StoreSettings
	found, err := a.load(ctx, KeySettings, &settings)
	return settings, found, err
}

func (a *Adapter) LoadCart(ctx context.Context) ([]cart.Line, bool, error) {
	var lines []cart.Line
	found, err := a.load(ctx, KeyCart, &lines)
	return lines, found, err
}

// ResetToDefaults overwrites the three catalog keys with the demo dataset.
// Callers reload dependent engines afterwards.
func (a *Adapter) ResetToDefaults(ctx context.Context) error {
	writes := []struct {
		key   string
		value any
	}{
		{KeyProducts, catalog.DefaultProducts()},
		{KeyCategories, catalog.DefaultCategories()},
		{KeySettings, catalog.DefaultSettings()},
	}
	for _, w := range writes {
		raw, err := json.Marshal(w.value)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal default snapshot")
		}
		if err := a.kv.Set(ctx, w.key, raw); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write default snapshot")
		}
	}
	return nil
}

// ClearAll removes every snapshot key. Dependent engines fall back to the
// seeded defaults on their next reload.
func (a *Adapter) ClearAll(ctx context.Context) error {
	if err := a.kv.Delete(ctx, allKeys()...); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear snapshots")
	}
	return nil
}

// SeedIfEmpty writes the demo dataset when no products snapshot exists yet.
func (a *Adapter) SeedIfEmpty(ctx context.Context) error {
	_, found, err := a.kv.Get(ctx, KeyProducts)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "probe products snapshot")
	}
	if found {
		return nil
	}
	return a.ResetToDefaults(ctx)
}

// Ping verifies the backend is reachable.
func (a *Adapter) Ping(ctx context.Context) error {
	return a.kv.Ping(ctx)
}

// Close shuts down the backend.
func (a *Adapter) Close() error {
	return a.kv.Close()
}

func (a *Adapter) save(ctx context.Context, key string, snapshot any) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		a.logSaveFailure(ctx, key, err)
		return
	}
	if err := a.kv.Set(ctx, key, raw); err != nil {
		a.logSaveFailure(ctx, key, err)
	}
}

func (a *Adapter) load(ctx context.Context, key string, dest any) (bool, error) {
	raw, found, err := a.kv.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return true, nil
}

func (a *Adapter) logSaveFailure(ctx context.Context, key string, err error) {
	if a.logg == nil {
		return
	}
	ctx = a.logg.WithStorageKey(ctx, key)
	a.logg.Error(ctx, "snapshot save failed", err)
}
