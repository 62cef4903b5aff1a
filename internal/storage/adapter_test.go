package storage

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinnaeze/emart-backend/internal/cart"
	"github.com/obinnaeze/emart-backend/internal/catalog"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	adapter, err := NewAdapter(NewMemoryKV(), nil)
	require.NoError(t, err)
	return adapter
}

func TestNewAdapterRequiresBackend(t *testing.T) {
	_, err := NewAdapter(nil, nil)
	require.Error(t, err)
}

func TestCatalogRoundTrip(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	products := []catalog.Product{
		{
			ID:          "p1",
			Name:        "Widget",
			Description: "A widget",
			Price:       decimal.RequireFromString("19.99"),
			Images:      []string{"https://example.com/a.jpg"},
			Category:    "misc",
			InStock:     true,
			Featured:    true,
			Variants:    []string{"Red", "Blue"},
		},
	}
	categories := []catalog.Category{{ID: "misc", Name: "Misc"}}
	settings := catalog.StoreSettings{StoreName: "Acme", Currency: "$", WhatsAppNumber: "+1 555"}

	adapter.SaveProducts(ctx, products)
	adapter.SaveCategories(ctx, categories)
	adapter.SaveSettings(ctx, settings)

	gotProducts, found, err := adapter.LoadProducts(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, gotProducts, 1)
	assert.Equal(t, products[0].ID, gotProducts[0].ID)
	assert.True(t, gotProducts[0].Price.Equal(products[0].Price))
	assert.Equal(t, products[0].Variants, gotProducts[0].Variants)

	gotCategories, found, err := adapter.LoadCategories(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, categories, gotCategories)

	gotSettings, found, err := adapter.LoadSettings(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, settings, gotSettings)
}

func TestEmptyCollectionsRoundTrip(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	adapter.SaveProducts(ctx, []catalog.Product{})

	got, found, err := adapter.LoadProducts(ctx)
	require.NoError(t, err)
	assert.True(t, found, "a saved empty list is still a snapshot")
	assert.Empty(t, got)
}

func TestCartRoundTrip(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	variant := "Large"
	lines := []cart.Line{{
		Product: catalog.Product{
			ID:    "p1",
			Name:  "Shirt",
			Price: decimal.NewFromInt(10),
		},
		Quantity:        3,
		SelectedVariant: &variant,
	}}

	adapter.SaveCart(ctx, lines)

	got, found, err := adapter.LoadCart(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Quantity)
	require.NotNil(t, got[0].SelectedVariant)
	assert.Equal(t, "Large", *got[0].SelectedVariant)
	// Absent variant stays absent through the round trip.
	adapter.SaveCart(ctx, []cart.Line{{Product: catalog.Product{ID: "p2"}, Quantity: 1}})
	got, _, err = adapter.LoadCart(ctx)
	require.NoError(t, err)
	assert.Nil(t, got[0].SelectedVariant)
}

func TestLoadMissingKey(t *testing.T) {
	adapter := newTestAdapter(t)

	_, found, err := adapter.LoadProducts(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestResetToDefaultsWritesDemoDataset(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	adapter.SaveProducts(ctx, []catalog.Product{})
	require.NoError(t, adapter.ResetToDefaults(ctx))

	products, found, err := adapter.LoadProducts(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, products, len(catalog.DefaultProducts()))

	settings, found, err := adapter.LoadSettings(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, catalog.DefaultSettings().StoreName, settings.StoreName)
}

func TestClearAllRemovesEveryKey(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.ResetToDefaults(ctx))
	adapter.SaveCart(ctx, []cart.Line{{Product: catalog.Product{ID: "p1"}, Quantity: 1}})

	require.NoError(t, adapter.ClearAll(ctx))

	for _, load := range []func() (bool, error){
		func() (bool, error) { _, found, err := adapter.LoadProducts(ctx); return found, err },
		func() (bool, error) { _, found, err := adapter.LoadCategories(ctx); return found, err },
		func() (bool, error) { _, found, err := adapter.LoadSettings(ctx); return found, err },
		func() (bool, error) { _, found, err := adapter.LoadCart(ctx); return found, err },
	} {
		found, err := load()
		require.NoError(t, err)
		assert.False(t, found)
	}
}

func TestSeedIfEmptyOnlySeedsOnce(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.SeedIfEmpty(ctx))
	products, found, err := adapter.LoadProducts(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.NotEmpty(t, products)

	// A later edit must survive another SeedIfEmpty.
	adapter.SaveProducts(ctx, []catalog.Product{{ID: "mine", Name: "Mine"}})
	require.NoError(t, adapter.SeedIfEmpty(ctx))

	products, _, err = adapter.LoadProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "mine", products[0].ID)
}
