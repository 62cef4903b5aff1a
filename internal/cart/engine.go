package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/obinnaeze/emart-backend/internal/catalog"
	pkgerrors "github.com/obinnaeze/emart-backend/pkg/errors"
	"github.com/obinnaeze/emart-backend/pkg/metrics"
)

// Line is one cart entry: a product snapshot copied at add-time plus the
// quantity and optional selected variant. The embedded product keeps the
// persisted JSON flat, matching the snapshot format.
type Line struct {
	catalog.Product
	Quantity        int     `json:"quantity"`
	SelectedVariant *string `json:"selectedVariant,omitempty"`
}

// Subtotal is price × quantity for the line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Persister is the slice of the persistence adapter the cart needs.
type Persister interface {
	SaveCart(ctx context.Context, lines []Line)
	LoadCart(ctx context.Context) ([]Line, bool, error)
}

// Engine owns the shopping cart. Lines keep insertion order and are
// deduplicated by (product id, selected variant); an absent variant and an
// empty-string variant are distinct keys. Quantities never drop below 1: a
// line driven to zero or less is removed. Totals are recomputed from the
// line list on every read so they cannot drift.
type Engine struct {
	mu    sync.Mutex
	lines []Line

	checkoutPending bool

	persist Persister
	metrics *metrics.StoreMetrics
}

// NewEngine builds an empty cart backed by the provided persister.
func NewEngine(persist Persister, m *metrics.StoreMetrics) (*Engine, error) {
	if persist == nil {
		return nil, fmt.Errorf("cart persister required")
	}
	return &Engine{persist: persist, metrics: m}, nil
}

// Reload replaces the line list with the persisted snapshot, if any.
func (e *Engine) Reload(ctx context.Context) error {
	lines, found, err := e.persist.LoadCart(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart snapshot")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if found {
		e.lines = lines
	} else {
		e.lines = nil
	}
	return nil
}

// AddItem increments the quantity of the matching (product id, variant)
// line, or appends a new line holding a snapshot of the product.
func (e *Engine) AddItem(ctx context.Context, product catalog.Product, quantity int, variant *string) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a positive integer")
	}

	e.mu.Lock()
	if idx := e.lineIndex(product.ID, variant); idx >= 0 {
		e.lines[idx].Quantity += quantity
	} else {
		e.lines = append(e.lines, Line{
			Product:         snapshotProduct(product),
			Quantity:        quantity,
			SelectedVariant: copyVariant(variant),
		})
	}
	snapshot := e.snapshot()
	e.mu.Unlock()

	e.persist.SaveCart(ctx, snapshot)
	e.metrics.IncCartMutation("add_item")
	return nil
}

// RemoveItem removes the line matching the compound (product id, variant)
// key. Removal uses the same key as deduplication so a second variant of
// the same product is never affected.
func (e *Engine) RemoveItem(ctx context.Context, productID string, variant *string) {
	e.mu.Lock()
	if idx := e.lineIndex(productID, variant); idx >= 0 {
		e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
	}
	snapshot := e.snapshot()
	e.mu.Unlock()

	e.persist.SaveCart(ctx, snapshot)
	e.metrics.IncCartMutation("remove_item")
}

// RemoveProduct removes every line for the product id, regardless of
// variant. This is the legacy id-only removal kept for callers that clear a
// product wholesale.
func (e *Engine) RemoveProduct(ctx context.Context, productID string) {
	e.mu.Lock()
	kept := e.lines[:0]
	for _, line := range e.lines {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}
	e.lines = kept
	snapshot := e.snapshot()
	e.mu.Unlock()

	e.persist.SaveCart(ctx, snapshot)
	e.metrics.IncCartMutation("remove_product")
}

// UpdateQuantity sets the matching line's quantity to exactly quantity.
// Zero or negative removes the line.
func (e *Engine) UpdateQuantity(ctx context.Context, productID string, variant *string, quantity int) {
	if quantity <= 0 {
		e.RemoveItem(ctx, productID, variant)
		return
	}

	e.mu.Lock()
	if idx := e.lineIndex(productID, variant); idx >= 0 {
		e.lines[idx].Quantity = quantity
	}
	snapshot := e.snapshot()
	e.mu.Unlock()

	e.persist.SaveCart(ctx, snapshot)
	e.metrics.IncCartMutation("update_quantity")
}

// Clear empties the cart.
func (e *Engine) Clear(ctx context.Context) {
	e.mu.Lock()
	e.lines = nil
	snapshot := e.snapshot()
	e.mu.Unlock()

	e.persist.SaveCart(ctx, snapshot)
	e.metrics.IncCartMutation("clear")
}

// Lines returns a copy of the cart lines in insertion order.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// TotalItems is the sum of line quantities.
func (e *Engine) TotalItems() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0
	for _, line := range e.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is Σ(price × quantity) across lines.
func (e *Engine) TotalPrice() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := decimal.Zero
	for _, line := range e.lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// BeginCheckout flags a submission in flight. It is advisory state guarding
// against duplicate sends, not a transactional hold.
func (e *Engine) BeginCheckout() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.checkoutPending {
		return pkgerrors.New(pkgerrors.CodeConflict, "checkout already in progress")
	}
	e.checkoutPending = true
	return nil
}

// EndCheckout clears the in-flight flag.
func (e *Engine) EndCheckout() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.checkoutPending = false
}

func (e *Engine) lineIndex(productID string, variant *string) int {
	for i, line := range e.lines {
		if line.ID == productID && sameVariant(line.SelectedVariant, variant) {
			return i
		}
	}
	return -1
}

func (e *Engine) snapshot() []Line {
	out := make([]Line, len(e.lines))
	copy(out, e.lines)
	return out
}

func sameVariant(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func snapshotProduct(p catalog.Product) catalog.Product {
	out := p
	out.Images = append([]string(nil), p.Images...)
	out.Variants = append([]string(nil), p.Variants...)
	return out
}

func copyVariant(v *string) *string {
	if v == nil {
		return nil
	}
	val := *v
	return &val
}
