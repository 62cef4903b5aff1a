package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records catalog, cart and order activity.
type StoreMetrics struct {
	catalogMutations *prometheus.CounterVec
	cartMutations    *prometheus.CounterVec
	ordersBuilt      prometheus.Counter
}

// NewStoreMetrics registers the storefront metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	catalogMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_mutations_total",
		Help: "Catalog mutations applied, by entity and operation.",
	}, []string{"entity", "op"})
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart mutations applied, by operation.",
	}, []string{"op"})
	ordersBuilt := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_built_total",
		Help: "Order transcripts generated.",
	})
	reg.MustRegister(catalogMutations, cartMutations, ordersBuilt)
	return &StoreMetrics{
		catalogMutations: catalogMutations,
		cartMutations:    cartMutations,
		ordersBuilt:      ordersBuilt,
	}
}

// IncCatalogMutation increments the catalog counter for the entity/op pair.
func (m *StoreMetrics) IncCatalogMutation(entity, op string) {
	if m == nil || m.catalogMutations == nil {
		return
	}
	m.catalogMutations.WithLabelValues(normalizeLabel(entity), normalizeLabel(op)).Inc()
}

// IncCartMutation increments the cart counter for the named operation.
func (m *StoreMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncOrderBuilt increments the generated-orders counter.
func (m *StoreMetrics) IncOrderBuilt() {
	if m == nil || m.ordersBuilt == nil {
		return
	}
	m.ordersBuilt.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
