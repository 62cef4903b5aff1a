package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/obinnaeze/emart-backend/api/controllers"
	"github.com/obinnaeze/emart-backend/api/middleware"
	"github.com/obinnaeze/emart-backend/internal/cart"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	"github.com/obinnaeze/emart-backend/internal/storage"
	"github.com/obinnaeze/emart-backend/pkg/config"
	"github.com/obinnaeze/emart-backend/pkg/logger"
	"github.com/obinnaeze/emart-backend/pkg/metrics"
)

// Deps carries everything the HTTP surface needs. Router wires no state of
// its own; all mutation flows through the engines.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Catalog  *catalog.Service
	Cart     *cart.Engine
	Adapter  *storage.Adapter
	Metrics  *metrics.StoreMetrics
	Registry *prometheus.Registry
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(d.Logger))
	r.Use(middleware.RequestID(d.Logger))
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.CORS(d.Config.App.IsDev()))

	r.Get("/health/live", controllers.HealthLive(d.Config))
	r.Get("/health/ready", controllers.HealthReady(d.Config, d.Logger, d.Adapter))

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(d.Catalog, d.Logger))
			r.Post("/", controllers.CreateProduct(d.Catalog, d.Logger))
			r.Get("/{productID}", controllers.GetProduct(d.Catalog, d.Logger))
			r.Patch("/{productID}", controllers.UpdateProduct(d.Catalog, d.Logger))
			r.Delete("/{productID}", controllers.DeleteProduct(d.Catalog, d.Logger))
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(d.Catalog))
			r.Post("/", controllers.CreateCategory(d.Catalog, d.Logger))
			r.Get("/{categoryID}", controllers.GetCategory(d.Catalog, d.Logger))
			r.Patch("/{categoryID}", controllers.UpdateCategory(d.Catalog, d.Logger))
			r.Delete("/{categoryID}", controllers.DeleteCategory(d.Catalog, d.Logger))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.GetSettings(d.Catalog))
			r.Patch("/", controllers.UpdateSettings(d.Catalog, d.Logger))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(d.Cart))
			r.Delete("/", controllers.ClearCart(d.Cart))
			r.Post("/items", controllers.AddCartItem(d.Catalog, d.Cart, d.Logger))
			r.Patch("/items/{productID}", controllers.UpdateCartItem(d.Cart, d.Logger))
			r.Delete("/items/{productID}", controllers.RemoveCartItem(d.Cart, d.Logger))
		})

		r.Post("/checkout", controllers.Checkout(d.Catalog, d.Cart, d.Metrics, d.Logger))
	})

	r.Route("/api/admin/v1/store", func(r chi.Router) {
		r.Post("/reset", controllers.ResetStore(d.Adapter, d.Catalog, d.Cart, d.Logger))
		r.Post("/clear", controllers.ClearStore(d.Adapter, d.Catalog, d.Cart, d.Logger))
	})

	return r
}
