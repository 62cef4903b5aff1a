package controllers

import (
	"net/http"

	"github.com/obinnaeze/emart-backend/api/responses"
	"github.com/obinnaeze/emart-backend/internal/cart"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	"github.com/obinnaeze/emart-backend/internal/storage"
	pkgerrors "github.com/obinnaeze/emart-backend/pkg/errors"
	"github.com/obinnaeze/emart-backend/pkg/logger"
)

// ResetStore rewrites the catalog snapshots with the bundled demo data and
// reloads both engines so in-memory state matches what was persisted.
func ResetStore(adapter *storage.Adapter, catalogSvc *catalog.Service, engine *cart.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := adapter.ResetToDefaults(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reset store snapshots"))
			return
		}
		if err := catalogSvc.Reload(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload catalog"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"reset": true})
	}
}

// ClearStore deletes every persisted snapshot, catalog and cart alike, and
// reloads the engines. The catalog falls back to the demo defaults; the cart
// comes back empty.
func ClearStore(adapter *storage.Adapter, catalogSvc *catalog.Service, engine *cart.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := adapter.ClearAll(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear store snapshots"))
			return
		}
		if err := catalogSvc.Reload(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload catalog"))
			return
		}
		if err := engine.Reload(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload cart"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"cleared": true})
	}
}
