package controllers

import (
	"net/http"

	"github.com/obinnaeze/emart-backend/api/responses"
	"github.com/obinnaeze/emart-backend/api/validators"
	"github.com/obinnaeze/emart-backend/internal/cart"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	"github.com/obinnaeze/emart-backend/internal/orders"
	pkgerrors "github.com/obinnaeze/emart-backend/pkg/errors"
	"github.com/obinnaeze/emart-backend/pkg/logger"
	"github.com/obinnaeze/emart-backend/pkg/metrics"
	"github.com/obinnaeze/emart-backend/pkg/types"
)

type checkoutRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Comments string `json:"comments"`
}

// Checkout turns the current cart into an order transcript, returns the
// wa.me handoff link and then empties the cart. The cart survives intact on
// every failure path so the shopper can retry.
func Checkout(catalogSvc *catalog.Service, engine *cart.Engine, mtr *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if !catalogSvc.WhatsAppConfigured() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "store has no WhatsApp number configured"))
			return
		}

		if err := engine.BeginCheckout(); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		defer engine.EndCheckout()

		lines := engine.Lines()
		if len(lines) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty"))
			return
		}

		settings := catalogSvc.Settings()
		order := orders.Build(lines, settings, types.CustomerInfo{
			Name:     payload.Name,
			Phone:    payload.Phone,
			Address:  payload.Address,
			Comments: payload.Comments,
		})

		link, err := orders.WhatsAppLink(settings.WhatsAppNumber, order.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		engine.Clear(r.Context())
		mtr.IncOrderBuilt()
		logg.Info(logg.WithOrderCode(r.Context(), order.Code), "order transcript built")

		responses.WriteSuccess(w, map[string]any{
			"orderCode":   order.Code,
			"message":     order.Message,
			"whatsappUrl": link,
		})
	}
}
