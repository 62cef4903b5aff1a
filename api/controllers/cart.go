package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/obinnaeze/emart-backend/api/responses"
	"github.com/obinnaeze/emart-backend/api/validators"
	"github.com/obinnaeze/emart-backend/internal/cart"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	pkgerrors "github.com/obinnaeze/emart-backend/pkg/errors"
	"github.com/obinnaeze/emart-backend/pkg/logger"
)

type addCartItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  *int    `json:"quantity" validate:"omitempty,gt=0"`
	Variant   *string `json:"variant"`
}

type updateCartItemRequest struct {
	Quantity int     `json:"quantity" validate:"gte=0"`
	Variant  *string `json:"variant"`
}

type cartView struct {
	Items      []cart.Line     `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func viewOf(engine *cart.Engine) cartView {
	return cartView{
		Items:      engine.Lines(),
		TotalItems: engine.TotalItems(),
		TotalPrice: engine.TotalPrice(),
	}
}

func GetCart(engine *cart.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"cart": viewOf(engine)})
	}
}

// AddCartItem snapshots the referenced catalog product into the cart. A
// missing quantity defaults to one, matching the storefront's add button.
func AddCartItem(catalogSvc *catalog.Service, engine *cart.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, found := catalogSvc.ProductByID(payload.ProductID)
		if !found {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		quantity := 1
		if payload.Quantity != nil {
			quantity = *payload.Quantity
		}
		if err := engine.AddItem(r.Context(), product, quantity, payload.Variant); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"cart": viewOf(engine)})
	}
}

// UpdateCartItem sets the absolute quantity of a line. Zero removes it.
func UpdateCartItem(engine *cart.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		engine.UpdateQuantity(r.Context(), chi.URLParam(r, "productID"), payload.Variant, payload.Quantity)
		responses.WriteSuccess(w, map[string]any{"cart": viewOf(engine)})
	}
}

// RemoveCartItem deletes one line, keyed by product id plus the variant
// query parameter. Omitting the parameter targets the variant-free line;
// all=true drops every line for the product regardless of variant.
func RemoveCartItem(engine *cart.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productID")
		query := r.URL.Query()

		if raw := query.Get("all"); raw != "" {
			all, err := strconv.ParseBool(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid all flag"))
				return
			}
			if all {
				engine.RemoveProduct(r.Context(), productID)
				responses.WriteSuccess(w, map[string]any{"cart": viewOf(engine)})
				return
			}
		}

		var variant *string
		if query.Has("variant") {
			v := query.Get("variant")
			variant = &v
		}
		engine.RemoveItem(r.Context(), productID, variant)
		responses.WriteSuccess(w, map[string]any{"cart": viewOf(engine)})
	}
}

func ClearCart(engine *cart.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine.Clear(r.Context())
		responses.WriteSuccess(w, map[string]any{"cart": viewOf(engine)})
	}
}
