package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/obinnaeze/emart-backend/api/responses"
	"github.com/obinnaeze/emart-backend/api/validators"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	pkgerrors "github.com/obinnaeze/emart-backend/pkg/errors"
	"github.com/obinnaeze/emart-backend/pkg/logger"
)

// createProductRequest enforces the constraints the admin form promises the
// catalog engine: the engine itself accepts fields as given.
type createProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Images      []string `json:"images" validate:"required,min=1,max=10,dive,required"`
	Category    string   `json:"category"`
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
	Variants    []string `json:"variants" validate:"omitempty,unique,dive,required"`
}

func (r createProductRequest) toInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       decimal.NewFromFloat(r.Price),
		Images:      r.Images,
		Category:    r.Category,
		InStock:     r.InStock,
		Featured:    r.Featured,
		Variants:    r.Variants,
	}
}

type updateProductRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=1"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Images      *[]string `json:"images" validate:"omitempty,min=1,max=10,dive,required"`
	Category    *string   `json:"category"`
	InStock     *bool     `json:"inStock"`
	Featured    *bool     `json:"featured"`
	Variants    *[]string `json:"variants" validate:"omitempty,unique,dive,required"`
}

func (r updateProductRequest) toPatch() catalog.ProductPatch {
	patch := catalog.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Images:      r.Images,
		Category:    r.Category,
		InStock:     r.InStock,
		Featured:    r.Featured,
		Variants:    r.Variants,
	}
	if r.Price != nil {
		price := decimal.NewFromFloat(*r.Price)
		patch.Price = &price
	}
	return patch
}

// ListProducts returns the catalog, optionally filtered by category,
// featured flag or stock state.
func ListProducts(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products := svc.Products()

		query := r.URL.Query()
		if category := query.Get("category"); category != "" {
			products = filterProducts(products, func(p catalog.Product) bool { return p.Category == category })
		}
		if raw := query.Get("featured"); raw != "" {
			want, err := strconv.ParseBool(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid featured filter"))
				return
			}
			products = filterProducts(products, func(p catalog.Product) bool { return p.Featured == want })
		}
		if raw := query.Get("inStock"); raw != "" {
			want, err := strconv.ParseBool(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid inStock filter"))
				return
			}
			products = filterProducts(products, func(p catalog.Product) bool { return p.InStock == want })
		}

		responses.WriteSuccess(w, map[string]any{"products": products})
	}
}

func GetProduct(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "productID")
		product, found := svc.ProductByID(id)
		if !found {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"product": product})
	}
}

func CreateProduct(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product := svc.AddProduct(r.Context(), payload.toInput())
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"product": product})
	}
}

func UpdateProduct(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), chi.URLParam(r, "productID"), payload.toPatch())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"product": product})
	}
}

func DeleteProduct(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteProduct(r.Context(), chi.URLParam(r, "productID")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": true})
	}
}

func filterProducts(products []catalog.Product, keep func(catalog.Product) bool) []catalog.Product {
	out := products[:0]
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
