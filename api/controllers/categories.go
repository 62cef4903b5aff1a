package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/obinnaeze/emart-backend/api/responses"
	"github.com/obinnaeze/emart-backend/api/validators"
	"github.com/obinnaeze/emart-backend/internal/catalog"
	pkgerrors "github.com/obinnaeze/emart-backend/pkg/errors"
	"github.com/obinnaeze/emart-backend/pkg/logger"
)

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

func ListCategories(svc *catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"categories": svc.Categories()})
	}
}

func GetCategory(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, found := svc.CategoryByID(chi.URLParam(r, "categoryID"))
		if !found {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "category not found"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"category": category})
	}
}

func CreateCategory(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category := svc.AddCategory(r.Context(), catalog.CategoryInput{
			Name:        payload.Name,
			Description: payload.Description,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{"category": category})
	}
}

func UpdateCategory(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateCategoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.UpdateCategory(r.Context(), chi.URLParam(r, "categoryID"), catalog.CategoryPatch{
			Name:        payload.Name,
			Description: payload.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"category": category})
	}
}

func DeleteCategory(svc *catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteCategory(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": true})
	}
}
