package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hollowcoast/hollowcoast-web/api/responses"
	"github.com/hollowcoast/hollowcoast-web/api/validators"
	adminsvc "github.com/hollowcoast/hollowcoast-web/internal/admin"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

type productRequest struct {
	Title       string   `json:"title" validate:"required,max=300"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents" validate:"min=0"`
	Currency    string   `json:"currency" validate:"required,len=3"`
	ImageURL    string   `json:"image_url"`
	Variants    []string `json:"variants"`
	Stock       int      `json:"stock" validate:"min=0"`
	Active      bool     `json:"active"`
}

func (p productRequest) toUpstream() upstream.Product {
	return upstream.Product{
		Title:       p.Title,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Currency:    p.Currency,
		ImageURL:    p.ImageURL,
		Variants:    p.Variants,
		Stock:       p.Stock,
		Active:      p.Active,
	}
}

// AdminProductsList returns the full catalog including inactive products,
// which the public shop listing hides.
func AdminProductsList(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.ListProducts(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}

func AdminProductCreate(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateProduct(r.Context(), token, payload.toUpstream())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminProductUpdate(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdateProduct(r.Context(), token, chi.URLParam(r, "id"), payload.toUpstream())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func AdminProductDelete(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteProduct(r.Context(), token, chi.URLParam(r, "id")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
