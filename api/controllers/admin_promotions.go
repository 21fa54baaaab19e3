package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hollowcoast/hollowcoast-web/api/responses"
	"github.com/hollowcoast/hollowcoast-web/api/validators"
	adminsvc "github.com/hollowcoast/hollowcoast-web/internal/admin"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

type promotionRequest struct {
	Code       string     `json:"code" validate:"required,max=64"`
	PercentOff int        `json:"percent_off" validate:"required,min=1,max=100"`
	StartsAt   *time.Time `json:"starts_at"`
	EndsAt     *time.Time `json:"ends_at"`
	Active     bool       `json:"active"`
}

func (p promotionRequest) toUpstream() upstream.Promotion {
	return upstream.Promotion{
		Code:       p.Code,
		PercentOff: p.PercentOff,
		StartsAt:   p.StartsAt,
		EndsAt:     p.EndsAt,
		Active:     p.Active,
	}
}

func AdminPromotionsList(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		promotions, err := svc.ListPromotions(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, promotions)
	}
}

func AdminPromotionCreate(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload promotionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreatePromotion(r.Context(), token, payload.toUpstream())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminPromotionUpdate(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload promotionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.UpdatePromotion(r.Context(), token, chi.URLParam(r, "id"), payload.toUpstream())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

func AdminPromotionDelete(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeletePromotion(r.Context(), token, chi.URLParam(r, "id")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
