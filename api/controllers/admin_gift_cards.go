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

type createGiftCardRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"required,min=100"`
	Currency    string `json:"currency" validate:"required,len=3"`
}

func AdminGiftCardsList(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cards, err := svc.ListGiftCards(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cards)
	}
}

func AdminGiftCardCreate(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload createGiftCardRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		card, err := svc.CreateGiftCard(r.Context(), token, upstream.CreateGiftCardRequest{
			AmountCents: payload.AmountCents,
			Currency:    payload.Currency,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, card)
	}
}

func AdminGiftCardDisable(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		card, err := svc.DisableGiftCard(r.Context(), token, chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, card)
	}
}

// AdminGiftCardCheck returns the authoritative balance for a code.
func AdminGiftCardCheck(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		code, err := validators.RequireQuery(r, "code")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		card, err := svc.CheckGiftCard(r.Context(), token, code)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, card)
	}
}
