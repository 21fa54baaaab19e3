package controllers

import (
	"net/http"

	"github.com/hollowcoast/hollowcoast-web/api/responses"
	"github.com/hollowcoast/hollowcoast-web/api/validators"
	checkoutsvc "github.com/hollowcoast/hollowcoast-web/internal/checkout"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
)

type checkoutRequest struct {
	Provider string `json:"provider" validate:"required,oneof=stripe paypal"`
}

type checkoutResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

// CheckoutInitiate creates a provider-hosted payment session for the current
// cart and returns the redirect URL. The cart stays intact until the success
// return confirms payment.
func CheckoutInitiate(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := visitorCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		provider, err := checkoutsvc.ParseProvider(payload.Provider)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		session, err := svc.Initiate(r.Context(), cartID, provider)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, checkoutResponse{
			SessionID:   session.SessionID,
			RedirectURL: session.URL,
		})
	}
}

// CheckoutSuccess clears the cart when the browser lands on the success
// return page. Cancel returns never hit this handler, so an abandoned payment
// keeps the cart.
func CheckoutSuccess(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := visitorCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.CompleteSuccess(r.Context(), cartID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cart_cleared"})
	}
}
