package controllers

import (
	"net/http"

	"github.com/hollowcoast/hollowcoast-web/api/responses"
	"github.com/hollowcoast/hollowcoast-web/api/validators"
	adminsvc "github.com/hollowcoast/hollowcoast-web/internal/admin"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

type shippingOptionPayload struct {
	ID         string   `json:"id"`
	Label      string   `json:"label" validate:"required,max=200"`
	PriceCents int64    `json:"price_cents" validate:"min=0"`
	Countries  []string `json:"countries"`
}

type updateShippingRequest struct {
	Options []shippingOptionPayload `json:"options" validate:"required,dive"`
}

func AdminShippingGet(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		options, err := svc.GetShippingOptions(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, options)
	}
}

// AdminShippingUpdate replaces the full shipping option set.
func AdminShippingUpdate(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateShippingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		options := make([]upstream.ShippingOption, 0, len(payload.Options))
		for _, option := range payload.Options {
			options = append(options, upstream.ShippingOption{
				ID:         option.ID,
				Label:      option.Label,
				PriceCents: option.PriceCents,
				Countries:  option.Countries,
			})
		}

		updated, err := svc.UpdateShippingOptions(r.Context(), token, options)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}
