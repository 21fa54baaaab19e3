package controllers

import (
	"net/http"

	"github.com/hollowcoast/hollowcoast-web/api/responses"
	"github.com/hollowcoast/hollowcoast-web/api/validators"
	cartsvc "github.com/hollowcoast/hollowcoast-web/internal/cart"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/types"
)

// CartGet returns the visitor's cart with its derived total.
func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := visitorCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current, err := svc.Get(r.Context(), cartID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(current))
	}
}

// CartAdd merges a line into the cart, by product and variant.
func CartAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := visitorCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current, err := svc.Add(r.Context(), cartID, cartsvc.ProductRef{
			ID:             payload.ProductID,
			Title:          payload.Title,
			UnitPriceCents: payload.UnitPriceCents,
			Currency:       payload.Currency,
			ImageURL:       payload.ImageURL,
		}, payload.Quantity, payload.Variant)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(current))
	}
}

// CartRemove drops a line entirely, whatever its quantity.
func CartRemove(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := visitorCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartLineRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current, err := svc.Remove(r.Context(), cartID, payload.ProductID, payload.Variant)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(current))
	}
}

// CartUpdateQuantity sets a line's quantity; zero or less removes the line.
func CartUpdateQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := visitorCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current, err := svc.UpdateQuantity(r.Context(), cartID, payload.ProductID, payload.Quantity, payload.Variant)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(current))
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cartID, err := visitorCartID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(r.Context(), cartID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartResponse(&cartsvc.Cart{}))
	}
}

// visitorCartID keys the cart by the visitor's session id.
func visitorCartID(r *http.Request) (string, error) {
	return visitorSessionID(r)
}

type cartAddRequest struct {
	ProductID      string `json:"product_id" validate:"required"`
	Title          string `json:"title" validate:"required"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"min=0"`
	Currency       string `json:"currency" validate:"required,len=3"`
	ImageURL       string `json:"image_url"`
	Quantity       int    `json:"quantity" validate:"required,min=1"`
	Variant        *int   `json:"variant"`
}

type cartLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Variant   *int   `json:"variant"`
}

type cartQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
	Variant   *int   `json:"variant"`
}

type cartItemResponse struct {
	ProductID      string `json:"product_id"`
	Title          string `json:"title"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Currency       string `json:"currency"`
	ImageURL       string `json:"image_url,omitempty"`
	Quantity       int    `json:"quantity"`
	Variant        *int   `json:"variant,omitempty"`
	LineTotalCents int64  `json:"line_total_cents"`
}

type cartResponse struct {
	Items          []cartItemResponse `json:"items"`
	TotalCents     int64              `json:"total_cents"`
	TotalFormatted string             `json:"total_formatted,omitempty"`
	Currency       string             `json:"currency,omitempty"`
}

func newCartResponse(current *cartsvc.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(current.Items))
	for _, item := range current.Items {
		items = append(items, cartItemResponse{
			ProductID:      item.ProductID,
			Title:          item.Title,
			UnitPriceCents: item.UnitPriceCents,
			Currency:       item.Currency,
			ImageURL:       item.ImageURL,
			Quantity:       item.Quantity,
			Variant:        item.Variant,
			LineTotalCents: item.UnitPriceCents * int64(item.Quantity),
		})
	}

	resp := cartResponse{
		Items:      items,
		TotalCents: current.TotalCents(),
		Currency:   current.Currency(),
	}
	if !current.IsEmpty() {
		resp.TotalFormatted = types.FormatAmount(resp.TotalCents, resp.Currency)
	}
	return resp
}
