package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hollowcoast/hollowcoast-web/api/middleware"
	"github.com/hollowcoast/hollowcoast-web/api/responses"
	"github.com/hollowcoast/hollowcoast-web/api/validators"
	adminsvc "github.com/hollowcoast/hollowcoast-web/internal/admin"
	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

// adminToken returns the bearer token the auth middleware seeded.
func adminToken(r *http.Request) (string, error) {
	token := middleware.AdminTokenFromContext(r.Context())
	if token == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "login required")
	}
	return token, nil
}

func AdminOrdersList(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orders, err := svc.ListOrders(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, orders)
	}
}

func AdminOrderGet(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.GetOrder(r.Context(), token, chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

type fulfillOrderRequest struct {
	TrackingID string `json:"tracking_id"`
	Carrier    string `json:"carrier"`
}

func AdminOrderFulfill(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload fulfillOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.FulfillOrder(r.Context(), token, chi.URLParam(r, "id"), upstream.FulfillOrderRequest{
			TrackingID: payload.TrackingID,
			Carrier:    payload.Carrier,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// AdminOrdersExportCSV streams the accounting export as a download.
func AdminOrdersExportCSV(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		export, err := svc.ExportOrdersCSV(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		contentType := export.ContentType
		if contentType == "" {
			contentType = "text/csv"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="orders-export.csv"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(export.Data); err != nil && logg != nil {
			logg.Error(r.Context(), "failed to write export", err)
		}
	}
}

type markExportedRequest struct {
	OrderIDs []string `json:"order_ids" validate:"required,min=1"`
}

func AdminOrdersMarkExported(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload markExportedRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.MarkOrdersExported(r.Context(), token, payload.OrderIDs); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"marked": len(payload.OrderIDs)})
	}
}
