package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hollowcoast/hollowcoast-web/api/responses"
	"github.com/hollowcoast/hollowcoast-web/internal/toast"
	pkgerrors "github.com/hollowcoast/hollowcoast-web/pkg/errors"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
)

// ToastsList returns the currently active toasts.
func ToastsList(hub *toast.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, hub.Active())
	}
}

// ToastsStream pushes the full toast list over server-sent events whenever it
// changes. The browser renders whatever the latest event carries, so a missed
// frame heals on the next change.
func ToastsStream(hub *toast.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "streaming unsupported"))
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		events := make(chan []toast.Toast, 8)
		unsubscribe := hub.Subscribe(func(list []toast.Toast) {
			select {
			case events <- list:
			default:
				// Slow consumer; the next event carries the full list anyway.
			}
		})
		defer unsubscribe()

		for {
			select {
			case <-r.Context().Done():
				return
			case list := <-events:
				payload, err := json.Marshal(list)
				if err != nil {
					if logg != nil {
						logg.Error(r.Context(), "failed to encode toast event", err)
					}
					continue
				}
				if _, err := w.Write(append(append([]byte("data: "), payload...), '\n', '\n')); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}

// ToastDismiss removes a toast by id. Dismissing an already-gone toast is a
// success.
func ToastDismiss(hub *toast.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "toast id is required"))
			return
		}
		hub.Remove(id)
		responses.WriteSuccess(w, map[string]string{"status": "dismissed"})
	}
}
