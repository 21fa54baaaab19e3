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

type galleryImageRequest struct {
	URL       string `json:"url" validate:"required,url"`
	Caption   string `json:"caption" validate:"max=300"`
	SortOrder int    `json:"sort_order" validate:"min=0"`
}

func AdminGalleryList(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		images, err := svc.ListGalleryImages(r.Context(), token)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, images)
	}
}

func AdminGalleryCreate(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload galleryImageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.CreateGalleryImage(r.Context(), token, upstream.GalleryImage{
			URL:       payload.URL,
			Caption:   payload.Caption,
			SortOrder: payload.SortOrder,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminGalleryDelete(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := adminToken(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteGalleryImage(r.Context(), token, chi.URLParam(r, "id")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
