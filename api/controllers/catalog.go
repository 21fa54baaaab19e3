package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hollowcoast/hollowcoast-web/api/responses"
	catalogsvc "github.com/hollowcoast/hollowcoast-web/internal/catalog"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
)

// CatalogArtist returns the band's music-catalog record.
func CatalogArtist(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		artist, err := svc.Artist(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, artist)
	}
}

// CatalogAlbums returns the discography.
func CatalogAlbums(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		albums, err := svc.Albums(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, albums)
	}
}

// CatalogAlbumTracks returns one album's track list.
func CatalogAlbumTracks(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracks, err := svc.AlbumTracks(r.Context(), chi.URLParam(r, "albumID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, tracks)
	}
}
