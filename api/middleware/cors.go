package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS applies the site's allowed origin policy. The public origin comes from
// config so staging and production each allow only themselves; localhost is
// always allowed for development.
func CORS(siteBaseURL string) func(http.Handler) http.Handler {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
	}
	if siteBaseURL != "" {
		origins = append(origins, siteBaseURL)
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
