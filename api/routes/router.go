package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hollowcoast/hollowcoast-web/api/controllers"
	"github.com/hollowcoast/hollowcoast-web/api/middleware"
	adminsvc "github.com/hollowcoast/hollowcoast-web/internal/admin"
	"github.com/hollowcoast/hollowcoast-web/internal/authsession"
	cartsvc "github.com/hollowcoast/hollowcoast-web/internal/cart"
	catalogsvc "github.com/hollowcoast/hollowcoast-web/internal/catalog"
	checkoutsvc "github.com/hollowcoast/hollowcoast-web/internal/checkout"
	sitesvc "github.com/hollowcoast/hollowcoast-web/internal/site"
	"github.com/hollowcoast/hollowcoast-web/internal/toast"
	"github.com/hollowcoast/hollowcoast-web/pkg/config"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/metrics"
	"github.com/hollowcoast/hollowcoast-web/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	toastHub *toast.Hub,
	cartService cartsvc.Service,
	checkoutService checkoutsvc.Service,
	authService authsession.Service,
	siteService sitesvc.Service,
	catalogService catalogsvc.Service,
	adminService adminsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.App.SiteBaseURL),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, redisClient, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Session, logg))

		// Public site pages.
		r.Get("/events", controllers.EventsList(siteService, logg))
		r.With(middleware.RateLimit(redisClient, "contact", cfg.RateLimit.ContactLimit, cfg.RateLimit.Window, logg)).
			Post("/contact", controllers.ContactSubmit(siteService, logg))
		r.Get("/products", controllers.ProductsList(siteService, logg))
		r.Get("/products/{id}", controllers.ProductGet(siteService, logg))
		r.Post("/orders/track", controllers.OrderTrack(siteService, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartGet(cartService, logg))
			r.Post("/items", controllers.CartAdd(cartService, logg))
			r.Put("/items", controllers.CartUpdateQuantity(cartService, logg))
			r.Delete("/items", controllers.CartRemove(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/session", controllers.CheckoutInitiate(checkoutService, logg))
			r.Post("/success", controllers.CheckoutSuccess(checkoutService, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimit(redisClient, "login", cfg.RateLimit.LoginLimit, cfg.RateLimit.Window, logg)).
				Post("/login", controllers.AuthLogin(authService, logg))
			r.Post("/logout", controllers.AuthLogout(authService, logg))
			r.Get("/session", controllers.AuthSession(authService, logg))
		})

		r.Route("/toasts", func(r chi.Router) {
			r.Get("/", controllers.ToastsList(toastHub, logg))
			r.Get("/stream", controllers.ToastsStream(toastHub, logg))
			r.Delete("/{id}", controllers.ToastDismiss(toastHub, logg))
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/artist", controllers.CatalogArtist(catalogService, logg))
			r.Get("/albums", controllers.CatalogAlbums(catalogService, logg))
			r.Get("/albums/{albumID}/tracks", controllers.CatalogAlbumTracks(catalogService, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuth(authService, logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminOrdersList(adminService, logg))
				r.Get("/export/csv", controllers.AdminOrdersExportCSV(adminService, logg))
				r.Post("/export/mark", controllers.AdminOrdersMarkExported(adminService, logg))
				r.Get("/{id}", controllers.AdminOrderGet(adminService, logg))
				r.Post("/{id}/fulfill", controllers.AdminOrderFulfill(adminService, logg))
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminProductsList(adminService, logg))
				r.Post("/", controllers.AdminProductCreate(adminService, logg))
				r.Put("/{id}", controllers.AdminProductUpdate(adminService, logg))
				r.Delete("/{id}", controllers.AdminProductDelete(adminService, logg))
			})

			r.Route("/promotions", func(r chi.Router) {
				r.Get("/", controllers.AdminPromotionsList(adminService, logg))
				r.Post("/", controllers.AdminPromotionCreate(adminService, logg))
				r.Put("/{id}", controllers.AdminPromotionUpdate(adminService, logg))
				r.Delete("/{id}", controllers.AdminPromotionDelete(adminService, logg))
			})

			r.Route("/gift-cards", func(r chi.Router) {
				r.Get("/", controllers.AdminGiftCardsList(adminService, logg))
				r.Post("/", controllers.AdminGiftCardCreate(adminService, logg))
				r.Get("/check", controllers.AdminGiftCardCheck(adminService, logg))
				r.Post("/{id}/disable", controllers.AdminGiftCardDisable(adminService, logg))
			})

			r.Route("/shipping", func(r chi.Router) {
				r.Get("/", controllers.AdminShippingGet(adminService, logg))
				r.Put("/", controllers.AdminShippingUpdate(adminService, logg))
			})

			r.Route("/gallery", func(r chi.Router) {
				r.Get("/", controllers.AdminGalleryList(adminService, logg))
				r.Post("/", controllers.AdminGalleryCreate(adminService, logg))
				r.Delete("/{id}", controllers.AdminGalleryDelete(adminService, logg))
			})

			r.Route("/tracks", func(r chi.Router) {
				r.Get("/", controllers.AdminTracksList(adminService, logg))
				r.Post("/", controllers.AdminTrackCreate(adminService, logg))
				r.Put("/{id}", controllers.AdminTrackUpdate(adminService, logg))
				r.Delete("/{id}", controllers.AdminTrackDelete(adminService, logg))
			})
		})
	})

	return r
}
