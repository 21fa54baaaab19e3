package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hollowcoast/hollowcoast-web/api/routes"
	"github.com/hollowcoast/hollowcoast-web/internal/admin"
	"github.com/hollowcoast/hollowcoast-web/internal/authsession"
	"github.com/hollowcoast/hollowcoast-web/internal/cart"
	"github.com/hollowcoast/hollowcoast-web/internal/catalog"
	"github.com/hollowcoast/hollowcoast-web/internal/checkout"
	"github.com/hollowcoast/hollowcoast-web/internal/site"
	"github.com/hollowcoast/hollowcoast-web/internal/toast"
	"github.com/hollowcoast/hollowcoast-web/pkg/config"
	"github.com/hollowcoast/hollowcoast-web/pkg/logger"
	"github.com/hollowcoast/hollowcoast-web/pkg/metrics"
	"github.com/hollowcoast/hollowcoast-web/pkg/redis"
	"github.com/hollowcoast/hollowcoast-web/pkg/upstream"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "web"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "web",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	upstreamClient, err := upstream.NewClient(cfg.Upstream)
	if err != nil {
		logg.Error(context.Background(), "failed to create upstream client", err)
		os.Exit(1)
	}

	toastHub := toast.NewHub(cfg.Toast.DefaultDuration)
	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	cartService, err := cart.NewService(cart.NewRedisRepository(redisClient, cfg.Session.TTL), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(upstreamClient, cartService, cfg.App, cfg.Checkout)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	authService, err := authsession.NewService(authsession.NewRedisRepository(redisClient, cfg.Session.TTL), upstreamClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth session service", err)
		os.Exit(1)
	}

	siteService, err := site.NewService(upstreamClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create site service", err)
		os.Exit(1)
	}

	tokenBroker, err := catalog.NewTokenBroker(upstreamClient, redisClient, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog token broker", err)
		os.Exit(1)
	}
	catalogService, err := catalog.NewClient(cfg.Catalog, tokenBroker)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog client", err)
		os.Exit(1)
	}

	adminService, err := admin.NewService(upstreamClient, toastHub, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting web server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			httpMetrics,
			toastHub,
			cartService,
			checkoutService,
			authService,
			siteService,
			catalogService,
			adminService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "web server stopped unexpectedly", err)
		os.Exit(1)
	}
}
