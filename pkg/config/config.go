package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is empty because every field carries its fully-qualified name.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

// Environment variable names shared with tests and deploy tooling.
const (
	EnvAppEnv          = "HOLLOWCOAST_APP_ENV"
	EnvPort            = "HOLLOWCOAST_APP_PORT"
	EnvSiteBaseURL     = "HOLLOWCOAST_SITE_BASE_URL"
	EnvRedisURL        = "HOLLOWCOAST_REDIS_URL"
	EnvUpstreamBaseURL = "HOLLOWCOAST_UPSTREAM_BASE_URL"
	EnvCatalogBaseURL  = "HOLLOWCOAST_CATALOG_BASE_URL"
)

type Config struct {
	App       AppConfig
	Session   SessionConfig
	Redis     RedisConfig
	Upstream  UpstreamConfig
	Catalog   CatalogConfig
	Checkout  CheckoutConfig
	Toast     ToastConfig
	RateLimit RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"HOLLOWCOAST_APP_ENV" required:"true"`
	Port         string `envconfig:"HOLLOWCOAST_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"HOLLOWCOAST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"HOLLOWCOAST_LOG_WARN_STACK" default:"false"`

	// SiteBaseURL is the public origin of the band site, used to build the
	// same-origin checkout return URLs.
	SiteBaseURL string `envconfig:"HOLLOWCOAST_SITE_BASE_URL" required:"true"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type SessionConfig struct {
	CookieName   string        `envconfig:"HOLLOWCOAST_SESSION_COOKIE_NAME" default:"hc_session"`
	TTL          time.Duration `envconfig:"HOLLOWCOAST_SESSION_TTL" default:"720h"`
	CookieSecure bool          `envconfig:"HOLLOWCOAST_SESSION_COOKIE_SECURE" default:"true"`
}

type RedisConfig struct {
	URL          string        `envconfig:"HOLLOWCOAST_REDIS_URL" required:"true"`
	Address      string        `envconfig:"HOLLOWCOAST_REDIS_ADDR"`
	Password     string        `envconfig:"HOLLOWCOAST_REDIS_PASSWORD"`
	DB           int           `envconfig:"HOLLOWCOAST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HOLLOWCOAST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HOLLOWCOAST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HOLLOWCOAST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HOLLOWCOAST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HOLLOWCOAST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// UpstreamConfig points at the band API this service consumes.
type UpstreamConfig struct {
	BaseURL string        `envconfig:"HOLLOWCOAST_UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"HOLLOWCOAST_UPSTREAM_TIMEOUT" default:"10s"`
}

// CatalogConfig points at the public music-catalog API. Tokens for it are
// brokered through the upstream band API, never minted here.
type CatalogConfig struct {
	BaseURL  string        `envconfig:"HOLLOWCOAST_CATALOG_BASE_URL" required:"true"`
	ArtistID string        `envconfig:"HOLLOWCOAST_CATALOG_ARTIST_ID"`
	Timeout  time.Duration `envconfig:"HOLLOWCOAST_CATALOG_TIMEOUT" default:"10s"`
}

type CheckoutConfig struct {
	SuccessPath     string `envconfig:"HOLLOWCOAST_CHECKOUT_SUCCESS_PATH" default:"/checkout/success"`
	CancelPath      string `envconfig:"HOLLOWCOAST_CHECKOUT_CANCEL_PATH" default:"/checkout/cancel"`
	CollectShipping bool   `envconfig:"HOLLOWCOAST_CHECKOUT_COLLECT_SHIPPING" default:"true"`
}

type ToastConfig struct {
	DefaultDuration time.Duration `envconfig:"HOLLOWCOAST_TOAST_DEFAULT_DURATION" default:"5s"`
}

// RateLimitConfig caps the abuse-prone public endpoints. A limit of 0
// disables the check for that endpoint.
type RateLimitConfig struct {
	ContactLimit int64         `envconfig:"HOLLOWCOAST_RATE_LIMIT_CONTACT" default:"5"`
	LoginLimit   int64         `envconfig:"HOLLOWCOAST_RATE_LIMIT_LOGIN" default:"10"`
	Window       time.Duration `envconfig:"HOLLOWCOAST_RATE_LIMIT_WINDOW" default:"1m"`
}
