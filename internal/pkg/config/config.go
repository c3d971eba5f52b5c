package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - default: every value has a development fallback so the store boots with no env at all
// - secrets (Stripe keys) fall back to placeholders that are logged loudly at startup
// -----------------------------------------------------------------------------

const PlaceholderStripeKey = "sk_test_PLACEHOLDER"

type Config struct {
	Server   ServerConfig
	Stripe   StripeConfig
	Catalog  CatalogConfig
	Issuance IssuanceConfig
	Registry RegistryConfig
	Store    StoreConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"3002"`
	Domain          string        `envconfig:"DOMAIN" default:"http://localhost:3002"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type StripeConfig struct {
	SecretKey     string        `envconfig:"STRIPE_SECRET_KEY" default:"sk_test_PLACEHOLDER"`
	WebhookSecret string        `envconfig:"STRIPE_WEBHOOK_SECRET"`
	Timeout       time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"15s"`
	// BackendURL overrides the Stripe API base; only tests set it.
	BackendURL string `envconfig:"STRIPE_BACKEND_URL"`
}

type CatalogConfig struct {
	KeyPrefix          string `envconfig:"KEY_PREFIX" default:"VANDER"`
	Currency           string `envconfig:"CURRENCY" default:"usd"`
	LifetimePriceCents int64  `envconfig:"PRICE_LIFETIME_CENTS" default:"5000"`
	MonthlyPriceCents  int64  `envconfig:"PRICE_MONTHLY_CENTS" default:"500"`
}

type IssuanceConfig struct {
	DefaultPlan  string `envconfig:"DEFAULT_PLAN" default:"lifetime"`
	DefaultEmail string `envconfig:"DEFAULT_EMAIL" default:"unknown"`
	// Timeout bounds webhook-driven issuance, which outlives the webhook request.
	Timeout time.Duration `envconfig:"ISSUANCE_TIMEOUT" default:"30s"`
}

type RegistryConfig struct {
	URL        string        `envconfig:"REGISTRY_URL" default:"https://vanderhub-default-rtdb.firebaseio.com/.json"`
	Timeout    time.Duration `envconfig:"REGISTRY_TIMEOUT" default:"10s"`
	WriteMode  string        `envconfig:"REGISTRY_WRITE_MODE" default:"overwrite"`
	MaxRetries uint64        `envconfig:"REGISTRY_MAX_RETRIES" default:"3"`
}

type StoreConfig struct {
	Driver   string        `envconfig:"SESSION_STORE" default:"memory"`
	RedisURL string        `envconfig:"REDIS_URL" default:"localhost:6379"`
	TTL      time.Duration `envconfig:"SESSION_TTL" default:"0s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"keystore"`
	Password string `envconfig:"DB_PASSWORD" default:"keystore"`
	DBName   string `envconfig:"DB_NAME" default:"keystore"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3002"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"

	RegistryOverwrite   = "overwrite"
	RegistryConditional = "conditional"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *StripeConfig) IsLive() bool {
	return c.SecretKey != "" && c.SecretKey != PlaceholderStripeKey
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory, StoreRedis, StorePostgres:
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.Store.Driver)
	}
	switch c.Registry.WriteMode {
	case RegistryOverwrite, RegistryConditional:
	default:
		return fmt.Errorf("unsupported REGISTRY_WRITE_MODE %q", c.Registry.WriteMode)
	}
	if c.Catalog.LifetimePriceCents <= 0 || c.Catalog.MonthlyPriceCents <= 0 {
		return fmt.Errorf("plan prices must be positive")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			Domain:          "http://localhost:8889",
			ShutdownTimeout: time.Second,
		},
		Stripe: StripeConfig{
			SecretKey:     PlaceholderStripeKey,
			WebhookSecret: "whsec_test_secret",
			Timeout:       5 * time.Second,
		},
		Catalog: CatalogConfig{
			KeyPrefix:          "VANDER",
			Currency:           "usd",
			LifetimePriceCents: 5000,
			MonthlyPriceCents:  500,
		},
		Issuance: IssuanceConfig{
			DefaultPlan:  "lifetime",
			DefaultEmail: "unknown",
			Timeout:      5 * time.Second,
		},
		Registry: RegistryConfig{
			URL:        "http://localhost:0/.json",
			Timeout:    2 * time.Second,
			WriteMode:  RegistryOverwrite,
			MaxRetries: 3,
		},
		Store: StoreConfig{
			Driver: StoreMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
