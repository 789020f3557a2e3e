package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every setting the binaries read from the environment.
type Config struct {
	AppEnv      string `validate:"oneof=development production test"`
	Port        string `validate:"required,numeric"`
	DatabaseURL string

	RedisAddr      string `validate:"omitempty,hostname_port"`
	RedisPassword  string
	LookupCacheTTL time.Duration `validate:"gt=0"`

	StatusLookupURL    string `validate:"omitempty,url"`
	StatusLookupAPIKey string
	LookupRefresh      bool

	RouteCatalogPath       string
	ShipmentPhaseThreshold int `validate:"gte=1"`
	SeedPath               string

	RateLimitRPS   float64 `validate:"gte=0"`
	RateLimitBurst int     `validate:"gte=1"`
}

// Load reads .env (when present) and the process environment, then
// validates the result. Parse errors for all keys are reported together.
func Load() (Config, error) {
	_ = godotenv.Load()

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	cfg := Config{
		AppEnv:             Get("APP_ENV", "development"),
		Port:               Get("PORT", "8080"),
		DatabaseURL:        Get("DATABASE_URL", ""),
		RedisAddr:          Get("REDIS_ADDR", ""),
		RedisPassword:      Get("REDIS_PASSWORD", ""),
		RouteCatalogPath:   Get("ROUTE_CATALOG_PATH", ""),
		StatusLookupURL:    Get("STATUS_LOOKUP_URL", ""),
		StatusLookupAPIKey: Get("STATUS_LOOKUP_API_KEY", ""),
		SeedPath:           Get("SEED_PATH", "data/seeds/tracking.json"),
	}

	var err error
	cfg.LookupCacheTTL, err = GetDuration("LOOKUP_CACHE_TTL", 5*time.Minute)
	collect(err)
	cfg.ShipmentPhaseThreshold, err = GetInt("SHIPMENT_PHASE_THRESHOLD", 14)
	collect(err)
	cfg.RateLimitRPS, err = GetFloat("RATE_LIMIT_RPS", 10)
	collect(err)
	cfg.RateLimitBurst, err = GetInt("RATE_LIMIT_BURST", 20)
	collect(err)
	cfg.LookupRefresh, err = GetBool("LOOKUP_REFRESH_ENABLED", false)
	collect(err)

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("load config: %w", errors.Join(errs...))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid integer %q: %w", key, v, err)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid number %q: %w", key, v, err)
	}
	return f, nil
}

func GetBool(key string, fallback bool) (bool, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid boolean %q: %w", key, v, err)
	}
	return b, nil
}

// GetDuration accepts Go duration strings ("90s", "5m").
func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid duration %q: %w", key, v, err)
	}
	return d, nil
}
