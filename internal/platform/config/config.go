package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Customer directory
	CustomerServiceURL     string
	CustomerServiceTimeout time.Duration

	// Authentication is optional; when disabled /api/v1 is public.
	AuthEnabled bool
	JWTSecret   string

	// Rate limiting, formatted as "<limit>-<period>" e.g. "100-M".
	RateLimit string
	// RedisURL enables a shared rate limit store when set.
	RedisURL string

	PosthogAPIKey      string
	CORSAllowedOrigins []string

	DefaultPageSize int
	MaxPageSize     int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// Values from .env have already been exported into the environment and can
	// still be overridden by real environment variables.
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CUSTOMER_SERVICE_URL", "http://localhost:8081")
	v.SetDefault("CUSTOMER_SERVICE_TIMEOUT", "5s")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DEFAULT_PAGE_SIZE", 20)
	v.SetDefault("MAX_PAGE_SIZE", 100)
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.CustomerServiceURL = strings.TrimRight(v.GetString("CUSTOMER_SERVICE_URL"), "/")
	if cfg.CustomerServiceURL == "" {
		log.Println("Warning: CUSTOMER_SERVICE_URL not set. Customer lookups will fail.")
	}

	// Load customer client timeout (e.g., "5s", "500ms")
	timeoutStr := v.GetString("CUSTOMER_SERVICE_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 5 * time.Second
		log.Printf("Warning: Invalid value for CUSTOMER_SERVICE_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout.String())
	}
	cfg.CustomerServiceTimeout = timeout

	cfg.AuthEnabled = v.GetBool("AUTH_ENABLED")
	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		log.Println("Warning: AUTH_ENABLED is set but JWT_SECRET is empty. Disabling authentication.")
		cfg.AuthEnabled = false
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.RedisURL = v.GetString("REDIS_URL")
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.DefaultPageSize = v.GetInt("DEFAULT_PAGE_SIZE")
	cfg.MaxPageSize = v.GetInt("MAX_PAGE_SIZE")
	if cfg.DefaultPageSize <= 0 || cfg.MaxPageSize <= 0 || cfg.DefaultPageSize > cfg.MaxPageSize {
		log.Printf("Warning: Invalid paging limits (default %d, max %d). Defaulting to 20/100.\n", cfg.DefaultPageSize, cfg.MaxPageSize)
		cfg.DefaultPageSize = 20
		cfg.MaxPageSize = 100
	}

	return cfg
}
