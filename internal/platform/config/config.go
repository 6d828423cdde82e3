package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	StoreDriver   string
	SQLitePath    string
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// JWTSecret left empty disables bearer authentication.
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RateLimit          string
	CORSAllowedOrigins []string

	// AMQPURL left empty disables event publishing.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	ReportCacheSize         int
	ReportCacheTTL          time.Duration
	DefaultTransactionLimit int
	MaxTransactionLimit     int
}

// SetDefaults registers every key with its default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("STORE_DRIVER", DriverSQLite)
	v.SetDefault("SQLITE_PATH", "ledger.db")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "ledgerbook")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "ledger")
	v.SetDefault("AMQP_QUEUE", "ledger_events")
	v.SetDefault("REPORT_CACHE_SIZE", 256)
	v.SetDefault("REPORT_CACHE_TTL", "10m")
	v.SetDefault("DEFAULT_TRANSACTION_LIMIT", 50)
	v.SetDefault("MAX_TRANSACTION_LIMIT", 500)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an optional YAML file. Environment variables win over
// the file, the file wins over defaults.
func LoadConfigFile(path string) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	v.AutomaticEnv()

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromViper reads a Config out of v. Unparseable durations fall back to their defaults
// with a warning; Validate reports everything else.
func FromViper(v *viper.Viper) *Config {
	cfg := &Config{
		StoreDriver:             strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		SQLitePath:              v.GetString("SQLITE_PATH"),
		DatabaseURL:             v.GetString("PGSQL_URL"),
		Port:                    v.GetString("PORT"),
		IsProduction:            v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:           v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:               v.GetString("JWT_SECRET"),
		JWTIssuer:               v.GetString("JWT_ISSUER"),
		RateLimit:               v.GetString("RATE_LIMIT"),
		AMQPURL:                 v.GetString("AMQP_URL"),
		AMQPExchange:            v.GetString("AMQP_EXCHANGE"),
		AMQPQueue:               v.GetString("AMQP_QUEUE"),
		ReportCacheSize:         v.GetInt("REPORT_CACHE_SIZE"),
		DefaultTransactionLimit: v.GetInt("DEFAULT_TRANSACTION_LIMIT"),
		MaxTransactionLimit:     v.GetInt("MAX_TRANSACTION_LIMIT"),
	}

	cfg.JWTExpiryDuration = durationOrDefault(v.GetString("JWT_EXPIRY_DURATION"), time.Hour, "JWT_EXPIRY_DURATION")
	cfg.ReportCacheTTL = durationOrDefault(v.GetString("REPORT_CACHE_TTL"), 10*time.Minute, "REPORT_CACHE_TTL")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set, API authentication is disabled")
	}
	return cfg
}

func durationOrDefault(raw string, def time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			slog.Warn("Invalid duration, using default", slog.String("key", key), slog.String("value", raw), slog.Duration("default", def))
		}
		return def
	}
	return d
}

// AuthEnabled reports whether bearer authentication is configured.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// Validate validates the configuration and returns every problem at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.StoreDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH cannot be empty when STORE_DRIVER is sqlite")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			problems = append(problems, "PGSQL_URL cannot be empty when STORE_DRIVER is postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid STORE_DRIVER '%s': must be one of [%s %s]", c.StoreDriver, DriverSQLite, DriverPostgres))
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := limiter.NewRateFromFormatted(c.RateLimit); err != nil {
		problems = append(problems, fmt.Sprintf("invalid RATE_LIMIT '%s': %v", c.RateLimit, err))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.ReportCacheSize < 0 {
		problems = append(problems, fmt.Sprintf("invalid REPORT_CACHE_SIZE %d: cannot be negative", c.ReportCacheSize))
	}
	if c.DefaultTransactionLimit < 1 {
		problems = append(problems, fmt.Sprintf("invalid DEFAULT_TRANSACTION_LIMIT %d: must be positive", c.DefaultTransactionLimit))
	}
	if c.MaxTransactionLimit < c.DefaultTransactionLimit {
		problems = append(problems, fmt.Sprintf("invalid MAX_TRANSACTION_LIMIT %d: must be at least DEFAULT_TRANSACTION_LIMIT (%d)", c.MaxTransactionLimit, c.DefaultTransactionLimit))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
