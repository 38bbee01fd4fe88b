package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/beheryahmed1991/subscription-tracker/internal/currency"
)

// Config aggregates every tunable part of the application.
type Config struct {
	App     AppConfig
	DB      DBConfig
	Log     LogConfig
	Swagger SwaggerConfig
	Demo    DemoConfig
}

// AppConfig contains settings related to the HTTP server.
type AppConfig struct {
	Port            string
	Env             string
	ShutdownTimeout time.Duration
}

// DBConfig holds either a full POSTGRES_URL or the parts to build one, plus
// pool tuning.
type DBConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectAttempts int
	RetryDelay      time.Duration
}

// DSN prefers URL and otherwise assembles a postgres:// connection string.
func (db DBConfig) DSN() string {
	if db.URL != "" {
		return db.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		db.User,
		db.Password,
		or(db.Host, "localhost"),
		or(db.Port, "5432"),
		db.Name,
		or(db.SSLMode, "disable"),
	)
}

// LogConfig controls logger behavior.
type LogConfig struct {
	Level string
}

// SwaggerConfig configures the served API documentation.
type SwaggerConfig struct {
	Host string
}

// DemoConfig describes the single user every request runs as.
type DemoConfig struct {
	Username        string
	DefaultCurrency string
}

// Load reads the environment and validates the result. Every problem found
// is reported, not only the first.
func Load() (Config, error) {
	env := &reader{}

	cfg := Config{
		App: AppConfig{
			Port:            env.str("APP_PORT", "8080"),
			Env:             env.str("APP_ENV", "dev"),
			ShutdownTimeout: env.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		DB: DBConfig{
			URL:             env.str("POSTGRES_URL", ""),
			Host:            env.str("DB_HOST", "localhost"),
			Port:            env.str("DB_PORT", "5432"),
			User:            env.str("DB_USER", ""),
			Password:        env.str("DB_PASSWORD", ""),
			Name:            env.str("DB_NAME", ""),
			SSLMode:         env.str("DB_SSLMODE", "disable"),
			MaxOpenConns:    env.integer("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    env.integer("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: env.duration("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnectAttempts: env.integer("DB_CONNECT_ATTEMPTS", 10),
			RetryDelay:      env.duration("DB_RETRY_DELAY", 2*time.Second),
		},
		Log: LogConfig{
			Level: strings.ToLower(env.str("LOG_LEVEL", "info")),
		},
		Demo: DemoConfig{
			Username:        env.str("DEMO_USERNAME", "demo"),
			DefaultCurrency: currency.Normalize(env.str("DEFAULT_CURRENCY", "USD")),
		},
	}
	cfg.Swagger.Host = env.str("SWAGGER_HOST", "localhost:"+cfg.App.Port)

	if err := errors.Join(env.errs, cfg.validate()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	var errs []error

	if cfg.DB.URL == "" {
		var missing []string
		for _, field := range []struct{ key, value string }{
			{"DB_USER", cfg.DB.User},
			{"DB_PASSWORD", cfg.DB.Password},
			{"DB_NAME", cfg.DB.Name},
		} {
			if field.value == "" {
				missing = append(missing, field.key)
			}
		}
		if len(missing) > 0 {
			errs = append(errs, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", ")))
		}
	}

	if !currency.Valid(cfg.Demo.DefaultCurrency) {
		errs = append(errs, fmt.Errorf("DEFAULT_CURRENCY %q is not an ISO 4217 code", cfg.Demo.DefaultCurrency))
	}
	if cfg.App.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}

	return errors.Join(errs...)
}

// reader collects parse failures so Load can report them together.
type reader struct {
	errs error
}

func (r *reader) str(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func (r *reader) integer(key string, fallback int) int {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		r.errs = errors.Join(r.errs, fmt.Errorf("parse %s: %w", key, err))
		return fallback
	}
	return n
}

func (r *reader) duration(key string, fallback time.Duration) time.Duration {
	raw := r.str(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		r.errs = errors.Join(r.errs, fmt.Errorf("parse %s: %w", key, err))
		return fallback
	}
	return d
}

func or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
