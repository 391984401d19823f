package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string   `env:"PORT" env-default:"3000"`
	JWTSecret   string   `env:"JWT_SECRET"`
	JWTIssuer   string   `env:"JWT_ISSUER"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
	Database    Database
	Log         Log
}

// Database describes how to reach the credential and question store.
type Database struct {
	Driver     string `env:"DB_DRIVER" env-default:"postgres"`
	URL        string `env:"DATABASE_URL"`
	User       string `env:"DB_USER"`
	Password   string `env:"DB_PASSWORD"`
	Host       string `env:"DB_HOST" env-default:"localhost"`
	Port       string `env:"DB_PORT" env-default:"5432"`
	Name       string `env:"DB_DATABASE"`
	SQLitePath string `env:"SQLITE_PATH" env-default:"puzzles.db"`
	Migrate    bool   `env:"DB_MIGRATE" env-default:"true"`
}

// Log selects the slog handler and minimum level.
type Log struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads configuration from the environment and performs minimal validation.
// An empty JWT_SECRET is accepted; callers are expected to warn about it.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	// cleanenv only applies defaults to unset vars; treat blank ones the same way.
	cfg.Port = fallback(cfg.Port, "3000")
	cfg.JWTSecret = strings.TrimSpace(cfg.JWTSecret)
	cfg.CORSOrigins = normalizeOrigins(cfg.CORSOrigins)
	cfg.Database.Driver = strings.ToLower(fallback(cfg.Database.Driver, DriverPostgres))
	cfg.Database.Host = fallback(cfg.Database.Host, "localhost")
	cfg.Database.Port = fallback(cfg.Database.Port, "5432")
	cfg.Database.SQLitePath = fallback(cfg.Database.SQLitePath, "puzzles.db")
	cfg.Log.Level = strings.ToLower(fallback(cfg.Log.Level, "info"))
	cfg.Log.Format = strings.ToLower(fallback(cfg.Log.Format, "json"))

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}
	if _, err := strconv.Atoi(cfg.Database.Port); err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT %q", cfg.Database.Port)
	}
	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("unsupported LOG_LEVEL %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "json", "text":
	default:
		return Config{}, fmt.Errorf("unsupported LOG_FORMAT %q", cfg.Log.Format)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// DSN returns the Postgres connection string. DATABASE_URL wins over the DB_* parts.
func (d Database) DSN() string {
	if raw := strings.TrimSpace(d.URL); raw != "" {
		return raw
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	switch {
	case d.User != "" && d.Password != "":
		u.User = url.UserPassword(d.User, d.Password)
	case d.User != "":
		u.User = url.User(d.User)
	}
	return u.String()
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func normalizeOrigins(in []string) []string {
	var out []string
	for _, part := range in {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
