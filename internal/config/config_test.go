package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "JWT_SECRET", "JWT_ISSUER", "CORS_ALLOWED_ORIGINS",
		"DB_DRIVER", "DATABASE_URL", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_DATABASE",
		"SQLITE_PATH", "DB_MIGRATE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.HTTPAddress())
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "puzzles.db", cfg.Database.SQLitePath)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", " s3cret ")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/q.db")
	t.Setenv("DB_MIGRATE", "false")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTPAddress())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/q.db", cfg.Database.SQLitePath)
	assert.False(t, cfg.Database.Migrate)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"port":    {"PORT", "http"},
		"db_port": {"DB_PORT", "postgres"},
		"driver":  {"DB_DRIVER", "mysql"},
		"level":   {"LOG_LEVEL", "loud"},
		"format":  {"LOG_FORMAT", "xml"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := Database{User: "app", Password: "p@ss", Host: "db", Port: "6543", Name: "puzzles"}
	assert.Equal(t, "postgres://app:p%40ss@db:6543/puzzles", d.DSN())

	d.Password = ""
	assert.Equal(t, "postgres://app@db:6543/puzzles", d.DSN())

	d.URL = "postgres://override/x"
	assert.Equal(t, "postgres://override/x", d.DSN())
}
