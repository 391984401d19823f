package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hongminglow/puzzle-be/internal/config"
	"github.com/hongminglow/puzzle-be/internal/logging"
	"github.com/hongminglow/puzzle-be/internal/server"
	"github.com/hongminglow/puzzle-be/internal/storage"
	"github.com/hongminglow/puzzle-be/internal/storage/postgres"
	"github.com/hongminglow/puzzle-be/internal/storage/sqlite"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.Log.Format, cfg.Log.Level)
	ctx := context.Background()

	if cfg.JWTSecret == "" {
		logger.Warn(ctx, "JWT_SECRET is empty; tokens are signed with an empty key")
	}

	store, err := openStore(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "init database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	srv := server.New(cfg, store, logger)

	go func() {
		logger.Info(ctx, "backend server is running", "addr", cfg.HTTPAddress(), "driver", cfg.Database.Driver)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error(ctx, "graceful shutdown error", "error", err)
	}
}

func openStore(ctx context.Context, db config.Database) (storage.Store, error) {
	switch db.Driver {
	case config.DriverSQLite:
		return sqlite.NewStore(ctx, db.SQLitePath, db.Migrate)
	case config.DriverPostgres:
		return postgres.NewStore(ctx, db.DSN(), db.Migrate)
	default:
		return nil, fmt.Errorf("unsupported driver %q", db.Driver)
	}
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}
}
