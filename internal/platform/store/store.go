// Package store opens the configured backing store, applies its migrations and
// exposes the repositories the services are built on.
package store

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/platform/config"
	"github.com/SscSPs/ledgerbook/internal/repositories/database/pgsql"
	"github.com/SscSPs/ledgerbook/internal/repositories/database/sqlite"
	"github.com/SscSPs/ledgerbook/pkg/database"
)

// Store bundles the repositories with the function that releases the connection.
type Store struct {
	Repos portsrepo.RepositoryProvider
	close func()
}

// Close releases the underlying connection or pool.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open migrates and connects to the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.DriverSQLite, "":
		return openSQLite(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openSQLite(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	logger.Info("Running database migrations...", slog.String("driver", config.DriverSQLite))
	if err := sqlite.RunMigrations(database.SQLiteDSN(cfg.SQLitePath)); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite store: %w", err)
	}
	logger.Info("SQLite store ready", slog.String("path", cfg.SQLitePath))
	return &Store{
		Repos: sqlite.NewRepositoryProvider(db),
		close: func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
			}
		},
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	logger.Info("Running database migrations...", slog.String("driver", config.DriverPostgres))
	applied, err := pgsql.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("migrate postgres store: %w", err)
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connection pool established.")
	return &Store{
		Repos: pgsql.NewRepositoryProvider(pool),
		close: func() { database.ClosePgxPool(pool) },
	}, nil
}
