package app

import (
	"context"

	"go.uber.org/zap"

	"wp2mongo/internal/app/migrator"
	"wp2mongo/internal/config"
)

// Connector builds a migrator bound to a live document store.
// InitializeMigrator is the production one.
type Connector func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*migrator.Migrator, func(), error)

// Migration is one of the migrator entry points
type Migration func(ctx context.Context, m *migrator.Migrator) migrator.Result

// Run connects to MongoDB, runs migrate and logs its result.
//
// Failing to reach MongoDB is the only fatal error: it is logged with
// logger.Fatal, which exits the process with status 1 before any source is
// read. Any other failure is logged and returned, and the process exits
// normally.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, connect Connector, migrate Migration) migrator.Result {
	m, cleanup, err := connect(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("MongoDB connection error", zap.Error(err))
	}
	defer cleanup()

	result := migrate(ctx, m)
	migrator.LogResult(logger, result)
	return result
}

// MigrateFromMySQL is the default run
func MigrateFromMySQL(ctx context.Context, m *migrator.Migrator) migrator.Result {
	return m.FromMySQL(ctx)
}

// MigrateFromJSON returns the migration reading posts from path
func MigrateFromJSON(path string) Migration {
	return func(ctx context.Context, m *migrator.Migrator) migrator.Result {
		return m.FromJSON(ctx, path)
	}
}
