//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"wp2mongo/internal/app/migrator"
	"wp2mongo/internal/app/repository/mongodb"
	"wp2mongo/internal/config"
)

// InitializeMigrator connects to MongoDB and returns a migrator writing to
// it. The cleanup function disconnects the client.
func InitializeMigrator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*migrator.Migrator, func(), error) {
	wire.Build(
		providePostStore,
		provideSourceOpener,
		wire.Bind(new(migrator.PostWriter), new(*mongodb.PostStore)),
		migrator.NewMigrator,
	)
	return nil, nil, nil
}
