package app

import (
	"context"

	"go.uber.org/zap"

	"wp2mongo/internal/app/migrator"
	"wp2mongo/internal/app/repository/mongodb"
	"wp2mongo/internal/app/repository/wordpress"
	"wp2mongo/internal/config"
)

// providePostStore connects to the document store named by MONGO_URI
func providePostStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*mongodb.PostStore, func(), error) {
	store, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Connected to MongoDB", zap.String("database", mongodb.DatabaseName(cfg.MongoURI)))

	cleanup := func() {
		if err := store.Disconnect(context.Background()); err != nil {
			logger.Warn("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}
	return store, cleanup, nil
}

// provideSourceOpener connects to WordPress lazily, once per migration
func provideSourceOpener(cfg *config.Config) migrator.SourceOpener {
	mysqlConfig := cfg.MySQL
	return func(ctx context.Context) (migrator.PostSource, error) {
		wp, err := wordpress.Open(ctx, mysqlConfig)
		if err != nil {
			return nil, err
		}
		return wp, nil
	}
}
