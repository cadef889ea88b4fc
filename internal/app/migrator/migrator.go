package migrator

import (
	"context"

	"go.uber.org/zap"

	"wp2mongo/internal/app/model"
	"wp2mongo/internal/app/source/jsonfile"
)

// PostWriter is the document store side of a migration
type PostWriter interface {
	InsertMany(ctx context.Context, posts []model.Post) (int, error)
}

// PostSource is an open connection to the WordPress database
type PostSource interface {
	FetchPublishedPosts(ctx context.Context) ([]model.WordPressRow, error)
	Close() error
}

// SourceOpener connects to the WordPress database for one migration
type SourceOpener func(ctx context.Context) (PostSource, error)

type Migrator struct {
	writer     PostWriter
	openSource SourceOpener
	logger     *zap.Logger
}

func NewMigrator(writer PostWriter, openSource SourceOpener, logger *zap.Logger) *Migrator {
	return &Migrator{
		writer:     writer,
		openSource: openSource,
		logger:     logger,
	}
}

// FromMySQL copies every published post from WordPress into the document
// store. The MySQL connection is opened here and closed exactly once before
// returning, whatever happened in between.
func (m *Migrator) FromMySQL(ctx context.Context) Result {
	result := Result{Source: SourceMySQL}

	source, err := m.openSource(ctx)
	if err != nil {
		result.Err = err
		return result
	}
	m.logger.Info("Connected to MySQL")

	defer func() {
		if err := source.Close(); err != nil {
			m.logger.Warn("Failed to close MySQL connection", zap.Error(err))
		}
	}()

	rows, err := source.FetchPublishedPosts(ctx)
	if err != nil {
		result.Err = err
		return result
	}
	m.logger.Debug("Fetched published posts", zap.Int("rows", len(rows)))

	result.Migrated, result.Err = m.writer.InsertMany(ctx, ToPosts(rows))
	return result
}

// FromJSON copies the posts stored in a JSON file into the document store.
// Nothing is written when the file cannot be read or decoded.
func (m *Migrator) FromJSON(ctx context.Context, path string) Result {
	result := Result{Source: SourceJSON}

	posts, err := jsonfile.ReadPosts(path)
	if err != nil {
		result.Err = err
		return result
	}
	m.logger.Debug("Read posts from file", zap.String("path", path), zap.Int("posts", len(posts)))

	result.Migrated, result.Err = m.writer.InsertMany(ctx, posts)
	return result
}
