package app

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wp2mongo/internal/app/errors"
	"wp2mongo/internal/app/migrator"
	"wp2mongo/internal/app/testutil"
	"wp2mongo/internal/config"
)

// connectorFor returns a Connector handing out a migrator over writer and
// source, and counts how often the cleanup runs
func connectorFor(writer migrator.PostWriter, source migrator.PostSource, cleanups *int) Connector {
	return func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*migrator.Migrator, func(), error) {
		opener := func(ctx context.Context) (migrator.PostSource, error) {
			return source, nil
		}
		return migrator.NewMigrator(writer, opener, logger), func() { *cleanups++ }, nil
	}
}

func TestRun_MongoConnectionFailureIsFatal(t *testing.T) {
	logger, logs := testutil.NewObservedLogger()

	connect := func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*migrator.Migrator, func(), error) {
		return nil, nil, errors.Mark(stderrors.New("server selection timeout"), errors.ErrDatabaseConnection)
	}
	migrated := false
	migrate := func(ctx context.Context, m *migrator.Migrator) migrator.Result {
		migrated = true
		return migrator.Result{}
	}

	// the observed logger panics where the real one would exit(1)
	assert.Panics(t, func() {
		Run(context.Background(), &config.Config{}, logger, connect, migrate)
	})

	assert.False(t, migrated, "nothing is read or inserted without a document store")
	entries := logs.FilterMessage("MongoDB connection error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.FatalLevel, entries[0].Level)
}

func TestRun_MySQL(t *testing.T) {
	logger, logs := testutil.NewObservedLogger()

	source := testutil.NewMockPostSource()
	source.On("FetchPublishedPosts", mock.Anything).Return(testutil.ExampleRows, nil)
	source.On("Close").Return(nil)

	writer := testutil.NewMockPostWriter()
	writer.On("InsertMany", mock.Anything, testutil.ExamplePosts).Return(nil)

	cleanups := 0
	result := Run(context.Background(), &config.Config{}, logger, connectorFor(writer, source, &cleanups), MigrateFromMySQL)

	assert.True(t, result.OK())
	assert.Equal(t, 2, result.Migrated)
	assert.Equal(t, 1, cleanups)
	assert.Equal(t, 1, logs.FilterMessage("2 posts migrated from MySQL to MongoDB").Len())
	writer.AssertExpectations(t)
}

func TestRun_FailedStepIsNotFatal(t *testing.T) {
	logger, logs := testutil.NewObservedLogger()

	source := testutil.NewMockPostSource()
	source.On("Close").Return(nil)
	writer := testutil.NewMockPostWriter()

	cleanups := 0
	path := testutil.WriteFile(t, "posts.json", "not json")

	var result migrator.Result
	assert.NotPanics(t, func() {
		result = Run(context.Background(), &config.Config{}, logger, connectorFor(writer, source, &cleanups), MigrateFromJSON(path))
	})

	assert.Equal(t, migrator.KindSourceParse, result.Kind())
	assert.Equal(t, 1, cleanups)
	assert.Equal(t, 1, logs.FilterMessage("Error migrating from JSON").Len())
	writer.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	source.AssertNotCalled(t, "Close")
}
