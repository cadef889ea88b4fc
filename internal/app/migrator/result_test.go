package migrator

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"wp2mongo/internal/app/errors"
	"wp2mongo/internal/app/testutil"
)

func TestResult_Kind(t *testing.T) {
	cause := stderrors.New("boom")

	tests := []struct {
		err      error
		expected ErrorKind
	}{
		{nil, KindNone},
		{errors.Mark(cause, errors.ErrFileReadFailed), KindSourceRead},
		{errors.Wrapf(errors.Mark(cause, errors.ErrParseFailed), "decode %s", "x.json"), KindSourceParse},
		{errors.Mark(cause, errors.ErrDatabaseConnection), KindSourceConnection},
		{errors.Mark(cause, errors.ErrQueryFailed), KindQuery},
		{errors.Mark(cause, errors.ErrScanFailed), KindQuery},
		{errors.Mark(cause, errors.ErrInsertFailed), KindInsert},
		{cause, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			r := Result{Err: tt.err}
			assert.Equal(t, tt.expected, r.Kind())
			assert.Equal(t, tt.err == nil, r.OK())
		})
	}
}

func TestLogResult(t *testing.T) {
	logger, logs := testutil.NewObservedLogger()

	LogResult(logger, Result{Source: SourceMySQL, Migrated: 2})
	LogResult(logger, Result{
		Source: SourceMySQL,
		Err:    errors.Mark(stderrors.New("connection refused"), errors.ErrDatabaseConnection),
	})

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "2 posts migrated from MySQL to MongoDB", entries[0].Message)

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "Error migrating from MySQL", entries[1].Message)
	assert.Equal(t, "source_connection", entries[1].ContextMap()["kind"])
	assert.Contains(t, entries[1].ContextMap()["error"], "connection refused")
}
