package migrator

import (
	stderrors "errors"

	"go.uber.org/zap"

	"wp2mongo/internal/app/errors"
)

// Source names where a migration read its posts from
type Source string

const (
	SourceMySQL Source = "MySQL"
	SourceJSON  Source = "JSON"
)

// ErrorKind classifies why a migration step failed
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindSourceRead
	KindSourceParse
	KindSourceConnection
	KindQuery
	KindInsert
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSourceRead:
		return "source_read"
	case KindSourceParse:
		return "source_parse"
	case KindSourceConnection:
		return "source_connection"
	case KindQuery:
		return "query"
	case KindInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Result is the outcome of one migration. Err is nil on success, and
// Migrated is the number of documents the store acknowledged.
type Result struct {
	Source   Source
	Migrated int
	Err      error
}

func (r Result) OK() bool {
	return r.Err == nil
}

func (r Result) Kind() ErrorKind {
	switch {
	case r.Err == nil:
		return KindNone
	case stderrors.Is(r.Err, errors.ErrFileReadFailed):
		return KindSourceRead
	case stderrors.Is(r.Err, errors.ErrParseFailed):
		return KindSourceParse
	case stderrors.Is(r.Err, errors.ErrDatabaseConnection):
		return KindSourceConnection
	case stderrors.Is(r.Err, errors.ErrQueryFailed), stderrors.Is(r.Err, errors.ErrScanFailed):
		return KindQuery
	case stderrors.Is(r.Err, errors.ErrInsertFailed):
		return KindInsert
	default:
		return KindUnknown
	}
}

// LogResult reports a finished migration. Failures are logged and
// swallowed; they never change the exit status.
func LogResult(logger *zap.Logger, r Result) {
	if r.OK() {
		logger.Sugar().Infof("%d posts migrated from %s to MongoDB", r.Migrated, r.Source)
		return
	}

	logger.Error("Error migrating from "+string(r.Source),
		zap.String("kind", r.Kind().String()),
		zap.Error(r.Err),
	)
}
