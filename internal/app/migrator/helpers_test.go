package migrator

import (
	"testing"

	"wp2mongo/internal/app/repository/wordpress"
	"wp2mongo/internal/app/testutil"
)

func wordPressFromSQLite(t *testing.T) PostSource {
	t.Helper()
	return wordpress.NewWordPressDB(testutil.SetupWordPressSQLite(t))
}
