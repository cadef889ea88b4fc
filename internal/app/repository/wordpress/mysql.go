package wordpress

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"

	"wp2mongo/internal/app/errors"
	"wp2mongo/internal/config"
)

// DSN builds the go-sql-driver/mysql data source name for cfg. Host may
// carry a port; without one the driver uses 3306.
func DSN(cfg config.MySQLConfig) string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = cfg.Host
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Database
	return mc.FormatDSN()
}

// Open connects to the WordPress database and checks the connection
func Open(ctx context.Context, cfg config.MySQLConfig) (*WordPressDB, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, errors.Mark(err, errors.ErrDatabaseConnection)
	}
	// one job, one connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Mark(err, errors.ErrDatabaseConnection)
	}
	return NewWordPressDB(db), nil
}
