package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// SqlFiles holds the schema history. Each file is applied once, in name order,
// so schema changes ship as a new file rather than as backfill on read.
//
//go:embed sql/*.sql
var SqlFiles embed.FS

func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(SqlFiles, "sql")
}
