package db

import (
	"database/sql"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// sqliteDriver is go-sqlite3 with lower() replaced by strings.ToLower. The
// built-in lower() only folds ASCII, so LIKE searches on "über" would miss
// "ÜBERSTROM" while postgres finds it.
const sqliteDriver = "sqlite3_unicode"

func init() {
	sql.Register(sqliteDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
}
