// Package migrations применяет встроенные SQL-миграции схемы хранилища
// при старте приложения.
package migrations

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var fs embed.FS

// Run применяет все неприменённые миграции к переданному соединению.
func Run(db *sql.DB) error {
	goose.SetBaseFS(fs)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.Up(db, "sql")
}
