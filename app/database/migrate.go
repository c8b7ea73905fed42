package database

import (
	"database/sql"

	"github.com/pressly/goose/v3"

	"github.com/mirr-x/smart-class-companion/app/database/migrations"
)

// RunMigrations applies any pending goose migrations from the embedded
// SQL files.
func RunMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

// RollbackMigration reverts the most recent migration.
func RollbackMigration(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Down(db, ".")
}
