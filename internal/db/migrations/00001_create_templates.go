package migrations

// The templates table is read by the relay and managed externally. Column
// types differ per driver: MySQL cannot index an unbounded TEXT primary key.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTemplates, downCreateTemplates)
}

func upCreateTemplates(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS templates (
    id          VARCHAR(191) PRIMARY KEY,
    name        VARCHAR(255) NOT NULL,
    description TEXT NOT NULL,
    prompt      TEXT NOT NULL,
    form_fields TEXT NOT NULL
)`
	default: // sqlite3, postgres
		ddl = `CREATE TABLE IF NOT EXISTS templates (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    prompt      TEXT NOT NULL,
    form_fields TEXT NOT NULL DEFAULT '[]'
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create templates table: %w", err)
	}
	return nil
}

func downCreateTemplates(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS templates`)
	return err
}
