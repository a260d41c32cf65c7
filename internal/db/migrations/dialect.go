// Package migrations holds the Go migrations for the templates table. They are
// written in Go rather than SQL files because MySQL needs a bounded key column.
package migrations

import "fmt"

var dialect string

// SetDialect selects the DDL flavor used by the migrations. Call it before
// goose.Up.
func SetDialect(d string) error {
	switch d {
	case "sqlite3", "postgres", "mysql":
		dialect = d
		return nil
	}
	return fmt.Errorf("migrations: unsupported dialect %q", d)
}
