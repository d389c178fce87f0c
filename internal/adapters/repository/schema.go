package repository

import (
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

const schemaVersion = 1

// initSchema creates the schema on a fresh database and verifies the version
// on an existing one. Migrations are not supported yet; a version mismatch is
// an error rather than a silent upgrade.
func initSchema(db *sqlx.DB) error {
	var hasVersionTable bool
	err := db.Get(&hasVersionTable,
		`SELECT COUNT(*) > 0 FROM sqlite_master WHERE type = 'table' AND name = 'schema_version'`)
	if err != nil {
		return fmt.Errorf("checking schema: %w", err)
	}

	if !hasVersionTable {
		if _, err := db.Exec(schemaSQL); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
		if _, err := db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, schemaVersion); err != nil {
			return fmt.Errorf("recording schema version: %w", err)
		}
		return nil
	}

	var version int
	if err := db.Get(&version, `SELECT version FROM schema_version`); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("database schema version %d, expected %d", version, schemaVersion)
	}
	return nil
}
