package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// SchemaVersion is the latest schema version supported by InitSchema.
const SchemaVersion = 1

// Initialize the database schema. The DDL is valid for SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createMigrationsQuery := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY
	);
	`

	createConnectionsQuery := `
	CREATE TABLE IF NOT EXISTS connections (
		seq INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		source TEXT NOT NULL,
		destination TEXT NOT NULL,
		travel_seconds INTEGER NOT NULL CHECK (travel_seconds >= 0)
	);
	`

	createItemsQuery := `
	CREATE TABLE IF NOT EXISTS items (
		name TEXT PRIMARY KEY,
		weight INTEGER NOT NULL CHECK (weight >= 0),
		source TEXT NOT NULL,
		destination TEXT NOT NULL
	);
	`

	createMovementsQuery := `
	CREATE TABLE IF NOT EXISTS movements (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		time_seconds INTEGER NOT NULL,
		train TEXT NOT NULL,
		from_station TEXT NOT NULL,
		to_station TEXT NOT NULL,
		pick_ups TEXT NOT NULL,
		drop_offs TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_movements_train
	ON movements(train, run_id);
	`

	statements := []string{
		createMigrationsQuery,
		createConnectionsQuery,
		createItemsQuery,
		createMovementsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	var current int
	if err := tx.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current); err != nil {
		return fmt.Errorf("init schema: read current version: %w", err)
	}
	if current < SchemaVersion {
		if _, err := tx.Exec(fmt.Sprintf(`INSERT INTO schema_migrations (version) VALUES (%d);`, SchemaVersion)); err != nil {
			return fmt.Errorf("init schema: record version: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
