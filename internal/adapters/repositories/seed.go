package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"train-dispatch-service/internal/adapters/scenario"
	"train-dispatch-service/internal/domain"
)

// Populate the network and cargo tables from a scenario JSON file.
// Existing connections are replaced so the stored order matches the file.
func SeedFromJSON(db *sql.DB, dialect Dialect, jsonPath string) error {
	sc, err := scenario.LoadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed network: %w", err)
	}

	conns, err := sc.DomainConnections()
	if err != nil {
		return fmt.Errorf("seed network: %w", err)
	}
	items, err := sc.DomainItems()
	if err != nil {
		return fmt.Errorf("seed network: %w", err)
	}

	return Seed(context.Background(), db, dialect, conns, items)
}

// Seed replaces the stored network and upserts the cargo catalog in one transaction.
func Seed(ctx context.Context, db *sql.DB, dialect Dialect, conns []domain.Connection, items []domain.Item) error {
	if db == nil {
		return errors.New("seed network: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed network: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM connections;`); err != nil {
		return fmt.Errorf("seed network: clear connections: %w", err)
	}

	connStmt, err := tx.PrepareContext(ctx, dialect.Bind(`
	INSERT INTO connections (
		seq,
		name,
		source,
		destination,
		travel_seconds
	)
	VALUES (?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("seed network: prepare connection insert: %w", err)
	}
	defer connStmt.Close()

	for i, c := range conns {
		if _, err := connStmt.ExecContext(ctx, i+1, c.Name, string(c.Source.Name), string(c.Destination.Name), c.TravelSeconds); err != nil {
			return fmt.Errorf("seed network: insert connection %q: %w", c.Name, err)
		}
	}

	itemStmt, err := tx.PrepareContext(ctx, dialect.Bind(`
	INSERT INTO items (
		name,
		weight,
		source,
		destination
	)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (name) DO UPDATE
	SET weight = EXCLUDED.weight,
		source = EXCLUDED.source,
		destination = EXCLUDED.destination;
	`))
	if err != nil {
		return fmt.Errorf("seed network: prepare item insert: %w", err)
	}
	defer itemStmt.Close()

	for _, it := range items {
		if _, err := itemStmt.ExecContext(ctx, it.Name, it.Weight, string(it.Source.Name), string(it.Destination.Name)); err != nil {
			return fmt.Errorf("seed network: insert item %q: %w", it.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed network: commit tx: %w", err)
	}

	return nil
}
