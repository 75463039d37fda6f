package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/platform/obs"
)

// SQL-backed implementation of the NetworkRepository port.
type SQLNetworkRepository struct{ DB *sql.DB }

func NewSQLNetworkRepository(db *sql.DB) *SQLNetworkRepository {
	return &SQLNetworkRepository{DB: db}
}

// Return all connections in the order they were registered.
func (s *SQLNetworkRepository) ListConnections(ctx context.Context) (_ []domain.Connection, err error) {
	defer obs.Time(ctx, "network.repo.ListConnections")(&err)

	if s.DB == nil {
		return nil, errors.New("sql network repository: DB is nil")
	}

	query := `
	SELECT
		name,
		source,
		destination,
		travel_seconds
	FROM connections
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list connections: query connections table: %w", err)
	}
	defer rows.Close()

	conns := make([]domain.Connection, 0, 64)
	for rows.Next() {
		var name, src, dst string
		var seconds int
		if err := rows.Scan(&name, &src, &dst, &seconds); err != nil {
			return nil, fmt.Errorf("list connections: scan row: %w", err)
		}
		conns = append(conns, domain.NewConnection(name, domain.NewStation(src), domain.NewStation(dst), seconds))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list connections: row iteration: %w", err)
	}

	return conns, nil
}
