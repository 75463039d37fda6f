package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/platform/obs"
)

// SQL-backed implementation of the CargoRepository port.
type SQLCargoRepository struct{ DB *sql.DB }

func NewSQLCargoRepository(db *sql.DB) *SQLCargoRepository {
	return &SQLCargoRepository{DB: db}
}

// Return the whole cargo catalog ordered by item name.
func (s *SQLCargoRepository) ListItems(ctx context.Context) (_ []domain.Item, err error) {
	defer obs.Time(ctx, "cargo.repo.ListItems")(&err)

	if s.DB == nil {
		return nil, errors.New("sql cargo repository: DB is nil")
	}

	query := `
	SELECT
		name,
		weight,
		source,
		destination
	FROM items
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: query items table: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0, 64)
	for rows.Next() {
		var it domain.Item
		var src, dst string
		if err := rows.Scan(&it.Name, &it.Weight, &src, &dst); err != nil {
			return nil, fmt.Errorf("list items: scan row: %w", err)
		}
		it.Source = domain.NewStation(src)
		it.Destination = domain.NewStation(dst)
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: row iteration: %w", err)
	}

	return items, nil
}
