package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/platform/obs"

	"github.com/google/uuid"
)

// SQLTravelLogStore persists finished simulation runs as append-only
// movement rows. Pick-up and drop-off lists are stored as JSON arrays.
type SQLTravelLogStore struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLTravelLogStore(db *sql.DB, dialect Dialect) *SQLTravelLogStore {
	return &SQLTravelLogStore{DB: db, Dialect: dialect}
}

// Store the ordered records of one run.
func (s *SQLTravelLogStore) SaveRun(
	ctx context.Context,
	runID uuid.UUID,
	records []domain.MovementRecord,
) (err error) {
	defer obs.Time(ctx, "travellog.store.SaveRun")(&err)

	if s.DB == nil {
		return errors.New("travel log store: db is nil")
	}

	if runID == uuid.Nil {
		return errors.New("save travel log: run id must be set")
	}

	if len(records) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save travel log: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.Dialect.Bind(`
	INSERT INTO movements (
		run_id,
		seq,
		time_seconds,
		train,
		from_station,
		to_station,
		pick_ups,
		drop_offs
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`))
	if err != nil {
		return fmt.Errorf("save travel log: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		pickUps, err := encodeNames(rec.PickUps)
		if err != nil {
			return fmt.Errorf("save travel log seq=%d: %w", i+1, err)
		}
		dropOffs, err := encodeNames(rec.DropOffs)
		if err != nil {
			return fmt.Errorf("save travel log seq=%d: %w", i+1, err)
		}

		if _, err := stmt.ExecContext(
			ctx,
			runID.String(), i+1, rec.TimeSeconds, rec.Train,
			string(rec.From), string(rec.To), pickUps, dropOffs,
		); err != nil {
			return fmt.Errorf("save travel log seq=%d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save travel log commit: %w", err)
	}

	return nil
}

// Fetch the records of one run in append order.
func (s *SQLTravelLogStore) ListRun(ctx context.Context, runID uuid.UUID) (_ []domain.MovementRecord, err error) {
	defer obs.Time(ctx, "travellog.store.ListRun")(&err)

	if s.DB == nil {
		return nil, errors.New("travel log store: db is nil")
	}

	q := s.Dialect.Bind(`
	SELECT time_seconds, train, from_station, to_station, pick_ups, drop_offs
	FROM movements
	WHERE run_id = ?
	ORDER BY seq;
	`)

	rows, err := s.DB.QueryContext(ctx, q, runID.String())
	if err != nil {
		return nil, fmt.Errorf("list travel log: query movements table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.MovementRecord, 0, 16)
	for rows.Next() {
		var rec domain.MovementRecord
		var from, to, pickUps, dropOffs string
		if err := rows.Scan(&rec.TimeSeconds, &rec.Train, &from, &to, &pickUps, &dropOffs); err != nil {
			return nil, fmt.Errorf("list travel log: scan rows: %w", err)
		}
		rec.From = domain.StationName(from)
		rec.To = domain.StationName(to)
		if rec.PickUps, err = decodeNames(pickUps); err != nil {
			return nil, fmt.Errorf("list travel log: pick ups: %w", err)
		}
		if rec.DropOffs, err = decodeNames(dropOffs); err != nil {
			return nil, fmt.Errorf("list travel log: drop offs: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list travel log: row iteration: %w", err)
	}

	return out, nil
}

func encodeNames(names []string) (string, error) {
	if names == nil {
		names = []string{}
	}
	b, err := json.Marshal(names)
	if err != nil {
		return "", fmt.Errorf("encode names: %w", err)
	}
	return string(b), nil
}

func decodeNames(s string) ([]string, error) {
	out := []string{}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decode names: %w", err)
	}
	return out, nil
}
