package services

import (
	"slices"
	"train-dispatch-service/internal/domain"
)

// TravelLog is the append-only, ordered history of one simulation run.
// It is not safe for concurrent use; one run drives it from one goroutine.
type TravelLog struct {
	records []domain.MovementRecord
}

func NewTravelLog() *TravelLog { return &TravelLog{} }

func (l *TravelLog) Append(rec domain.MovementRecord) {
	rec.PickUps = cloneNames(rec.PickUps)
	rec.DropOffs = cloneNames(rec.DropOffs)
	l.records = append(l.records, rec)
}

func (l *TravelLog) Len() int { return len(l.records) }

// Records returns a copy of the log in append order.
func (l *TravelLog) Records() []domain.MovementRecord {
	out := make([]domain.MovementRecord, len(l.records))
	for i, rec := range l.records {
		rec.PickUps = cloneNames(rec.PickUps)
		rec.DropOffs = cloneNames(rec.DropOffs)
		out[i] = rec
	}
	return out
}

func cloneNames(names []string) []string {
	if names == nil {
		return []string{}
	}
	return slices.Clone(names)
}
