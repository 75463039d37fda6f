package ports

import (
	"context"
	"train-dispatch-service/internal/domain"

	"github.com/google/uuid"
)

// Destination for the records of a finished simulation run.
type TravelLogSink interface {
	// Store the ordered records of one run.
	SaveRun(ctx context.Context, runID uuid.UUID, records []domain.MovementRecord) error
}
