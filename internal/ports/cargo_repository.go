package ports

import (
	"context"
	"train-dispatch-service/internal/domain"
)

// Port: a boundary for retrieving the cargo catalog from a data source.
type CargoRepository interface {
	// Retrieve every item that may be picked up during a simulation.
	ListItems(ctx context.Context) ([]domain.Item, error)
}
