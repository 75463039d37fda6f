package ports

import (
	"context"
	"train-dispatch-service/internal/domain"
)

// Port: a boundary for retrieving the track network from a data source.
type NetworkRepository interface {
	// Return all registered connections in registration order.
	ListConnections(ctx context.Context) ([]domain.Connection, error)
}
