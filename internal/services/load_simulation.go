package services

import (
	"context"
	"fmt"
	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/platform/obs"
	"train-dispatch-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// Build a TrackNetwork from every connection the repository holds.
func LoadNetwork(
	ctx context.Context,
	repo ports.NetworkRepository,
	policy ReverseWeightPolicy,
) (_ *TrackNetwork, err error) {
	defer obs.Time(ctx, "network.Load")(&err)

	conns, err := repo.ListConnections(ctx)
	if err != nil {
		return nil, fmt.Errorf("load network: list connections: %w", err)
	}

	network := NewTrackNetwork(policy)
	if err := network.RegisterAll(conns); err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}
	return network, nil
}

// Build a CargoLedger from the repository's catalog.
func LoadCatalog(ctx context.Context, repo ports.CargoRepository) (_ *CargoLedger, err error) {
	defer obs.Time(ctx, "catalog.Load")(&err)

	items, err := repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: list items: %w", err)
	}

	ledger, err := NewCargoLedger(items)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return ledger, nil
}

// LoadSimulation loads the network and the cargo catalog concurrently.
// Both are read-only afterwards and may be shared between runs.
func LoadSimulation(
	ctx context.Context,
	networkRepo ports.NetworkRepository,
	cargoRepo ports.CargoRepository,
	policy ReverseWeightPolicy,
) (*TrackNetwork, *CargoLedger, error) {
	var (
		network *TrackNetwork
		ledger  *CargoLedger
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		network, err = LoadNetwork(gctx, networkRepo, policy)
		return err
	})
	g.Go(func() error {
		var err error
		ledger, err = LoadCatalog(gctx, cargoRepo)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("load simulation: %w", err)
	}
	return network, ledger, nil
}

// In-memory repositories used when a scenario carries its own network.
type StaticNetwork []domain.Connection

func (s StaticNetwork) ListConnections(context.Context) ([]domain.Connection, error) {
	return []domain.Connection(s), nil
}

type StaticCargo []domain.Item

func (s StaticCargo) ListItems(context.Context) ([]domain.Item, error) {
	return []domain.Item(s), nil
}
