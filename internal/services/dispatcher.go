package services

import (
	"errors"
	"fmt"
	"log"
	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/ports"
)

// Outcome of a single Move call that did not fail.
type MoveOutcome int

const (
	// The train was already at the destination; one record was logged.
	OutcomeSelfLoop MoveOutcome = iota + 1
	// The train travelled to the destination hop by hop.
	OutcomeArrived
	// The destination is unreachable; nothing was logged or mutated.
	OutcomeNoPath
)

func (o MoveOutcome) String() string {
	switch o {
	case OutcomeSelfLoop:
		return "self_loop"
	case OutcomeArrived:
		return "arrived"
	case OutcomeNoPath:
		return "no_path"
	default:
		return "unknown"
	}
}

type MoveResult struct {
	Outcome MoveOutcome
	Hops    int
}

// Dispatcher moves trains across a TrackNetwork and records every hop
// in a TravelLog. It owns no train state; callers pass the train they
// exclusively own into each Move.
type Dispatcher struct {
	Network *TrackNetwork
	Catalog ports.ItemCatalog
	Log     *TravelLog
	// Report receives diagnostics for moves that cannot be routed.
	// Defaults to log.Printf.
	Report func(format string, args ...any)
}

func NewDispatcher(network *TrackNetwork, catalog ports.ItemCatalog, travelLog *TravelLog) *Dispatcher {
	return &Dispatcher{
		Network: network,
		Catalog: catalog,
		Log:     travelLog,
		Report:  log.Printf,
	}
}

// Move sends a train to destination, picking up items on the first hop
// and dropping items off on the last one.
//
// Capacity and missing-connection failures are returned as errors and
// leave the train and the log untouched. An unreachable destination is
// reported through Report and returned as OutcomeNoPath with a nil error.
func (d *Dispatcher) Move(
	train *domain.Train,
	destination domain.Station,
	pickUps []string,
	dropOffs []string,
) (MoveResult, error) {
	if d.Network == nil || d.Log == nil {
		return MoveResult{}, errors.New("move train: dispatcher is missing its network or log")
	}
	if err := train.Validate(); err != nil {
		return MoveResult{}, fmt.Errorf("move train: %w", err)
	}

	if train.Current.Same(destination) {
		d.Log.Append(domain.MovementRecord{
			TimeSeconds: train.AvailableAtSeconds,
			Train:       train.Name,
			From:        train.Current.Name,
			To:          destination.Name,
			PickUps:     pickUps,
			DropOffs:    dropOffs,
		})
		return MoveResult{Outcome: OutcomeSelfLoop, Hops: 1}, nil
	}

	path, ok := ShortestPath(d.Network, train.Current, destination)
	if !ok || len(path) < 2 {
		d.report("move train: no valid path train=%s from=%s to=%s", train.Name, train.Current, destination)
		return MoveResult{Outcome: OutcomeNoPath}, nil
	}

	required := TotalWeight(d.catalog(), pickUps)
	if !train.Fits(required) {
		return MoveResult{}, &CapacityError{Train: train.Name, Capacity: train.Capacity, Required: required}
	}

	// Resolve every hop first so a broken path commits nothing.
	hops := make([]domain.Connection, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		c, ok := d.Network.DirectConnection(path[i-1], path[i])
		if !ok {
			return MoveResult{}, &MissingEdgeError{From: path[i-1].Name, To: path[i].Name}
		}
		hops = append(hops, c)
	}

	last := len(hops) - 1
	for i, c := range hops {
		rec := domain.MovementRecord{
			TimeSeconds: train.AvailableAtSeconds,
			Train:       train.Name,
			From:        path[i].Name,
			To:          path[i+1].Name,
			PickUps:     []string{},
			DropOffs:    []string{},
		}
		if i == 0 {
			rec.PickUps = pickUps
		}
		if i == last {
			rec.DropOffs = dropOffs
		}

		d.Log.Append(rec)
		train.Advance(path[i+1], c.TravelSeconds)
	}

	return MoveResult{Outcome: OutcomeArrived, Hops: len(hops)}, nil
}

func (d *Dispatcher) catalog() ports.ItemCatalog {
	if d.Catalog == nil {
		return emptyCatalog{}
	}
	return d.Catalog
}

func (d *Dispatcher) report(format string, args ...any) {
	if d.Report == nil {
		return
	}
	d.Report(format, args...)
}

type emptyCatalog struct{}

func (emptyCatalog) Lookup(string) (domain.Item, bool) { return domain.Item{}, false }
