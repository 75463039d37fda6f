package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/platform/obs"
	"train-dispatch-service/internal/ports"

	"github.com/google/uuid"
)

// One scheduled move of a plan.
type PlanStep struct {
	Train       string
	Destination string
	PickUps     []string
	DropOffs    []string
}

type SimulationRequest struct {
	Trains []*domain.Train
	Plan   []PlanStep
}

// Result of one step that was attempted.
type StepResult struct {
	Step   PlanStep
	Result MoveResult
}

type SimulationResult struct {
	RunID   uuid.UUID
	Records []domain.MovementRecord
	Trains  []domain.Train
	Steps   []StepResult
	// Err is the failure that aborted the remaining plan, if any.
	Err error
	// AbortedAt is the index of the failing step, or -1.
	AbortedAt int
}

// RunSimulation executes a plan of moves against a shared network and catalog.
//
// Each run owns a fresh TravelLog and copies of the requested trains, so
// concurrent runs never share mutable state. The first failing step aborts
// the rest of the plan; the records logged so far are kept in the result.
// Validation problems with the request itself are returned as an error.
func RunSimulation(
	ctx context.Context,
	req SimulationRequest,
	network *TrackNetwork,
	catalog ports.ItemCatalog,
) (*SimulationResult, error) {
	if network == nil {
		return nil, errors.New("run simulation: network must be non-nil")
	}

	runID := uuid.New()
	ctx = obs.WithRunID(ctx, runID.String())

	trains := make(map[string]*domain.Train, len(req.Trains))
	order := make([]string, 0, len(req.Trains))
	for _, t := range req.Trains {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("run simulation: %w", err)
		}
		if _, dup := trains[t.Name]; dup {
			return nil, fmt.Errorf("run simulation: duplicate train %q", t.Name)
		}
		cp := *t
		trains[t.Name] = &cp
		order = append(order, t.Name)
	}

	stations := make([]domain.Station, len(req.Plan))
	for i, step := range req.Plan {
		if _, ok := trains[step.Train]; !ok {
			return nil, fmt.Errorf("run simulation: step #%d: %w %q", i+1, ErrUnknownTrain, step.Train)
		}
		dest := domain.NewStation(step.Destination)
		if dest.Name == "" {
			return nil, fmt.Errorf("run simulation: step #%d: destination must be non-empty", i+1)
		}
		stations[i] = dest
	}

	travelLog := NewTravelLog()
	dispatcher := NewDispatcher(network, catalog, travelLog)
	dispatcher.Report = func(format string, args ...any) {
		log.Printf("run_id=%s "+format, append([]any{runID}, args...)...)
	}

	res := &SimulationResult{RunID: runID, AbortedAt: -1}
	for i, step := range req.Plan {
		if err := ctx.Err(); err != nil {
			res.Err = err
			res.AbortedAt = i
			break
		}

		mv, err := dispatcher.Move(trains[step.Train], stations[i], step.PickUps, step.DropOffs)
		if err != nil {
			log.Printf("run_id=%s step=%d train=%s aborting plan: %v", runID, i+1, step.Train, err)
			res.Err = fmt.Errorf("step #%d (%s -> %s): %w", i+1, step.Train, strings.TrimSpace(step.Destination), err)
			res.AbortedAt = i
			break
		}
		res.Steps = append(res.Steps, StepResult{Step: step, Result: mv})
	}

	res.Records = travelLog.Records()
	res.Trains = make([]domain.Train, 0, len(order))
	for _, name := range order {
		res.Trains = append(res.Trains, *trains[name])
	}

	log.Printf("run_id=%s steps=%d records=%d aborted=%t", runID, len(res.Steps), len(res.Records), res.Err != nil)
	return res, nil
}

// Persist the records of a finished run to every sink, stopping at the first failure.
func PublishRun(ctx context.Context, res *SimulationResult, sinks ...ports.TravelLogSink) (err error) {
	if res == nil {
		return errors.New("publish run: result must be non-nil")
	}
	defer obs.Time(obs.WithRunID(ctx, res.RunID.String()), "travellog.Publish")(&err)

	for _, s := range sinks {
		if s == nil {
			continue
		}
		if err := s.SaveRun(ctx, res.RunID, res.Records); err != nil {
			return fmt.Errorf("publish run %s: %w", res.RunID, err)
		}
	}
	return nil
}
