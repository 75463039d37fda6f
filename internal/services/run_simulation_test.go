package services

import (
	"context"
	"errors"
	"testing"
	"train-dispatch-service/internal/domain"

	"github.com/google/uuid"
)

// demoPlan mirrors the reference scenario: Q1 starts at B, fetches K1 at A
// and delivers it to C.
func demoPlan(capacity int) SimulationRequest {
	return SimulationRequest{
		Trains: []*domain.Train{domain.NewTrain("Q1", capacity, stB)},
		Plan: []PlanStep{
			{Train: "Q1", Destination: "A"},
			{Train: "Q1", Destination: "B", PickUps: []string{"K1"}},
			{Train: "Q1", Destination: "C", DropOffs: []string{"K1"}},
		},
	}
}

func TestRunSimulationDemoScenario(t *testing.T) {
	n := abcNetwork(t, ReverseMirror)
	req := demoPlan(6)

	res, err := RunSimulation(context.Background(), req, n, testLedger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Err != nil || res.AbortedAt != -1 {
		t.Fatalf("run aborted: %v at %d", res.Err, res.AbortedAt)
	}
	if res.RunID == uuid.Nil {
		t.Fatalf("run id must be set")
	}

	want := []string{
		"W=0s, T=Q1, N1=B, P1=[], N2=A, P2=[]",
		"W=30s, T=Q1, N1=A, P1=[K1], N2=B, P2=[]",
		"W=60s, T=Q1, N1=B, P1=[], N2=C, P2=[K1]",
	}
	if len(res.Records) != len(want) {
		t.Fatalf("records = %d, want %d", len(res.Records), len(want))
	}
	for i, w := range want {
		if got := res.Records[i].String(); got != w {
			t.Errorf("record %d = %q, want %q", i, got, w)
		}
	}

	if len(res.Trains) != 1 || res.Trains[0].AvailableAtSeconds != 70 || res.Trains[0].Current.Name != "C" {
		t.Fatalf("final trains = %+v, want Q1 at C, 70s", res.Trains)
	}

	// The caller's train is copied, never mutated.
	if req.Trains[0].AvailableAtSeconds != 0 || req.Trains[0].Current.Name != "B" {
		t.Fatalf("request train was mutated: %+v", req.Trains[0])
	}
}

func TestRunSimulationAbortsOnCapacity(t *testing.T) {
	n := abcNetwork(t, ReverseMirror)

	res, err := RunSimulation(context.Background(), demoPlan(3), n, testLedger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(res.Err, ErrCapacityExceeded) {
		t.Fatalf("res.Err = %v, want ErrCapacityExceeded", res.Err)
	}
	if res.AbortedAt != 1 {
		t.Fatalf("aborted at = %d, want 1", res.AbortedAt)
	}
	if len(res.Records) != 1 || len(res.Steps) != 1 {
		t.Fatalf("records/steps = %d/%d, want 1/1", len(res.Records), len(res.Steps))
	}
}

func TestRunSimulationRejectsBadRequests(t *testing.T) {
	n := abcNetwork(t, ReverseMirror)

	tests := []struct {
		name string
		req  SimulationRequest
		want error
	}{
		{
			name: "unknown train",
			req: SimulationRequest{
				Trains: []*domain.Train{domain.NewTrain("Q1", 6, stA)},
				Plan:   []PlanStep{{Train: "Q9", Destination: "B"}},
			},
			want: ErrUnknownTrain,
		},
		{
			name: "duplicate train",
			req: SimulationRequest{
				Trains: []*domain.Train{domain.NewTrain("Q1", 6, stA), domain.NewTrain("Q1", 6, stB)},
			},
		},
		{
			name: "empty destination",
			req: SimulationRequest{
				Trains: []*domain.Train{domain.NewTrain("Q1", 6, stA)},
				Plan:   []PlanStep{{Train: "Q1", Destination: " "}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunSimulation(context.Background(), tt.req, n, testLedger(t))
			if err == nil {
				t.Fatalf("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunSimulationNoPathContinues(t *testing.T) {
	n := abcNetwork(t, ReverseMirror)
	req := SimulationRequest{
		Trains: []*domain.Train{domain.NewTrain("Q1", 6, stA)},
		Plan: []PlanStep{
			{Train: "Q1", Destination: "Z"},
			{Train: "Q1", Destination: "B"},
		},
	}

	res, err := RunSimulation(context.Background(), req, n, testLedger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Err != nil {
		t.Fatalf("unexpected abort: %v", res.Err)
	}
	if res.Steps[0].Result.Outcome != OutcomeNoPath || res.Steps[1].Result.Outcome != OutcomeArrived {
		t.Fatalf("outcomes = %s, %s", res.Steps[0].Result.Outcome, res.Steps[1].Result.Outcome)
	}
	if len(res.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(res.Records))
	}
}

type recordingSink struct {
	runs map[uuid.UUID][]domain.MovementRecord
	err  error
}

func (s *recordingSink) SaveRun(_ context.Context, runID uuid.UUID, records []domain.MovementRecord) error {
	if s.err != nil {
		return s.err
	}
	if s.runs == nil {
		s.runs = map[uuid.UUID][]domain.MovementRecord{}
	}
	s.runs[runID] = records
	return nil
}

func TestPublishRun(t *testing.T) {
	n := abcNetwork(t, ReverseMirror)
	res, err := RunSimulation(context.Background(), demoPlan(6), n, testLedger(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sink := &recordingSink{}
	if err := PublishRun(context.Background(), res, sink, nil); err != nil {
		t.Fatalf("PublishRun: %v", err)
	}
	if got := len(sink.runs[res.RunID]); got != 3 {
		t.Fatalf("published records = %d, want 3", got)
	}

	boom := errors.New("boom")
	if err := PublishRun(context.Background(), res, &recordingSink{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}
