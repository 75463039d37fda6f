package services

import (
	"context"
	"errors"
	"testing"
	"train-dispatch-service/internal/domain"
)

type failingNetwork struct{ err error }

func (f failingNetwork) ListConnections(context.Context) ([]domain.Connection, error) {
	return nil, f.err
}

func TestLoadSimulation(t *testing.T) {
	conns := StaticNetwork{
		domain.NewConnection("E1", stA, stB, 30),
		domain.NewConnection("E2", stB, stC, 10),
	}
	cargo := StaticCargo{{Name: "K1", Weight: 5, Source: stA, Destination: stC}}

	n, ledger, err := LoadSimulation(context.Background(), conns, cargo, ReverseMirror)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(n.Stations()) != 3 {
		t.Fatalf("stations = %d, want 3", len(n.Stations()))
	}
	if it, ok := ledger.Lookup("K1"); !ok || it.Weight != 5 {
		t.Fatalf("Lookup(K1) = %+v, %t", it, ok)
	}
	if _, ok := ledger.Lookup("K9"); ok {
		t.Fatalf("K9 should be unknown")
	}
}

func TestLoadSimulationPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	_, _, err := LoadSimulation(context.Background(), failingNetwork{err: boom}, StaticCargo{}, ReverseMirror)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	bad := StaticNetwork{domain.NewConnection("bad", stA, stB, -3)}
	if _, _, err := LoadSimulation(context.Background(), bad, StaticCargo{}, ReverseMirror); err == nil {
		t.Fatalf("expected error for negative travel time")
	}

	badCargo := StaticCargo{{Name: "", Weight: 1}}
	if _, _, err := LoadSimulation(context.Background(), StaticNetwork{}, badCargo, ReverseMirror); err == nil {
		t.Fatalf("expected error for unnamed item")
	}
}

func TestTotalWeight(t *testing.T) {
	l := testLedger(t)

	if got := TotalWeight(l, []string{"K1", "K2", "K1", "nope"}); got != 12 {
		t.Fatalf("TotalWeight = %d, want 12", got)
	}

	var nilLedger *CargoLedger
	if got := TotalWeight(nilLedger, []string{"K1"}); got != 0 {
		t.Fatalf("TotalWeight on nil ledger = %d, want 0", got)
	}
}
