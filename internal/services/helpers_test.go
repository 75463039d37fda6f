package services

import (
	"slices"
	"testing"
	"train-dispatch-service/internal/domain"
)

var (
	stA = domain.NewStation("A")
	stB = domain.NewStation("B")
	stC = domain.NewStation("C")
	stZ = domain.NewStation("Z")
)

// abcNetwork builds A -30s- B -10s- C.
func abcNetwork(t *testing.T, policy ReverseWeightPolicy) *TrackNetwork {
	t.Helper()

	n := NewTrackNetwork(policy)
	conns := []domain.Connection{
		domain.NewConnection("E1", stA, stB, 30),
		domain.NewConnection("E2", stB, stC, 10),
	}
	if err := n.RegisterAll(conns); err != nil {
		t.Fatalf("register: %v", err)
	}
	return n
}

func testLedger(t *testing.T) *CargoLedger {
	t.Helper()

	l, err := NewCargoLedger([]domain.Item{
		{Name: "K1", Weight: 5, Source: stA, Destination: stC},
		{Name: "K2", Weight: 2, Source: stB, Destination: stA},
	})
	if err != nil {
		t.Fatalf("ledger: %v", err)
	}
	return l
}

func names(path []domain.Station) []domain.StationName {
	out := make([]domain.StationName, 0, len(path))
	for _, s := range path {
		out = append(out, s.Name)
	}
	return out
}

func equalNames(a []domain.StationName, b ...domain.StationName) bool {
	return slices.Equal(a, b)
}
