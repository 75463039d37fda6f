package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
	"train-dispatch-service/internal/domain"

	"github.com/RyanCarrier/dijkstra"
)

func TestShortestPathTwoStationsAway(t *testing.T) {
	n := abcNetwork(t, ReverseMirror)

	path, ok := ShortestPath(n, stA, stC)
	if !ok {
		t.Fatalf("expected a path from A to C")
	}
	if got := names(path); !equalNames(got, "A", "B", "C") {
		t.Fatalf("path = %v, want [A B C]", got)
	}

	secs, err := PathSeconds(n, path)
	if err != nil {
		t.Fatalf("PathSeconds: %v", err)
	}
	if secs != 40 {
		t.Fatalf("path seconds = %d, want 40", secs)
	}
}

func TestShortestPathSameStation(t *testing.T) {
	n := abcNetwork(t, ReverseMirror)

	for _, s := range []domain.Station{stA, stZ} {
		path, ok := ShortestPath(n, s, s)
		if !ok || len(path) != 1 || !path[0].Same(s) {
			t.Fatalf("ShortestPath(%s, %s) = %v, %t; want [%s]", s, s, path, ok, s)
		}
	}
}

func TestShortestPathDisconnected(t *testing.T) {
	n := abcNetwork(t, ReverseMirror)
	if err := n.Register(domain.NewConnection("E7", stZ, domain.NewStation("Y"), 5)); err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name          string
		start, target domain.Station
	}{
		{name: "across components", start: stZ, target: stC},
		{name: "unknown start", start: domain.NewStation("Q"), target: stA},
		{name: "unknown target", start: stA, target: domain.NewStation("Q")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := ShortestPath(n, tt.start, tt.target)
			if ok || path != nil {
				t.Fatalf("ShortestPath = %v, %t; want absent", path, ok)
			}
		})
	}
}

func TestShortestPathPrefersCheaperDetour(t *testing.T) {
	// A-D is direct but slow; A-B-C-D is cheaper and discovered later.
	n := NewTrackNetwork(ReverseMirror)
	d := domain.NewStation("D")
	conns := []domain.Connection{
		domain.NewConnection("slow", stA, d, 100),
		domain.NewConnection("e1", stA, stB, 10),
		domain.NewConnection("e2", stB, stC, 10),
		domain.NewConnection("e3", stC, d, 10),
	}
	if err := n.RegisterAll(conns); err != nil {
		t.Fatalf("register: %v", err)
	}

	path, ok := ShortestPath(n, stA, d)
	if !ok {
		t.Fatalf("expected a path")
	}
	if got := names(path); !equalNames(got, "A", "B", "C", "D") {
		t.Fatalf("path = %v, want [A B C D]", got)
	}
}

func TestShortestPathDoesNotMutateNetwork(t *testing.T) {
	n := abcNetwork(t, ReverseMirror)
	before := map[domain.StationName][]domain.Connection{}
	for _, s := range n.Stations() {
		before[s.Name] = n.Neighbors(s)
	}

	first, _ := ShortestPath(n, stC, stA)
	second, _ := ShortestPath(n, stC, stA)

	if !slices.Equal(names(first), names(second)) {
		t.Fatalf("repeated queries differ: %v vs %v", names(first), names(second))
	}
	for _, s := range n.Stations() {
		if !slices.Equal(before[s.Name], n.Neighbors(s)) {
			t.Fatalf("neighbors of %s changed after queries", s)
		}
	}
}

func TestShortestPathMatchesReferenceDijkstra(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 50; round++ {
		const size = 8

		stations := make([]domain.Station, size)
		for i := range stations {
			stations[i] = domain.NewStation(fmt.Sprintf("S%d", i))
		}

		n := NewTrackNetwork(ReverseMirror)
		ref := dijkstra.NewGraph()
		for i := 0; i < size; i++ {
			ref.AddVertex(i)
		}

		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				if rng.IntN(3) != 0 {
					continue
				}
				w := rng.IntN(50)
				if err := n.Register(domain.NewConnection(fmt.Sprintf("E%d-%d", i, j), stations[i], stations[j], w)); err != nil {
					t.Fatalf("register: %v", err)
				}
				if err := ref.AddArc(i, j, int64(w)); err != nil {
					t.Fatalf("reference AddArc: %v", err)
				}
				if err := ref.AddArc(j, i, int64(w)); err != nil {
					t.Fatalf("reference AddArc: %v", err)
				}
			}
		}

		src, dst := rng.IntN(size), rng.IntN(size)
		if src == dst {
			continue
		}

		path, ok := ShortestPath(n, stations[src], stations[dst])
		best, refErr := ref.Shortest(src, dst)

		if refErr != nil {
			if ok {
				t.Fatalf("round %d: found path %v but reference reports none", round, names(path))
			}
			continue
		}
		if !ok {
			t.Fatalf("round %d: no path from %d to %d, reference distance %d", round, src, dst, best.Distance)
		}

		got, err := PathSeconds(n, path)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if int64(got) != best.Distance {
			t.Fatalf("round %d: path %v costs %d, want %d", round, names(path), got, best.Distance)
		}
	}
}

func TestPathSecondsMissingEdge(t *testing.T) {
	n := abcNetwork(t, ReverseMirror)

	_, err := PathSeconds(n, []domain.Station{stA, stC})
	if !errors.Is(err, ErrMissingEdge) {
		t.Fatalf("err = %v, want ErrMissingEdge", err)
	}

	var me *MissingEdgeError
	if !errors.As(err, &me) || me.From != "A" || me.To != "C" {
		t.Fatalf("missing edge error = %+v, want A -> C", me)
	}
}
