package services

import (
	"fmt"
	"slices"
	"strings"
	"train-dispatch-service/internal/domain"
)

// Policy deciding the travel time of the synthesized reverse connection.
type ReverseWeightPolicy string

const (
	// Reverse connections carry the same travel time as the forward one.
	ReverseMirror ReverseWeightPolicy = "mirror"
	// Reverse connections carry forward seconds / 60 (integer division).
	// Kept for reproducing logs produced by the legacy planner.
	ReverseLegacyMinutes ReverseWeightPolicy = "legacy-minutes"
)

func ParseReverseWeightPolicy(s string) (ReverseWeightPolicy, error) {
	switch p := ReverseWeightPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", ReverseMirror:
		return ReverseMirror, nil
	case ReverseLegacyMinutes:
		return p, nil
	default:
		return "", fmt.Errorf("unknown reverse weight policy %q (want %q or %q)", s, ReverseMirror, ReverseLegacyMinutes)
	}
}

func (p ReverseWeightPolicy) reverseSeconds(forward int) int {
	if p == ReverseLegacyMinutes {
		return forward / 60
	}
	return forward
}

// TrackNetwork is the adjacency store of the rail network.
//
// Every registered connection A->B is stored together with a reverse
// connection B->A of the same name, so the network can be travelled in
// both directions. Duplicate registrations are kept as duplicate entries.
//
// A TrackNetwork is not safe for concurrent registration; once setup is
// finished it may be read from multiple goroutines.
type TrackNetwork struct {
	policy   ReverseWeightPolicy
	outbound map[domain.StationName][]domain.Connection
	stations map[domain.StationName]domain.Station
}

func NewTrackNetwork(policy ReverseWeightPolicy) *TrackNetwork {
	if policy == "" {
		policy = ReverseMirror
	}
	return &TrackNetwork{
		policy:   policy,
		outbound: make(map[domain.StationName][]domain.Connection),
		stations: make(map[domain.StationName]domain.Station),
	}
}

func (n *TrackNetwork) Policy() ReverseWeightPolicy { return n.policy }

// Register a connection and its synthesized reverse.
func (n *TrackNetwork) Register(c domain.Connection) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("register connection: %w", err)
	}

	src, dst := c.Source.Key(), c.Destination.Key()
	n.stations[src] = c.Source
	n.stations[dst] = c.Destination

	n.outbound[src] = append(n.outbound[src], c)
	n.outbound[dst] = append(n.outbound[dst], c.Reverse(n.policy.reverseSeconds(c.TravelSeconds)))

	return nil
}

// Register many connections in order, stopping at the first invalid one.
func (n *TrackNetwork) RegisterAll(conns []domain.Connection) error {
	for i, c := range conns {
		if err := n.Register(c); err != nil {
			return fmt.Errorf("register connection #%d: %w", i+1, err)
		}
	}
	return nil
}

// Neighbors returns the outbound connections of a station.
// Unknown stations have no neighbors.
func (n *TrackNetwork) Neighbors(s domain.Station) []domain.Connection {
	out := n.outbound[s.Key()]
	if len(out) == 0 {
		return []domain.Connection{}
	}
	return slices.Clone(out)
}

// DirectConnection returns the first outbound connection of from that ends at to.
func (n *TrackNetwork) DirectConnection(from, to domain.Station) (domain.Connection, bool) {
	for _, c := range n.outbound[from.Key()] {
		if c.Destination.Same(to) {
			return c, true
		}
	}
	return domain.Connection{}, false
}

// Knows reports whether the station appears in any registered connection.
func (n *TrackNetwork) Knows(s domain.Station) bool {
	_, ok := n.stations[s.Key()]
	return ok
}

// Station resolves a station by name.
func (n *TrackNetwork) Station(name string) (domain.Station, bool) {
	s, ok := n.stations[domain.NewStation(name).Key()]
	return s, ok
}

// Stations returns every known station sorted by name.
func (n *TrackNetwork) Stations() []domain.Station {
	out := make([]domain.Station, 0, len(n.stations))
	for _, s := range n.stations {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b domain.Station) int {
		return strings.Compare(string(a.Name), string(b.Name))
	})
	return out
}
