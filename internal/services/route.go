package services

import (
	"errors"
	"fmt"
	"train-dispatch-service/internal/domain"
)

// Route is a resolved shortest path between two named stations.
type Route struct {
	From          domain.Station
	To            domain.Station
	Found         bool
	Stations      []domain.Station
	TravelSeconds int
}

// FindRoute looks up both stations by name and computes the shortest path
// between them. Unknown stations are rejected with ErrUnknownStation; an
// unreachable target yields a Route with Found set to false.
func FindRoute(n *TrackNetwork, from, to string) (Route, error) {
	if n == nil {
		return Route{}, errors.New("find route: network must be non-nil")
	}

	src, ok := n.Station(from)
	if !ok {
		return Route{}, fmt.Errorf("find route: %w %q", ErrUnknownStation, from)
	}
	dst, ok := n.Station(to)
	if !ok {
		return Route{}, fmt.Errorf("find route: %w %q", ErrUnknownStation, to)
	}

	route := Route{From: src, To: dst}
	path, found := ShortestPath(n, src, dst)
	if !found {
		return route, nil
	}

	secs, err := PathSeconds(n, path)
	if err != nil {
		return Route{}, fmt.Errorf("find route: %w", err)
	}

	route.Found = true
	route.Stations = path
	route.TravelSeconds = secs
	return route, nil
}
