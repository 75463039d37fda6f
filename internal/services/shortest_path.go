package services

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
	"train-dispatch-service/internal/domain"
)

type frontierItem struct {
	station  domain.StationName
	distance int
}

// frontier is a min-heap of stations keyed by tentative distance.
// Stations are re-inserted on improvement instead of decreased in place.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].distance < f[j].distance }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// ShortestPath computes the minimum travel-time route from start to target
// using Dijkstra's algorithm over every station known to the network.
//
// The returned path includes both endpoints. When target cannot be reached
// the second result is false and the path is nil. The network is only read.
func ShortestPath(n *TrackNetwork, start, target domain.Station) ([]domain.Station, bool) {
	if start.Same(target) {
		return []domain.Station{start}, true
	}

	dist := make(map[domain.StationName]int, len(n.stations)+1)
	prev := make(map[domain.StationName]domain.StationName, len(n.stations))
	for name := range n.stations {
		dist[name] = math.MaxInt
	}
	dist[start.Key()] = 0

	pq := &frontier{}
	heap.Push(pq, frontierItem{station: start.Key(), distance: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(frontierItem)
		current := item.station

		// Stale entry: a cheaper route to this station was already settled.
		if item.distance != dist[current] {
			continue
		}

		if current == target.Key() {
			break
		}

		for _, c := range n.outbound[current] {
			if c.TravelSeconds < 0 {
				continue
			}

			neighbor := c.Destination.Key()
			alt := item.distance + c.TravelSeconds

			best, ok := dist[neighbor]
			if !ok {
				best = math.MaxInt
			}
			if alt < best {
				dist[neighbor] = alt
				prev[neighbor] = current
				heap.Push(pq, frontierItem{station: neighbor, distance: alt})
			}
		}
	}

	path := []domain.StationName{target.Key()}
	for at := target.Key(); ; {
		p, ok := prev[at]
		if !ok {
			break
		}
		path = append(path, p)
		at = p
	}
	slices.Reverse(path)

	if path[0] != start.Key() {
		return nil, false
	}

	out := make([]domain.Station, 0, len(path))
	for _, name := range path {
		out = append(out, n.resolve(name))
	}
	return out, true
}

// PathSeconds sums the travel time along consecutive hops of a path.
func PathSeconds(n *TrackNetwork, path []domain.Station) (int, error) {
	total := 0
	for i := 1; i < len(path); i++ {
		c, ok := n.DirectConnection(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("path seconds: %w", &MissingEdgeError{From: path[i-1].Name, To: path[i].Name})
		}
		total += c.TravelSeconds
	}
	return total, nil
}

func (n *TrackNetwork) resolve(name domain.StationName) domain.Station {
	if s, ok := n.stations[name]; ok {
		return s
	}
	return domain.Station{Name: name}
}
