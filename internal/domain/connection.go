package domain

import "fmt"

// Represents a directed, weighted track segment between two stations.
// Connections are immutable; TravelSeconds is the time a train needs
// to go from Source to Destination.
type Connection struct {
	Name          string
	Source        Station
	Destination   Station
	TravelSeconds int
}

func NewConnection(name string, source, destination Station, travelSeconds int) Connection {
	return Connection{
		Name:          name,
		Source:        source,
		Destination:   destination,
		TravelSeconds: travelSeconds,
	}
}

// Build a connection from a journey time expressed in minutes.
func NewConnectionMinutes(name string, source, destination Station, minutes int) Connection {
	return NewConnection(name, source, destination, minutes*60)
}

// Reverse returns the same track travelled in the opposite direction
// with the given travel time.
func (c Connection) Reverse(travelSeconds int) Connection {
	return Connection{
		Name:          c.Name,
		Source:        c.Destination,
		Destination:   c.Source,
		TravelSeconds: travelSeconds,
	}
}

func (c Connection) Validate() error {
	if c.Source.Name == "" || c.Destination.Name == "" {
		return fmt.Errorf("connection %q: source and destination must be non-empty", c.Name)
	}
	if c.TravelSeconds < 0 {
		return fmt.Errorf("connection %q: travel seconds must be >= 0 (got %d)", c.Name, c.TravelSeconds)
	}
	return nil
}
