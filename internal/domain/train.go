package domain

import "fmt"

// Capacity-limited vehicle moving across the track network.
//
// Current and AvailableAtSeconds are the only mutable fields; they are
// advanced once per traversed hop by the dispatcher. A Train is owned by
// a single caller and must not be moved from more than one goroutine.
type Train struct {
	Name               string
	Capacity           int
	Current            Station
	AvailableAtSeconds int
}

func NewTrain(name string, capacity int, current Station) *Train {
	return &Train{
		Name:     name,
		Capacity: capacity,
		Current:  current,
	}
}

func (t *Train) Validate() error {
	if t == nil {
		return fmt.Errorf("train: must be non-nil")
	}
	if t.Name == "" {
		return fmt.Errorf("train: %w", ErrEmptyName)
	}
	if t.Capacity < 0 {
		return fmt.Errorf("train %q: capacity must be >= 0 (got %d)", t.Name, t.Capacity)
	}
	if t.AvailableAtSeconds < 0 {
		return fmt.Errorf("train %q: available time must be >= 0 (got %d)", t.Name, t.AvailableAtSeconds)
	}
	if t.Current.Name == "" {
		return fmt.Errorf("train %q: current station must be set", t.Name)
	}
	return nil
}

// Advance the train across one hop of the given travel time.
func (t *Train) Advance(to Station, travelSeconds int) {
	t.AvailableAtSeconds += travelSeconds
	t.Current = to
}

// Fits reports whether a load of the given weight stays within capacity.
func (t *Train) Fits(weight int) bool {
	return weight <= t.Capacity
}
