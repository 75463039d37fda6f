package domain

import "fmt"

// Represents a single shippable unit of cargo.
// Items are looked up by name from a fixed catalog; Weight counts
// against a train's capacity when the item is picked up.
type Item struct {
	Name        string
	Weight      int
	Source      Station
	Destination Station
}

func (i Item) Validate() error {
	if i.Name == "" {
		return fmt.Errorf("item: %w", ErrEmptyName)
	}
	if i.Weight < 0 {
		return fmt.Errorf("item %q: weight must be >= 0 (got %d)", i.Name, i.Weight)
	}
	return nil
}
