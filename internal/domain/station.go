package domain

import (
	"errors"
	"strings"
)

// Key type for station identity. Two stations are the same station
// when their names are equal, regardless of any other field.
type StationName string

// Represents a stop on the track network.
// A Station is identified by its name only and is immutable once created.
type Station struct {
	Name StationName
}

func NewStation(name string) Station {
	return Station{Name: StationName(strings.TrimSpace(name))}
}

// Key returns the identity used for map lookups and comparisons.
func (s Station) Key() StationName { return s.Name }

// Same reports whether both values refer to the same station.
func (s Station) Same(other Station) bool { return s.Name == other.Name }

func (s Station) String() string { return string(s.Name) }

var ErrEmptyName = errors.New("name must not be empty")
