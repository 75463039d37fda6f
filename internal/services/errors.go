package services

import (
	"errors"
	"fmt"
	"train-dispatch-service/internal/domain"
)

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrMissingEdge      = errors.New("missing direct connection")
	ErrUnknownTrain     = errors.New("unknown train")
	ErrUnknownStation   = errors.New("unknown station")
)

// CapacityError reports a pick-up whose total weight does not fit the train.
type CapacityError struct {
	Train    string
	Capacity int
	Required int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("train %s exceeded its capacity: max=%d needed=%d", e.Train, e.Capacity, e.Required)
}

func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }

// MissingEdgeError reports a path hop without a matching track connection.
type MissingEdgeError struct {
	From domain.StationName
	To   domain.StationName
}

func (e *MissingEdgeError) Error() string {
	return fmt.Sprintf("no direct connection between %s and %s", e.From, e.To)
}

func (e *MissingEdgeError) Unwrap() error { return ErrMissingEdge }
