package domain

import "fmt"

// Represents one logged movement of a train.
// TimeSeconds is the train's availability time at the start of the hop.
// PickUps are only set on the first hop of a move and DropOffs only on
// the last one. Records are immutable once appended to a travel log.
type MovementRecord struct {
	TimeSeconds int
	Train       string
	From        StationName
	To          StationName
	PickUps     []string
	DropOffs    []string
}

// SelfLoop reports whether the record was produced without travelling.
func (m MovementRecord) SelfLoop() bool { return m.From == m.To }

func (m MovementRecord) String() string {
	return fmt.Sprintf(
		"W=%ds, T=%s, N1=%s, P1=%v, N2=%s, P2=%v",
		m.TimeSeconds, m.Train, m.From, m.PickUps, m.To, m.DropOffs,
	)
}
