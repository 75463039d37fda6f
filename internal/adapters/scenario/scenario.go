package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/services"
)

type ConnectionSeed struct {
	Name          string `json:"name"`
	Source        string `json:"source"`
	Destination   string `json:"destination"`
	TravelSeconds int    `json:"travel_seconds"`
	// Optional; when set it takes precedence over TravelSeconds.
	TravelMinutes *int `json:"travel_minutes,omitempty"`
}

type ItemSeed struct {
	Name        string `json:"name"`
	Weight      int    `json:"weight"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type TrainSeed struct {
	Name               string `json:"name"`
	Capacity           int    `json:"capacity"`
	Current            string `json:"current"`
	AvailableAtSeconds int    `json:"available_at_seconds"`
}

type StepSeed struct {
	Train       string   `json:"train"`
	Destination string   `json:"destination"`
	PickUps     []string `json:"pick_ups"`
	DropOffs    []string `json:"drop_offs"`
}

// Scenario is the JSON description of a network, its cargo catalog and
// an optional plan of moves.
type Scenario struct {
	Connections []ConnectionSeed `json:"connections"`
	Items       []ItemSeed       `json:"items"`
	Trains      []TrainSeed      `json:"trains"`
	Plan        []StepSeed       `json:"plan"`
}

// Read and validate a scenario file.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: open %q: %w", path, err)
	}
	defer f.Close()

	sc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load scenario %q: %w", path, err)
	}
	return sc, nil
}

// Decode a single scenario object, rejecting unknown fields.
func Decode(r io.Reader) (*Scenario, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("parse json: must contain only one JSON object")
	}

	return &sc, nil
}

func (s *Scenario) DomainConnections() ([]domain.Connection, error) {
	out := make([]domain.Connection, 0, len(s.Connections))
	for i, c := range s.Connections {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("connection at index %d: %w", i+1, domain.ErrEmptyName)
		}

		src, dst := domain.NewStation(c.Source), domain.NewStation(c.Destination)
		conn := domain.NewConnection(name, src, dst, c.TravelSeconds)
		if c.TravelMinutes != nil {
			conn = domain.NewConnectionMinutes(name, src, dst, *c.TravelMinutes)
		}

		if err := conn.Validate(); err != nil {
			return nil, fmt.Errorf("connection at index %d: %w", i+1, err)
		}
		out = append(out, conn)
	}
	return out, nil
}

func (s *Scenario) DomainItems() ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(s.Items))
	for i, it := range s.Items {
		item := domain.Item{
			Name:        strings.TrimSpace(it.Name),
			Weight:      it.Weight,
			Source:      domain.NewStation(it.Source),
			Destination: domain.NewStation(it.Destination),
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item at index %d: %w", i+1, err)
		}
		out = append(out, item)
	}
	return out, nil
}

// Request converts the trains and plan into a simulation request.
func (s *Scenario) Request() services.SimulationRequest {
	return BuildRequest(s.Trains, s.Plan)
}

func BuildRequest(trains []TrainSeed, plan []StepSeed) services.SimulationRequest {
	req := services.SimulationRequest{
		Trains: make([]*domain.Train, 0, len(trains)),
		Plan:   make([]services.PlanStep, 0, len(plan)),
	}
	for _, t := range trains {
		train := domain.NewTrain(strings.TrimSpace(t.Name), t.Capacity, domain.NewStation(t.Current))
		train.AvailableAtSeconds = t.AvailableAtSeconds
		req.Trains = append(req.Trains, train)
	}
	for _, st := range plan {
		req.Plan = append(req.Plan, services.PlanStep{
			Train:       strings.TrimSpace(st.Train),
			Destination: st.Destination,
			PickUps:     st.PickUps,
			DropOffs:    st.DropOffs,
		})
	}
	return req
}
