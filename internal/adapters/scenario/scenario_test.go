package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const demo = `{
  "connections": [
    {"name": "E1", "source": "A", "destination": "B", "travel_seconds": 30},
    {"name": "E2", "source": "B", "destination": "C", "travel_minutes": 2}
  ],
  "items": [{"name": "K1", "weight": 5, "source": "A", "destination": "C"}],
  "trains": [{"name": "Q1", "capacity": 6, "current": "B"}],
  "plan": [
    {"train": "Q1", "destination": "A"},
    {"train": "Q1", "destination": "B", "pick_ups": ["K1"]}
  ]
}`

func TestDecodeScenario(t *testing.T) {
	sc, err := Decode(strings.NewReader(demo))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	conns, err := sc.DomainConnections()
	if err != nil {
		t.Fatalf("DomainConnections: %v", err)
	}
	if len(conns) != 2 || conns[1].TravelSeconds != 120 {
		t.Fatalf("connections = %+v, want E2 at 120s", conns)
	}

	items, err := sc.DomainItems()
	if err != nil {
		t.Fatalf("DomainItems: %v", err)
	}
	if len(items) != 1 || items[0].Destination.Name != "C" {
		t.Fatalf("items = %+v", items)
	}

	req := sc.Request()
	if len(req.Trains) != 1 || req.Trains[0].Current.Name != "B" || req.Trains[0].Capacity != 6 {
		t.Fatalf("trains = %+v", req.Trains)
	}
	if len(req.Plan) != 2 || req.Plan[1].PickUps[0] != "K1" {
		t.Fatalf("plan = %+v", req.Plan)
	}
}

func TestDecodeRejectsUnknownFieldsAndTrailingData(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"stations": []}`)); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if _, err := Decode(strings.NewReader(`{} {}`)); err == nil {
		t.Fatalf("expected error for trailing object")
	}
}

func TestDomainConnectionsValidation(t *testing.T) {
	sc := &Scenario{Connections: []ConnectionSeed{{Name: "E1", Source: "A", Destination: "B", TravelSeconds: -1}}}
	if _, err := sc.DomainConnections(); err == nil {
		t.Fatalf("expected error for negative travel time")
	}

	sc = &Scenario{Connections: []ConnectionSeed{{Source: "A", Destination: "B"}}}
	if _, err := sc.DomainConnections(); err == nil {
		t.Fatalf("expected error for unnamed connection")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.json")
	if err := os.WriteFile(path, []byte(demo), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	sc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(sc.Connections) != 2 {
		t.Fatalf("connections = %d, want 2", len(sc.Connections))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
