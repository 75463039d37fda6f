package services

import (
	"fmt"
	"slices"
	"strings"
	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/ports"
)

// CargoLedger is a fixed, in-memory cargo catalog keyed by item name.
// It implements ports.ItemCatalog and is safe for concurrent reads.
type CargoLedger struct {
	items map[string]domain.Item
}

// Build a ledger from a catalog. Later entries with the same name replace earlier ones.
func NewCargoLedger(items []domain.Item) (*CargoLedger, error) {
	l := &CargoLedger{items: make(map[string]domain.Item, len(items))}
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("cargo ledger: item #%d: %w", i+1, err)
		}
		l.items[it.Name] = it
	}
	return l, nil
}

func (l *CargoLedger) Lookup(name string) (domain.Item, bool) {
	if l == nil {
		return domain.Item{}, false
	}
	it, ok := l.items[name]
	return it, ok
}

// Items returns the catalog sorted by name.
func (l *CargoLedger) Items() []domain.Item {
	if l == nil {
		return []domain.Item{}
	}
	out := make([]domain.Item, 0, len(l.items))
	for _, it := range l.items {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b domain.Item) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// TotalWeight sums the weight of the named items.
// Names the catalog does not know weigh nothing.
func TotalWeight(catalog ports.ItemCatalog, names []string) int {
	total := 0
	for _, name := range names {
		if it, ok := catalog.Lookup(name); ok {
			total += it.Weight
		}
	}
	return total
}
