package ports

import "train-dispatch-service/internal/domain"

// Contract for resolving cargo items by name during a move.
type ItemCatalog interface {
	// Return the item with the given name, or false when unknown.
	Lookup(name string) (domain.Item, bool)
}
