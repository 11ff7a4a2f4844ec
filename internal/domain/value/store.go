package value

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
)

const DefaultStoreLabel = "Other store"

type Store struct {
	ID    string
	Label string
}

// StoreDirectory maps upstream store IDs to display labels. It is built once
// at startup and never mutated.
type StoreDirectory struct {
	labels map[string]string
}

func NewStoreDirectory(labels map[string]string) StoreDirectory {
	return StoreDirectory{labels: maps.Clone(labels)}
}

func (d StoreDirectory) Label(storeID string) string {
	if label, ok := d.labels[storeID]; ok && label != "" {
		return label
	}

	return DefaultStoreLabel
}

// Stores lists the directory ordered by numeric store ID.
func (d StoreDirectory) Stores() []Store {
	stores := make([]Store, 0, len(d.labels))
	for id, label := range d.labels {
		stores = append(stores, Store{ID: id, Label: label})
	}

	slices.SortFunc(stores, func(a, b Store) int {
		ai, aErr := strconv.Atoi(a.ID)
		bi, bErr := strconv.Atoi(b.ID)

		if aErr == nil && bErr == nil {
			return cmp.Compare(ai, bi)
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return stores
}
