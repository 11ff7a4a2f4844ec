package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gamedeals/internal/domain/value"
)

func TestStoreDirectory(t *testing.T) {
	rq := require.New(t)

	labels := map[string]string{
		"1":  "Steam",
		"7":  "Epic Games",
		"11": "GOG",
		"25": "Fanatical",
		"23": "Humble Bundle",
	}

	directory := value.NewStoreDirectory(labels)

	// The directory owns its copy.
	labels["1"] = "Changed"

	testCases := []struct {
		storeID string
		label   string
	}{
		{storeID: "1", label: "Steam"},
		{storeID: "11", label: "GOG"},
		{storeID: "23", label: "Humble Bundle"},
		{storeID: "99", label: value.DefaultStoreLabel},
		{storeID: "", label: value.DefaultStoreLabel},
	}

	for _, tc := range testCases {
		rq.Equal(tc.label, directory.Label(tc.storeID), tc.storeID)
	}

	rq.Equal([]value.Store{
		{ID: "1", Label: "Steam"},
		{ID: "7", Label: "Epic Games"},
		{ID: "11", Label: "GOG"},
		{ID: "23", Label: "Humble Bundle"},
		{ID: "25", Label: "Fanatical"},
	}, directory.Stores())

	rq.Empty(value.StoreDirectory{}.Stores())
	rq.Equal(value.DefaultStoreLabel, value.StoreDirectory{}.Label("1"))
}
