package selector_test

import (
	"slices"
	"testing"

	"github.com/dasdy/gamepedia/catalog"
	"github.com/dasdy/gamepedia/model"
	"github.com/dasdy/gamepedia/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickSubsetProperties(t *testing.T) {
	items := catalog.Default().Items()
	sel := selector.NewRandom()

	for range 500 {
		subset, err := sel.Pick(items, 2)
		require.NoError(t, err)

		// size
		require.Len(t, subset, 2)

		// distinct ids
		assert.NotEqual(t, subset[0].ID, subset[1].ID)

		// every picked item is a catalog item
		for _, picked := range subset {
			assert.Contains(t, items, picked)
		}
	}
}

func TestPickDoesNotExcludeItems(t *testing.T) {
	items := catalog.Default().Items()
	sel := selector.NewSeeded(1, 2)

	seen := make(map[int]int)

	for range 2000 {
		subset, err := sel.Pick(items, 2)
		require.NoError(t, err)

		for _, picked := range subset {
			seen[picked.ID]++
		}
	}

	for _, item := range items {
		assert.Positive(t, seen[item.ID], "item %d never picked", item.ID)
	}
}

func TestPickEveryItemInFirstPosition(t *testing.T) {
	items := catalog.Default().Items()
	sel := selector.NewSeeded(7, 11)

	first := make(map[int]bool)

	for range 2000 {
		subset, err := sel.Pick(items, 2)
		require.NoError(t, err)

		first[subset[0].ID] = true
	}

	assert.Len(t, first, len(items))
}

func TestPickDoesNotMutateInput(t *testing.T) {
	items := catalog.Default().Items()
	original := slices.Clone(items)
	sel := selector.NewRandom()

	for range 50 {
		_, err := sel.Pick(items, 3)
		require.NoError(t, err)
	}

	assert.Equal(t, original, items)
}

func TestPickWholeCatalogIsPermutation(t *testing.T) {
	items := catalog.Default().Items()

	subset, err := selector.NewSeeded(3, 4).Pick(items, len(items))
	require.NoError(t, err)

	assert.ElementsMatch(t, items, subset)
}

func TestPickSeededIsDeterministic(t *testing.T) {
	items := catalog.Default().Items()

	a, err := selector.NewSeeded(5, 6).Pick(items, 2)
	require.NoError(t, err)

	b, err := selector.NewSeeded(5, 6).Pick(items, 2)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestPickInvalidCount(t *testing.T) {
	items := []model.CatalogItem{{ID: 1}, {ID: 2}}
	sel := selector.NewRandom()

	tests := []struct {
		name string
		k    int
	}{
		{name: "zero", k: 0},
		{name: "negative", k: -1},
		{name: "more than available", k: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			subset, err := sel.Pick(items, tc.k)
			require.ErrorIs(t, err, selector.ErrInvalidCount)
			assert.Nil(t, subset)
		})
	}
}
