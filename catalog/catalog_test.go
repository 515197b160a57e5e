package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dasdy/gamepedia/catalog"
	"github.com/dasdy/gamepedia/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()

	require.Equal(t, 4, c.Len())

	zelda, ok := c.Find(3)
	require.True(t, ok)
	assert.Equal(t, "The Legend of Zelda", zelda.Label)

	_, ok = c.Find(42)
	assert.False(t, ok)
}

func TestItemsReturnsCopy(t *testing.T) {
	c := catalog.Default()

	items := c.Items()
	items[0].Label = "changed"

	assert.Equal(t, "Donkey Kong Country 2", c.Items()[0].Label)
}

func TestNewCopiesInput(t *testing.T) {
	input := []model.CatalogItem{{ID: 1, Label: "A", ImageRef: "a.png"}}

	c, err := catalog.New(input)
	require.NoError(t, err)

	input[0].Label = "B"

	assert.Equal(t, "A", c.Items()[0].Label)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		items   []model.CatalogItem
		wantErr error
	}{
		{
			name:    "empty",
			items:   nil,
			wantErr: catalog.ErrEmpty,
		},
		{
			name:    "zero id",
			items:   []model.CatalogItem{{ID: 0, Label: "A", ImageRef: "a"}},
			wantErr: catalog.ErrInvalidItem,
		},
		{
			name:    "negative id",
			items:   []model.CatalogItem{{ID: -3, Label: "A", ImageRef: "a"}},
			wantErr: catalog.ErrInvalidItem,
		},
		{
			name:    "empty label",
			items:   []model.CatalogItem{{ID: 1, Label: "  ", ImageRef: "a"}},
			wantErr: catalog.ErrInvalidItem,
		},
		{
			name:    "empty image",
			items:   []model.CatalogItem{{ID: 1, Label: "A"}},
			wantErr: catalog.ErrInvalidItem,
		},
		{
			name: "duplicate id",
			items: []model.CatalogItem{
				{ID: 1, Label: "A", ImageRef: "a"},
				{ID: 1, Label: "B", ImageRef: "b"},
			},
			wantErr: catalog.ErrDuplicateID,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := catalog.New(tc.items)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFilter(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name    string
		query   string
		genre   string
		wantIDs []int
	}{
		{name: "no filter", wantIDs: []int{1, 2, 3, 4}},
		{name: "query case insensitive", query: "ZELDA", wantIDs: []int{3}},
		{name: "query substring", query: "mario", wantIDs: []int{2}},
		{name: "genre", genre: "platformers", wantIDs: []int{1, 2}},
		{name: "genre and query", genre: "Platformers", query: "kong", wantIDs: []int{1}},
		{name: "no match", query: "tetris", wantIDs: []int{}},
		{name: "unknown genre", genre: "Puzzle", wantIDs: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items := c.Filter(tc.query, tc.genre)

			ids := make([]int, 0, len(items))
			for _, item := range items {
				ids = append(ids, item.ID)
			}

			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("parses games", func(t *testing.T) {
		input := `
[[games]]
id = 10
label = "Street Fighter II"
image = "https://example.com/sf2.png"
genre = "Fighting"

[[games]]
id = 11
label = "Tetris"
image = "https://example.com/tetris.png"
`
		c, err := catalog.Load(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, []model.CatalogItem{
			{ID: 10, Label: "Street Fighter II", ImageRef: "https://example.com/sf2.png", Genre: "Fighting"},
			{ID: 11, Label: "Tetris", ImageRef: "https://example.com/tetris.png"},
		}, c.Items())
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		input := `
[[games]]
id = 10
label = "Street Fighter II"
image = "https://example.com/sf2.png"
year = 1991
`
		_, err := catalog.Load(strings.NewReader(input))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not parse catalog")
	})

	t.Run("validates parsed items", func(t *testing.T) {
		input := `
[[games]]
id = 1
label = "A"
image = "a"

[[games]]
id = 1
label = "B"
image = "b"
`
		_, err := catalog.Load(strings.NewReader(input))
		require.ErrorIs(t, err, catalog.ErrDuplicateID)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	err := os.WriteFile(path, []byte("[[games]]\nid = 5\nlabel = \"Doom\"\nimage = \"doom.png\"\n"), 0o600)
	require.NoError(t, err)

	c, err := catalog.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = catalog.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
