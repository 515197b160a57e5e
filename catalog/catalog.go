package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/dasdy/gamepedia/model"
	toml "github.com/pelletier/go-toml/v2"
)

var (
	ErrDuplicateID = errors.New("duplicate catalog id")
	ErrInvalidItem = errors.New("invalid catalog item")
	ErrEmpty       = errors.New("catalog is empty")
)

// Genres shown in the category menu, in menu order.
var Genres = []string{"Platformers", "Fighting", "RPG", "Shooter", "Puzzle"}

// Catalog is an immutable list of games. The zero value is an empty catalog.
type Catalog struct {
	items []model.CatalogItem
}

// New validates items and returns a catalog holding its own copy of them.
func New(items []model.CatalogItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmpty
	}

	seen := make(map[int]struct{}, len(items))

	for i, item := range items {
		if item.ID <= 0 {
			return nil, fmt.Errorf("%w: item %d has non-positive id %d", ErrInvalidItem, i, item.ID)
		}

		if strings.TrimSpace(item.Label) == "" {
			return nil, fmt.Errorf("%w: item %d has empty label", ErrInvalidItem, item.ID)
		}

		if strings.TrimSpace(item.ImageRef) == "" {
			return nil, fmt.Errorf("%w: item %d has empty image", ErrInvalidItem, item.ID)
		}

		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
		}

		seen[item.ID] = struct{}{}
	}

	return &Catalog{items: slices.Clone(items)}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New([]model.CatalogItem{
		{ID: 1, ImageRef: "https://m.media-amazon.com/images/I/614zA+E6wvL._AC_UF1000,1000_QL80_.jpg", Label: "Donkey Kong Country 2", Genre: "Platformers"},
		{ID: 2, ImageRef: "https://upload.wikimedia.org/wikipedia/en/3/32/Super_Mario_World_Coverart.png", Label: "Super Mario World", Genre: "Platformers"},
		{ID: 3, ImageRef: "https://via.placeholder.com/150", Label: "The Legend of Zelda", Genre: "RPG"},
		{ID: 4, ImageRef: "https://upload.wikimedia.org/wikipedia/en/f/f1/Mega_Man_X_Coverart.png", Label: "Mega Man X", Genre: "Shooter"},
	})
	if err != nil {
		panic(err)
	}

	return c
}

// Items returns a copy of the catalog entries in catalog order.
func (c *Catalog) Items() []model.CatalogItem {
	return slices.Clone(c.items)
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Find returns the item with the given id.
func (c *Catalog) Find(id int) (model.CatalogItem, bool) {
	idx := slices.IndexFunc(c.items, func(item model.CatalogItem) bool { return item.ID == id })
	if idx < 0 {
		return model.CatalogItem{}, false
	}

	return c.items[idx], true
}

// Filter returns the items matching a case-insensitive label query and an exact genre.
// Empty query or genre matches everything.
func (c *Catalog) Filter(query, genre string) []model.CatalogItem {
	query = strings.ToLower(strings.TrimSpace(query))
	genre = strings.TrimSpace(genre)

	result := make([]model.CatalogItem, 0, len(c.items))

	for _, item := range c.items {
		if genre != "" && !strings.EqualFold(item.Genre, genre) {
			continue
		}

		if query != "" && !strings.Contains(strings.ToLower(item.Label), query) {
			continue
		}

		result = append(result, item)
	}

	return result
}

type catalogFile struct {
	Games []model.CatalogItem `toml:"games"`
}

// Load parses a TOML catalog with a [[games]] array.
func Load(r io.Reader) (*Catalog, error) {
	var parsed catalogFile

	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&parsed); err != nil {
		return nil, fmt.Errorf("could not parse catalog: %w", err)
	}

	return New(parsed.Games)
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open catalog file %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
