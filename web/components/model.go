package components

import (
	"github.com/dasdy/gamepedia/model"
)

type PageType int

const (
	PageTypeGallery PageType = iota
	PageTypeDetail
	PageTypeNotFound
	PageTypeStats
)

// GenreLink is one entry of the category menu.
type GenreLink struct {
	Genre  string
	Label  string
	Href   string
	Active bool
}

// AppBar is rendered at the top of every page.
type AppBar struct {
	Title             string
	MenuLabel         string
	SearchPlaceholder string
	Query             string
	Lang              string
	Genres            []GenreLink
}

// Tile is a clickable gallery entry. Submitting it starts the transition to Action.
type Tile struct {
	Index  int
	Game   model.CatalogItem
	Action string
}

type RenderContext struct {
	Page PageType
	Lang string
	Bar  AppBar

	// gallery
	Heading      string
	Hint         string
	Empty        string
	ActivationID string
	Tiles        []Tile

	// detail and not-found
	Game        model.CatalogItem
	Description string
	BackLabel   string
	BackHref    string

	// stats
	Columns []string
	Stats   []model.GameStats
}
