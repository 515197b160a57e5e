package model

// CatalogItem is one game entry of the catalog.
type CatalogItem struct {
	ID       int    `toml:"id"`
	ImageRef string `toml:"image"`
	Label    string `toml:"label"`
	Genre    string `toml:"genre"`
}

// NavigationPayload is attached to a single transition from the gallery to the detail page.
type NavigationPayload struct {
	Game CatalogItem
}

type GameStats struct {
	ID          int
	Label       string
	Impressions int
	Opens       int
}
