// Package nav holds the navigation contract between the gallery and the detail page:
// route paths, the transition registry that carries a one-shot payload, and the registry of
// gallery activations.
package nav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dasdy/gamepedia/model"
)

const (
	HomePath      = "/"
	GamePathBase  = "/game/"
	GamePattern   = "/game/{id}"
	DefaultTTL    = 30 * time.Minute
	DefaultMaxLen = 10000
)

var ErrBadGameID = errors.New("game id must be a positive integer")

// GamePath returns the detail path for a game id.
func GamePath(id int) string {
	return GamePathBase + strconv.Itoa(id)
}

// ParseGameID parses the {id} segment of a detail path.
func ParseGameID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadGameID, s)
	}

	return id, nil
}

type transition struct {
	path    string
	payload model.NavigationPayload
}

// Transitions keeps payloads for navigations that have been started but whose destination
// has not been activated yet.
type Transitions struct {
	pending *Registry[transition]
}

func NewTransitions(ttl time.Duration, maxLen int) *Transitions {
	return &Transitions{pending: NewRegistry[transition](ttl, maxLen)}
}

// Begin registers a transition to path carrying payload and returns its id.
func (t *Transitions) Begin(path string, payload model.NavigationPayload) string {
	return t.pending.Put(transition{path: path, payload: payload})
}

// Take consumes the transition id. The payload is returned only when the transition was
// begun for the same path. A consumed transition is gone even if the path did not match.
func (t *Transitions) Take(id, path string) (*model.NavigationPayload, bool) {
	if id == "" {
		return nil, false
	}

	tr, ok := t.pending.Take(id)
	if !ok || tr.path != path {
		return nil, false
	}

	return &tr.payload, true
}

func (t *Transitions) Len() int {
	return t.pending.Len()
}

// Activations remembers the subset each gallery activation rendered, so a tile click
// resolves to the exact item that was shown.
type Activations struct {
	shown *Registry[[]model.CatalogItem]
}

func NewActivations(ttl time.Duration, maxLen int) *Activations {
	return &Activations{shown: NewRegistry[[]model.CatalogItem](ttl, maxLen)}
}

func (a *Activations) Register(items []model.CatalogItem) string {
	return a.shown.Put(items)
}

// Item returns the item at index of the activation's subset.
func (a *Activations) Item(id string, index int) (model.CatalogItem, bool) {
	items, ok := a.shown.Get(id)
	if !ok || index < 0 || index >= len(items) {
		return model.CatalogItem{}, false
	}

	return items[index], true
}
