package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dasdy/gamepedia/locales"
	"github.com/dasdy/gamepedia/model"
	"github.com/dasdy/gamepedia/nav"
	cs "github.com/dasdy/gamepedia/web/components"
)

// GalleryQuery carries the optional filters of a gallery activation.
type GalleryQuery struct {
	Search string
	Genre  string
	Lang   string
}

// BuildGalleryRenderContext picks the subset for one gallery activation and registers it.
func (s *ServerHandler) BuildGalleryRenderContext(tr locales.Translator, q GalleryQuery) (cs.RenderContext, error) {
	candidates := s.Catalog.Filter(q.Search, q.Genre)

	renderContext := cs.RenderContext{
		Page:    cs.PageTypeGallery,
		Lang:    tr.Lang(),
		Bar:     BuildAppBar(tr, q.Search, q.Genre, q.Lang),
		Heading: tr.T(locales.AppTitle),
		Hint:    tr.T(locales.GalleryHint),
		Empty:   tr.T(locales.GalleryEmpty),
	}

	if q.Search != "" {
		renderContext.Heading = tr.Tf(locales.GalleryResults, map[string]any{"Query": q.Search})
	}

	if len(candidates) == 0 {
		return renderContext, nil
	}

	size := min(s.SubsetSize, len(candidates))
	if size <= 0 {
		size = min(DefaultSubsetSize, len(candidates))
	}

	subset, err := s.Selector.Pick(candidates, size)
	if err != nil {
		return cs.RenderContext{}, fmt.Errorf("could not pick games: %w", err)
	}

	renderContext.ActivationID = s.Activations.Register(subset)
	renderContext.Tiles = make([]cs.Tile, 0, len(subset))

	for i, game := range subset {
		renderContext.Tiles = append(renderContext.Tiles, cs.Tile{
			Index:  i,
			Game:   game,
			Action: withLang(nav.GamePath(game.ID), nil, q.Lang),
		})
	}

	return renderContext, nil
}

// GalleryHandle handles a gallery activation.
func (s *ServerHandler) GalleryHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling gallery page request")

	query := GalleryQuery{
		Search: r.URL.Query().Get("q"),
		Genre:  r.URL.Query().Get("genre"),
		Lang:   requestLang(r),
	}

	renderContext, err := s.BuildGalleryRenderContext(s.translator(r), query)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to build gallery", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if s.Storage != nil && len(renderContext.Tiles) > 0 {
		ids := make([]int, 0, len(renderContext.Tiles))
		for _, tile := range renderContext.Tiles {
			ids = append(ids, tile.Game.ID)
		}

		if err := s.Storage.RecordImpressions(r.Context(), ids); err != nil {
			slog.ErrorContext(r.Context(), "Failed to record impressions", "error", err)
		}
	}

	slog.DebugContext(r.Context(), "Built gallery", "activation", renderContext.ActivationID, "tiles", len(renderContext.Tiles))

	renderOrFail(r.Context(), cs.Gallery(&renderContext), w)
}

// SelectHandle starts the transition for a clicked tile. The payload is the item the
// activation rendered at that index, and travels by cookie rather than in the URL.
func (s *ServerHandler) SelectHandle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	index, err := strconv.Atoi(r.PostForm.Get("index"))
	if err != nil {
		http.Error(w, "index must be an integer", http.StatusBadRequest)

		return
	}

	lang := requestLang(r)

	game, ok := s.Activations.Item(r.PostForm.Get("activation"), index)
	if !ok {
		slog.WarnContext(r.Context(), "Gallery activation not found, navigating without payload",
			"activation", r.PostForm.Get("activation"), "index", index)
		clearTransitionCookie(w)
		http.Redirect(w, r, withLang(r.URL.Path, nil, lang), http.StatusSeeOther)

		return
	}

	path := nav.GamePath(game.ID)
	transitionID := s.Transitions.Begin(path, model.NavigationPayload{Game: game})

	http.SetCookie(w, &http.Cookie{
		Name:     TransitionCookie,
		Value:    transitionID,
		Path:     nav.GamePathBase,
		MaxAge:   int(s.TransitionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.InfoContext(r.Context(), "Navigating to game", "game", game.ID, "path", path)

	http.Redirect(w, r, withLang(path, nil, lang), http.StatusSeeOther)
}
