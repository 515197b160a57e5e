package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/dasdy/gamepedia/catalog"
	"github.com/dasdy/gamepedia/db"
	"github.com/dasdy/gamepedia/locales"
	"github.com/dasdy/gamepedia/nav"
	"github.com/dasdy/gamepedia/selector"
	cs "github.com/dasdy/gamepedia/web/components"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

const (
	TransitionCookie  = "gamepedia_transition"
	DefaultSubsetSize = 2
)

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Catalog     *catalog.Catalog
	Selector    selector.Selector
	SubsetSize  int
	Activations *nav.Activations
	Transitions *nav.Transitions
	// TransitionTTL bounds the lifetime of the transition cookie.
	TransitionTTL time.Duration
	// Storage is optional; statistics are not recorded when it is nil.
	Storage db.Storage
	Bundle  *i18n.Bundle
}

// NewServerHandler fills in registries and defaults for zero fields.
func NewServerHandler(c *catalog.Catalog, sel selector.Selector, storage db.Storage, bundle *i18n.Bundle) *ServerHandler {
	return &ServerHandler{
		Catalog:       c,
		Selector:      sel,
		SubsetSize:    DefaultSubsetSize,
		Activations:   nav.NewActivations(nav.DefaultTTL, nav.DefaultMaxLen),
		Transitions:   nav.NewTransitions(nav.DefaultTTL, nav.DefaultMaxLen),
		TransitionTTL: nav.DefaultTTL,
		Storage:       storage,
		Bundle:        bundle,
	}
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

func renderOrFail(ctx context.Context, component templ.Component, w http.ResponseWriter) {
	if err := SafeRenderTemplate(component, w); err != nil {
		slog.ErrorContext(ctx, "Failed to render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// requestLang is the explicit ?lang= choice; it is carried along in generated links.
func requestLang(r *http.Request) string {
	return r.URL.Query().Get("lang")
}

func (s *ServerHandler) translator(r *http.Request) locales.Translator {
	return locales.NewTranslator(s.Bundle, requestLang(r), r.Header.Get("Accept-Language"))
}

// withLang appends the lang parameter to a local path when one was requested.
func withLang(path string, params url.Values, lang string) string {
	if lang != "" {
		if params == nil {
			params = url.Values{}
		}

		params.Set("lang", lang)
	}

	if len(params) == 0 {
		return path
	}

	return path + "?" + params.Encode()
}

// BuildAppBar builds the app bar shared by all pages.
func BuildAppBar(tr locales.Translator, query, activeGenre, lang string) cs.AppBar {
	genres := make([]cs.GenreLink, 0, len(catalog.Genres))

	for _, g := range catalog.Genres {
		genres = append(genres, cs.GenreLink{
			Genre:  g,
			Label:  tr.Genre(g),
			Href:   withLang(nav.HomePath, url.Values{"genre": {g}}, lang),
			Active: strings.EqualFold(g, activeGenre),
		})
	}

	return cs.AppBar{
		Title:             tr.T(locales.AppTitle),
		MenuLabel:         tr.T(locales.MenuLabel),
		SearchPlaceholder: tr.T(locales.SearchPlaceholder),
		Query:             query,
		Lang:              lang,
		Genres:            genres,
	}
}
