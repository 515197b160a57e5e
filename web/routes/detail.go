package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/gamepedia/locales"
	"github.com/dasdy/gamepedia/model"
	"github.com/dasdy/gamepedia/nav"
	cs "github.com/dasdy/gamepedia/web/components"
)

// BuildDetailRenderContext renders payload, or the not-found page when it is nil.
func (s *ServerHandler) BuildDetailRenderContext(tr locales.Translator, payload *model.NavigationPayload, lang string) cs.RenderContext {
	renderContext := cs.RenderContext{
		Page:      cs.PageTypeNotFound,
		Lang:      tr.Lang(),
		Bar:       BuildAppBar(tr, "", "", lang),
		Heading:   tr.T(locales.DetailNotFound),
		BackLabel: tr.T(locales.BackHome),
		BackHref:  withLang(nav.HomePath, nil, lang),
	}

	if payload == nil {
		return renderContext
	}

	renderContext.Page = cs.PageTypeDetail
	renderContext.Heading = payload.Game.Label
	renderContext.Game = payload.Game
	renderContext.Description = tr.T(locales.DetailPlaceholder)

	return renderContext
}

// takePayload consumes the transition named by the request cookie, if it was begun for this path.
func (s *ServerHandler) takePayload(w http.ResponseWriter, r *http.Request) *model.NavigationPayload {
	cookie, err := r.Cookie(TransitionCookie)
	if err != nil {
		return nil
	}

	clearTransitionCookie(w)

	payload, ok := s.Transitions.Take(cookie.Value, r.URL.Path)
	if !ok {
		return nil
	}

	return payload
}

// DetailHandle handles a detail page activation.
func (s *ServerHandler) DetailHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling detail page request")

	payload := s.takePayload(w, r)
	if payload == nil {
		slog.InfoContext(r.Context(), "No navigation payload, rendering not found")
	} else if s.Storage != nil {
		if err := s.Storage.RecordOpen(r.Context(), payload.Game.ID); err != nil {
			slog.ErrorContext(r.Context(), "Failed to record open", "error", err)
		}
	}

	renderContext := s.BuildDetailRenderContext(s.translator(r), payload, requestLang(r))

	// a reload must come back without the payload
	w.Header().Set("Cache-Control", "no-store")

	if renderContext.Page == cs.PageTypeDetail {
		renderOrFail(r.Context(), cs.Detail(&renderContext), w)

		return
	}

	renderOrFail(r.Context(), cs.NotFound(&renderContext), w)
}

func clearTransitionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TransitionCookie,
		Value:    "",
		Path:     nav.GamePathBase,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
