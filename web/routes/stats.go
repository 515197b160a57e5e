package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/gamepedia/locales"
	"github.com/dasdy/gamepedia/model"
	"github.com/dasdy/gamepedia/nav"
	cs "github.com/dasdy/gamepedia/web/components"
)

// BuildStatsRenderContext builds the render context for the stats page.
// Every catalog game gets a row, in catalog order, even if it was never shown.
func (s *ServerHandler) BuildStatsRenderContext(tr locales.Translator, dbStats map[int]model.GameStats, lang string) cs.RenderContext {
	items := s.Catalog.Items()
	rows := make([]model.GameStats, 0, len(items))

	for _, item := range items {
		row := dbStats[item.ID]
		row.ID = item.ID
		row.Label = item.Label
		rows = append(rows, row)
	}

	return cs.RenderContext{
		Page:      cs.PageTypeStats,
		Lang:      tr.Lang(),
		Bar:       BuildAppBar(tr, "", "", lang),
		Heading:   tr.T(locales.StatsTitle),
		Columns:   []string{tr.T(locales.StatsGame), tr.T(locales.StatsImpressions), tr.T(locales.StatsOpens)},
		Stats:     rows,
		BackLabel: tr.T(locales.BackHome),
		BackHref:  withLang(nav.HomePath, nil, lang),
	}
}

// StatsHandle handles requests to the stats page.
func (s *ServerHandler) StatsHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(r.Context(), "Handling stats page request")

	curStats := map[int]model.GameStats{}

	if s.Storage != nil {
		var err error

		curStats, err = s.Storage.GatherAll(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Failed to get stats", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}
	}

	slog.DebugContext(r.Context(), "Gathered current stats")

	renderContext := s.BuildStatsRenderContext(s.translator(r), curStats, requestLang(r))
	renderOrFail(r.Context(), cs.StatsTable(&renderContext), w)
}
