package locales

import (
	"embed"
	"fmt"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var embeddedFiles embed.FS

var localeFiles = []string{"active.en.toml", "active.es.toml"}

var (
	AppTitle          = &i18n.Message{ID: "app_title", Other: "Gaming Encyclopedia"}
	GalleryHint       = &i18n.Message{ID: "gallery_hint", Other: "Click an image for info."}
	GalleryEmpty      = &i18n.Message{ID: "gallery_empty", Other: "No games match your search."}
	GalleryResults    = &i18n.Message{ID: "gallery_results", Other: "Results for \"{{.Query}}\""}
	SearchPlaceholder = &i18n.Message{ID: "search_placeholder", Other: "Search…"}
	MenuLabel         = &i18n.Message{ID: "menu_label", Other: "Categories"}
	DetailPlaceholder = &i18n.Message{ID: "detail_placeholder", Other: "More details coming soon!"}
	DetailNotFound    = &i18n.Message{ID: "detail_not_found", Other: "Game not found"}
	BackHome          = &i18n.Message{ID: "back_home", Other: "Back to Home"}
	StatsTitle        = &i18n.Message{ID: "stats_title", Other: "Statistics"}
	StatsGame         = &i18n.Message{ID: "stats_game", Other: "Game"}
	StatsImpressions  = &i18n.Message{ID: "stats_impressions", Other: "Shown"}
	StatsOpens        = &i18n.Message{ID: "stats_opens", Other: "Opened"}
)

// NewBundle loads the embedded message files. English is the fallback language.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, name := range localeFiles {
		content, err := embeddedFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded locale file %s: %w", name, err)
		}

		if _, err := bundle.ParseMessageFileBytes(content, name); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", name, err)
		}
	}

	return bundle, nil
}

// Translator localizes messages for one request.
type Translator struct {
	localizer *i18n.Localizer
}

// NewTranslator picks the first supported language out of langs; each entry may be a
// plain tag or a full Accept-Language header value. A nil bundle yields the default texts.
func NewTranslator(bundle *i18n.Bundle, langs ...string) Translator {
	if bundle == nil {
		return Translator{}
	}

	return Translator{localizer: i18n.NewLocalizer(bundle, langs...)}
}

func (t Translator) T(msg *i18n.Message) string {
	return t.Tf(msg, nil)
}

func (t Translator) Tf(msg *i18n.Message, data map[string]any) string {
	if t.localizer == nil {
		return defaultText(msg, data)
	}

	out, err := t.localizer.Localize(&i18n.LocalizeConfig{DefaultMessage: msg, TemplateData: data})
	if err != nil {
		return defaultText(msg, data)
	}

	return out
}

// Lang is the base language the translator resolved to, "en" when nothing else matched.
func (t Translator) Lang() string {
	if t.localizer == nil {
		return language.English.String()
	}

	_, tag, err := t.localizer.LocalizeWithTag(&i18n.LocalizeConfig{DefaultMessage: AppTitle})
	if err != nil || tag == language.Und {
		return language.English.String()
	}

	base, _ := tag.Base()

	return base.String()
}

// Genre returns the localized name of a catalog genre, or the genre itself if it has no translation.
func (t Translator) Genre(genre string) string {
	id := "genre_" + strings.ToLower(strings.ReplaceAll(genre, " ", "_"))

	return t.T(&i18n.Message{ID: id, Other: genre})
}

func defaultText(msg *i18n.Message, data map[string]any) string {
	out := msg.Other
	for k, v := range data {
		out = strings.ReplaceAll(out, "{{."+k+"}}", fmt.Sprint(v))
	}

	return out
}
