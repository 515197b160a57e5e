package locales_test

import (
	"testing"

	"github.com/dasdy/gamepedia/locales"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator(t *testing.T) {
	bundle, err := locales.NewBundle()
	require.NoError(t, err)

	tests := []struct {
		name  string
		langs []string
		want  string
	}{
		{name: "default language", langs: nil, want: "Game not found"},
		{name: "english", langs: []string{"en"}, want: "Game not found"},
		{name: "spanish tag", langs: []string{"es"}, want: "Juego no encontrado"},
		{name: "accept-language header", langs: []string{"es-MX,es;q=0.9,en;q=0.8"}, want: "Juego no encontrado"},
		{name: "unsupported falls back", langs: []string{"ja"}, want: "Game not found"},
		{name: "query wins over header", langs: []string{"en", "es"}, want: "Game not found"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := locales.NewTranslator(bundle, tc.langs...)
			assert.Equal(t, tc.want, tr.T(locales.DetailNotFound))
		})
	}
}

func TestTranslatorTemplateData(t *testing.T) {
	bundle, err := locales.NewBundle()
	require.NoError(t, err)

	tr := locales.NewTranslator(bundle, "en")
	assert.Equal(t, `Results for "zelda"`, tr.Tf(locales.GalleryResults, map[string]any{"Query": "zelda"}))
}

func TestTranslatorWithoutBundle(t *testing.T) {
	tr := locales.NewTranslator(nil, "es")

	assert.Equal(t, "Back to Home", tr.T(locales.BackHome))
	assert.Equal(t, `Results for "mario"`, tr.Tf(locales.GalleryResults, map[string]any{"Query": "mario"}))
}

func TestTranslatorLang(t *testing.T) {
	bundle, err := locales.NewBundle()
	require.NoError(t, err)

	tests := []struct {
		name  string
		langs []string
		want  string
	}{
		{name: "default language", langs: nil, want: "en"},
		{name: "spanish tag", langs: []string{"es"}, want: "es"},
		{name: "accept-language header", langs: []string{"", "es-MX,es;q=0.9"}, want: "es"},
		{name: "unsupported falls back", langs: []string{"ja"}, want: "en"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, locales.NewTranslator(bundle, tc.langs...).Lang())
		})
	}

	assert.Equal(t, "en", locales.NewTranslator(nil, "es").Lang())
}

func TestGenre(t *testing.T) {
	bundle, err := locales.NewBundle()
	require.NoError(t, err)

	assert.Equal(t, "Plataformas", locales.NewTranslator(bundle, "es").Genre("Platformers"))
	assert.Equal(t, "Platformers", locales.NewTranslator(bundle, "en").Genre("Platformers"))
	assert.Equal(t, "Racing", locales.NewTranslator(bundle, "en").Genre("Racing"))
}
