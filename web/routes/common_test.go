package routes_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/dasdy/gamepedia/catalog"
	"github.com/dasdy/gamepedia/locales"
	"github.com/dasdy/gamepedia/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockComponent implements the templ.Component interface for testing.
type MockComponent struct {
	RenderFunc func(ctx context.Context, w io.Writer) error
}

func (m MockComponent) Render(ctx context.Context, w io.Writer) error {
	return m.RenderFunc(ctx, w)
}

func TestSafeRenderTemplate(t *testing.T) {
	t.Run("successful render", func(t *testing.T) {
		// Create a mock component that writes "Hello, World!" to the writer
		mockComponent := MockComponent{
			RenderFunc: func(_ context.Context, w io.Writer) error {
				_, err := w.Write([]byte("Hello, World!"))
				if err != nil {
					return fmt.Errorf("failed to write data: %w", err)
				}

				return nil
			},
		}

		recorder := httptest.NewRecorder()

		err := routes.SafeRenderTemplate(mockComponent, recorder)
		require.NoError(t, err)

		assert.Equal(t, "text/html; charset=UTF-8", recorder.Header().Get("Content-Type"))
		assert.Equal(t, "Hello, World!", recorder.Body.String())
	})

	t.Run("render error", func(t *testing.T) {
		expectedErr := errors.New("render error")
		mockComponent := MockComponent{
			RenderFunc: func(_ context.Context, _ io.Writer) error {
				return expectedErr
			},
		}

		recorder := httptest.NewRecorder()

		err := routes.SafeRenderTemplate(mockComponent, recorder)

		require.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "could not render template")

		// Assert no response was written
		assert.Empty(t, recorder.Body.String())
	})
}

func TestBuildAppBar(t *testing.T) {
	bundle, err := locales.NewBundle()
	require.NoError(t, err)

	t.Run("english without language parameter", func(t *testing.T) {
		bar := routes.BuildAppBar(locales.NewTranslator(bundle), "mario", "RPG", "")

		assert.Equal(t, "Gaming Encyclopedia", bar.Title)
		assert.Equal(t, "mario", bar.Query)
		require.Len(t, bar.Genres, len(catalog.Genres))

		for i, g := range bar.Genres {
			assert.Equal(t, catalog.Genres[i], g.Genre)
			assert.Equal(t, g.Genre == "RPG", g.Active)
		}

		assert.Equal(t, "/?genre=Platformers", bar.Genres[0].Href)
	})

	t.Run("genre matched regardless of case", func(t *testing.T) {
		bar := routes.BuildAppBar(locales.NewTranslator(bundle), "", "rpg", "")

		for _, g := range bar.Genres {
			assert.Equal(t, g.Genre == "RPG", g.Active, g.Genre)
		}
	})

	t.Run("spanish keeps language in links", func(t *testing.T) {
		bar := routes.BuildAppBar(locales.NewTranslator(bundle, "es"), "", "", "es")

		assert.Equal(t, "Enciclopedia de Videojuegos", bar.Title)
		assert.Equal(t, "Plataformas", bar.Genres[0].Label)
		assert.Equal(t, "/?genre=Platformers&lang=es", bar.Genres[0].Href)
		assert.Equal(t, "es", bar.Lang)
	})
}
