package gamepedia

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dasdy/gamepedia/catalog"
	"github.com/dasdy/gamepedia/db"
	"github.com/dasdy/gamepedia/locales"
	"github.com/dasdy/gamepedia/nav"
	"github.com/dasdy/gamepedia/selector"
	"github.com/dasdy/gamepedia/web"
	"github.com/dasdy/gamepedia/web/routes"
	"github.com/spf13/cobra"
)

var (
	port          int
	dev           bool
	catalogFile   string
	subsetSize    int
	storagePath   string
	transitionTTL time.Duration
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web interface",
	Long: `Serve the gallery and detail pages. Statistics about shown and opened games are kept
in memory unless --storage points to a sqlite file.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		handler, closeStorage, err := buildHandler(ctx)
		if err != nil {
			return err
		}
		defer closeStorage()

		return web.StartServer(ctx, port, handler, dev)
	},
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not load catalog: %w", err)
	}

	return c, nil
}

func buildHandler(ctx context.Context) (*routes.ServerHandler, func(), error) {
	if subsetSize <= 0 {
		return nil, nil, fmt.Errorf("subset-size must be positive, got %d", subsetSize)
	}

	if transitionTTL <= 0 {
		return nil, nil, fmt.Errorf("transition-ttl must be positive, got %s", transitionTTL)
	}

	c, err := loadCatalog(catalogFile)
	if err != nil {
		return nil, nil, err
	}

	slog.InfoContext(ctx, "Loaded catalog", "games", c.Len(), "file", catalogFile)

	path := storagePath
	if path == "" {
		path = db.InMemory
	}

	storage, err := db.ConnectDB(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %s as sqlite file: %w", path, err)
	}

	bundle, err := locales.NewBundle()
	if err != nil {
		storage.Close()

		return nil, nil, fmt.Errorf("could not load translations: %w", err)
	}

	handler := routes.NewServerHandler(c, selector.NewRandom(), storage, bundle)
	handler.SubsetSize = subsetSize
	handler.Activations = nav.NewActivations(transitionTTL, nav.DefaultMaxLen)
	handler.Transitions = nav.NewTransitions(transitionTTL, nav.DefaultMaxLen)
	handler.TransitionTTL = transitionTTL

	return handler, storage.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&port, "port", "p", 9000,
		"Port on which server should be watching")

	serveCmd.Flags().BoolVar(&dev,
		"dev",
		false,
		"Enable developer mode")

	serveCmd.Flags().StringVar(
		&catalogFile,
		"catalog-file",
		"",
		"Path to a TOML catalog; the built-in catalog is used when empty")

	serveCmd.Flags().IntVarP(&subsetSize, "subset-size", "k", routes.DefaultSubsetSize,
		"Number of games shown on the home page")

	serveCmd.Flags().StringVarP(
		&storagePath,
		"storage",
		"s",
		"",
		"Path to a sqlite file for statistics; kept in memory when empty")

	serveCmd.Flags().DurationVar(&transitionTTL,
		"transition-ttl",
		nav.DefaultTTL,
		"How long a gallery page and a pending navigation stay valid")
}
