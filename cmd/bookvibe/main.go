package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/bookvibe/internal/catalog"
	"github.com/mmcdole/bookvibe/internal/config"
	"github.com/mmcdole/bookvibe/internal/launcher"
	"github.com/mmcdole/bookvibe/internal/logging"
	"github.com/mmcdole/bookvibe/internal/service"
	"github.com/mmcdole/bookvibe/internal/store"
	"github.com/mmcdole/bookvibe/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		configPath  string
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configPath, "config", "", "config file path")
	flag.Parse()

	if showVersion {
		fmt.Printf("bookvibe %s\n", Version)
		return
	}

	if err := run(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.Setup(cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = logging.Null()
	}
	slog.SetDefault(logger)

	logger.Info("starting bookvibe", "version", Version)

	storage, err := store.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer storage.Close()

	client := catalog.NewClient(cfg.Catalog, logger)
	defer client.Close()

	favorites := service.NewFavoritesService(storage)
	purchases := service.NewPurchaseService(storage)

	model := tui.NewModel(tui.Services{
		Browse:    service.NewBrowseService(client, cfg.Catalog.FallbackQueries, logger),
		Favorites: favorites,
		Purchases: purchases,
		Checkout:  service.NewCheckoutService(purchases, cfg.Checkout, logger),
		Opener:    launcher.New(cfg.Browser.Command, cfg.Browser.Args, logger),
	}, *cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
