// Package cli wires configuration, logging and services into the
// recipefinder commands.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"recipefinder/internal/api"
	"recipefinder/internal/config"
	"recipefinder/internal/eventbus"
	"recipefinder/internal/logging"
	"recipefinder/internal/suggest"
	"recipefinder/internal/ui"
)

// E2EEnv marks runs driven by the end-to-end tests
const E2EEnv = "RECIPEFINDER_E2E_TEST"

var (
	configPath   string
	endpoint     string
	initialQuery string
	openRecipe   int
)

var rootCmd = &cobra.Command{
	Use:   "recipefinder",
	Short: "Search recipes from the terminal",
	Long: `recipefinder searches recipes with live suggestions as you type.

Examples:
  recipefinder
  recipefinder --query "pasta"
  recipefinder --endpoint http://localhost:3000
  recipefinder serve --addr :3000`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/recipefinder/config.toml)")

	rootCmd.Flags().StringVar(&endpoint, "endpoint", "", "Base URL of the recipe API")
	rootCmd.Flags().StringVarP(&initialQuery, "query", "q", "", "Search for this phrase on start")
	rootCmd.Flags().IntVar(&openRecipe, "open", 0, "Open the recipe with this ID on start")
}

// loadConfig reads .env files, the config file and environment overrides
func loadConfig(bus eventbus.EventBus) (*config.Config, error) {
	config.LoadEnv()

	svc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", svc.Path(), err)
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	bus := eventbus.New()
	defer bus.Close()
	observe(bus)

	cfg, err := loadConfig(bus)
	if err != nil {
		return err
	}
	if endpoint != "" {
		cfg.API.Endpoint = endpoint
	}

	// The terminal belongs to the UI, so logs go to a file
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = config.DefaultLogFile
	}
	closer, err := logging.Setup(logging.Options{Level: cfg.Log.Level, File: logFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	logger := logging.New("cli")
	logger.Info("starting", "endpoint", cfg.API.Endpoint)

	client := api.NewClient(cfg.API.Endpoint, cfg.APITimeout())
	model := ui.NewModel(bus, cfg, client, client)
	model.SetReadyMarker(os.Getenv(E2EEnv) == "1")

	switch {
	case openRecipe > 0:
		model.OpenOnStart(suggest.RecipeTarget(openRecipe))
	case initialQuery != "":
		model.OpenOnStart(suggest.SearchTarget(initialQuery))
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("exited normally")
	return nil
}

// observe logs every published event at debug level
func observe(bus eventbus.EventBus) {
	types := []eventbus.EventType{
		eventbus.EventSuggestionsRequested,
		eventbus.EventSuggestionsReceived,
		eventbus.EventSuggestionsDiscarded,
		eventbus.EventSuggestionsFailed,
		eventbus.EventNavigationRequested,
		eventbus.EventRecipesLoaded,
		eventbus.EventError,
		eventbus.EventConfigLoaded,
	}
	for _, t := range types {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Debug("event", "type", e.Type(), "event", fmt.Sprintf("%+v", e))
		})
	}
}
