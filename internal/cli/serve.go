package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"recipefinder/internal/logging"
	"recipefinder/internal/provider"
	"recipefinder/internal/server"
)

var serveAddr string

// serveCmd runs the API proxy in front of the recipe provider
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recipe API proxy",
	Long: `Run the HTTP proxy the terminal UI talks to.

The provider key is read from SPOONACULAR_API_KEY or the [provider] section
of the config file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :3000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	closer, err := logging.Setup(logging.Options{Level: cfg.Log.Level, Timestamp: true})
	if err != nil {
		return err
	}
	defer closer.Close()

	p, err := provider.NewClient(provider.Config{
		BaseURL: cfg.Provider.BaseURL,
		APIKey:  cfg.Provider.APIKey,
		Timeout: cfg.ProviderTimeout(),
	})
	if errors.Is(err, provider.ErrMissingAPIKey) {
		return fmt.Errorf("%w: set SPOONACULAR_API_KEY or [provider] api_key", err)
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(p, server.Options{
		Addr:            cfg.Server.Addr,
		PageSize:        cfg.Provider.PageSize,
		SuggestionCount: cfg.Provider.SuggestionCount,
	})
	return srv.Run(ctx)
}
