// Package cli provides the command-line interface for the marquee service.
package cli

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"venue-marquee/internal/config"
	"venue-marquee/internal/logging"
	"venue-marquee/internal/ticketmaster"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Client *ticketmaster.Client
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Client: ticketmaster.NewClient(cfg.Credentials.TicketmasterAPIKey, cfg.Venue.ID),
	}

	if !app.Client.IsConfigured() {
		logger.Warn().Msg("TICKETMASTER_API_KEY not set; display and digest degrade to placeholders")
	}

	rootCmd := &cobra.Command{
		Use:   "marquee",
		Short: "Venue Marquee - today's events on a kiosk display",
		Long: `Venue Marquee fetches one venue's event listing, keeps today's
events, and shows them as an auto-advancing kiosk slideshow or
publishes them as a plain-text daily digest.

Use 'marquee serve' for the kiosk display and 'marquee digest' for a
one-shot digest publish.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle debug flag
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/venue-marquee)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newServeCmd(app))
	rootCmd.AddCommand(newDigestCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Venue Marquee v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and validate application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Venue")
	output.Printf("  ID:                %s\n", cfg.Venue.ID)
	output.Printf("  Timezone:          %s\n", cfg.Location().String())
	output.Printf("  Excluded Prefixes: %s\n", strings.Join(cfg.Venue.ExcludedPrefixes, ", "))
	output.Println()

	output.Bold("Server")
	output.Printf("  Listen:            %s\n", cfg.Server.Listen)
	output.Println()

	output.Bold("Digest")
	if cfg.Digest.Schedule != "" {
		output.Printf("  Schedule:          %s\n", cfg.Digest.Schedule)
	} else {
		output.Printf("  Schedule:          (disabled)\n")
	}
	output.Printf("  SNS Topic:         %v\n", cfg.Notify.SNS.TopicARN != "")
	output.Printf("  Webhook:           %v\n", cfg.Notify.Webhook.Enabled)
	output.Println()

	output.Bold("Credentials")
	output.Printf("  Ticketmaster Key:  %v\n", cfg.Credentials.TicketmasterAPIKey != "")

	return nil
}
