package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"venue-marquee/internal/logging"
	"venue-marquee/internal/scheduler"
	"venue-marquee/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the kiosk display server",
		Long: `Serve the auto-advancing slideshow of today's events. Every request,
regardless of method or path, receives the rendered page with HTTP 200.

When digest.schedule is configured, the daily digest is also built and
published on that schedule while the server runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.NewServer(app.Config, app.Client, logging.WithComponent(app.Logger, "server"))

			if spec := app.Config.Digest.Schedule; spec != "" {
				publisher, err := buildPublisher(ctx, app)
				if err != nil {
					return err
				}
				sched := scheduler.New(app.Config.Location(), logging.WithComponent(app.Logger, "scheduler"))
				if err := sched.AddJob(spec, func() {
					publishDigest(ctx, app, publisher)
				}); err != nil {
					return fmt.Errorf("adding digest job: %w", err)
				}
				go sched.Start(ctx)
			}

			return srv.Run(ctx)
		},
	}
}
