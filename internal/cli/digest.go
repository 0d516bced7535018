package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"venue-marquee/internal/lineup"
	"venue-marquee/internal/logging"
	"venue-marquee/internal/notify"
	"venue-marquee/internal/render"
)

func newDigestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Build today's digest and publish it",
		Long: `Perform one digest invocation: fetch the listing, keep today's
events, render the plain-text summary and publish it to the configured
notification channels. Upstream failures publish a short cause-specific
fallback string instead; the command itself still succeeds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			printOnly, _ := cmd.Flags().GetBool("print")
			if printOnly {
				output := NewOutput(cmd)
				msg := buildDigest(ctx, app)
				if output.IsJSON() {
					return output.JSON(map[string]string{"digest": msg})
				}
				output.Println(msg)
				return nil
			}

			publisher, err := buildPublisher(ctx, app)
			if err != nil {
				return err
			}
			publishDigest(ctx, app, publisher)
			return nil
		},
	}

	cmd.Flags().Bool("print", false, "print the digest to stdout instead of publishing")
	return cmd
}

// buildPublisher assembles the configured notification channels.
func buildPublisher(ctx context.Context, app *App) (*notify.Publisher, error) {
	logger := logging.WithComponent(app.Logger, "notify")

	snsChannel, err := notify.NewSNSChannel(ctx, app.Config.Notify.SNS)
	if err != nil {
		return nil, err
	}

	publisher := notify.NewPublisher(logger, snsChannel)
	if app.Config.Notify.Webhook.Enabled {
		publisher.AddChannel(notify.NewWebhookChannel(app.Config.Notify.Webhook))
	}
	return publisher, nil
}

// buildDigest performs one invocation's fetch, filter and render.
// Upstream failures become the cause-specific fallback string.
func buildDigest(ctx context.Context, app *App) string {
	loc := app.Config.Location()
	now := time.Now().In(loc)

	resp, err := app.Client.Events(ctx)
	if err != nil {
		app.Logger.Error().Err(err).Msg("listing fetch failed")
		return render.DigestFailure(err)
	}

	result := lineup.Filter(resp.EventList(), now, loc, lineup.Options{
		ExcludedPrefixes: app.Config.Venue.ExcludedPrefixes,
	})
	for _, sk := range result.Skipped {
		app.Logger.Warn().Err(sk.Reason).Str("event", sk.Name).Msg("event dropped from digest")
	}

	return render.Digest(result.Events, now, now)
}

func publishDigest(ctx context.Context, app *App, publisher *notify.Publisher) {
	msg := buildDigest(ctx, app)
	publisher.Publish(ctx, render.DigestSubject, msg)
}
