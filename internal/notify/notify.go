// Package notify publishes the daily digest to configured
// notification channels.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// Channel defines the interface for a notification channel.
type Channel interface {
	Name() string
	Send(ctx context.Context, subject, message string) error
	IsEnabled() bool
}

// Publisher fans a message out to every enabled channel. Delivery is
// best effort: a disabled channel is a logged no-op and a failed send
// is logged and swallowed, so the triggering invocation always
// completes.
type Publisher struct {
	channels []Channel
	logger   zerolog.Logger
}

// NewPublisher creates a Publisher over the given channels.
func NewPublisher(logger zerolog.Logger, channels ...Channel) *Publisher {
	return &Publisher{
		channels: channels,
		logger:   logger,
	}
}

// AddChannel adds a notification channel.
func (p *Publisher) AddChannel(ch Channel) {
	p.channels = append(p.channels, ch)
}

// Publish sends the message once to each enabled channel. No caller
// requires an acknowledgment; there are no retries.
func (p *Publisher) Publish(ctx context.Context, subject, message string) {
	for _, ch := range p.channels {
		if !ch.IsEnabled() {
			p.logger.Info().Str("channel", ch.Name()).Msg("channel not configured, skipping publish")
			continue
		}
		if err := ch.Send(ctx, subject, message); err != nil {
			p.logger.Error().Err(err).Str("channel", ch.Name()).Msg("publish failed")
			continue
		}
		p.logger.Info().Str("channel", ch.Name()).Msg("digest published")
	}
}
