package notify

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"venue-marquee/internal/config"
	apperrors "venue-marquee/internal/errors"
)

// SNSAPI is the subset of the SNS client used by SNSChannel. Tests
// substitute a fake.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSChannel publishes messages to an SNS topic for downstream
// delivery (e.g. an email subscription).
type SNSChannel struct {
	api      SNSAPI
	topicARN string
}

// NewSNSChannel creates an SNS channel from configuration. A missing
// topic ARN is not an error: the channel comes back disabled and
// publishing through it is a no-op. Only a failure to assemble the
// AWS client itself is returned.
func NewSNSChannel(ctx context.Context, cfg config.SNSConfig) (*SNSChannel, error) {
	if cfg.TopicARN == "" {
		return &SNSChannel{}, nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, apperrors.Wrap(err, "loading AWS config")
	}

	return &SNSChannel{
		api:      sns.NewFromConfig(awsCfg),
		topicARN: cfg.TopicARN,
	}, nil
}

// NewSNSChannelWithAPI creates an SNS channel over an existing API
// client. Used by tests.
func NewSNSChannelWithAPI(api SNSAPI, topicARN string) *SNSChannel {
	return &SNSChannel{api: api, topicARN: topicARN}
}

// Name returns the name of the channel.
func (s *SNSChannel) Name() string {
	return "sns"
}

// IsEnabled returns whether the channel has a publish target.
func (s *SNSChannel) IsEnabled() bool {
	return s.topicARN != "" && s.api != nil
}

// Send publishes the message once to the configured topic.
func (s *SNSChannel) Send(ctx context.Context, subject, message string) error {
	if !s.IsEnabled() {
		return apperrors.ErrTopicMissing
	}

	_, err := s.api.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return apperrors.Wrap(err, "sns publish")
	}
	return nil
}
