package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/rs/zerolog"

	"venue-marquee/internal/config"
)

type fakeSNS struct {
	calls []sns.PublishInput
	err   error
}

func (f *fakeSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.calls = append(f.calls, *params)
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{}, nil
}

func TestSNSChannelDisabledWithoutTopic(t *testing.T) {
	ch, err := NewSNSChannel(context.Background(), config.SNSConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.IsEnabled() {
		t.Fatalf("channel without topic ARN must be disabled")
	}
}

func TestSNSChannelSendPassesThrough(t *testing.T) {
	fake := &fakeSNS{}
	ch := NewSNSChannelWithAPI(fake, "arn:aws:sns:us-east-1:123456789012:daily-events")

	err := ch.Send(context.Background(), "Daily Events", "Saturday 06-14-2025: No events today.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fake.calls) != 1 {
		t.Fatalf("expected 1 publish, got %d", len(fake.calls))
	}
	call := fake.calls[0]
	if *call.TopicArn != "arn:aws:sns:us-east-1:123456789012:daily-events" {
		t.Fatalf("wrong topic: %q", *call.TopicArn)
	}
	if *call.Subject != "Daily Events" {
		t.Fatalf("wrong subject: %q", *call.Subject)
	}
	if *call.Message != "Saturday 06-14-2025: No events today." {
		t.Fatalf("wrong message: %q", *call.Message)
	}
}

func TestPublisherSkipsDisabledChannel(t *testing.T) {
	fake := &fakeSNS{}
	ch := NewSNSChannelWithAPI(fake, "")

	publisher := NewPublisher(zerolog.Nop(), ch)
	publisher.Publish(context.Background(), "Daily Events", "hello")

	if len(fake.calls) != 0 {
		t.Fatalf("disabled channel must not be called, got %d publishes", len(fake.calls))
	}
}

func TestPublisherSwallowsSendFailure(t *testing.T) {
	fake := &fakeSNS{err: errors.New("throttled")}
	ch := NewSNSChannelWithAPI(fake, "arn:aws:sns:us-east-1:123456789012:daily-events")

	publisher := NewPublisher(zerolog.Nop(), ch)
	// Must not panic or propagate the failure.
	publisher.Publish(context.Background(), "Daily Events", "hello")

	if len(fake.calls) != 1 {
		t.Fatalf("expected the send to be attempted once, got %d", len(fake.calls))
	}
}

func TestPublisherFansOutToAllEnabledChannels(t *testing.T) {
	first := &fakeSNS{}
	second := &fakeSNS{err: errors.New("boom")}

	publisher := NewPublisher(zerolog.Nop(),
		NewSNSChannelWithAPI(first, "arn:aws:sns:us-east-1:123456789012:a"),
		NewSNSChannelWithAPI(second, "arn:aws:sns:us-east-1:123456789012:b"),
	)
	publisher.Publish(context.Background(), "Daily Events", "hello")

	if len(first.calls) != 1 || len(second.calls) != 1 {
		t.Fatalf("expected both channels attempted, got %d and %d",
			len(first.calls), len(second.calls))
	}
}

func TestWebhookChannelPostsJSON(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("wrong content type: %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding payload: %v", err)
		}
	}))
	defer srv.Close()

	ch := NewWebhookChannel(config.WebhookConfig{Enabled: true, URL: srv.URL})
	if !ch.IsEnabled() {
		t.Fatalf("configured webhook must be enabled")
	}

	if err := ch.Send(context.Background(), "Daily Events", "hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["subject"] != "Daily Events" || got["message"] != "hello" {
		t.Fatalf("wrong payload: %+v", got)
	}
}

func TestWebhookChannelReportsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ch := NewWebhookChannel(config.WebhookConfig{Enabled: true, URL: srv.URL})
	if err := ch.Send(context.Background(), "Daily Events", "hello"); err == nil {
		t.Fatalf("expected error for non-2xx response")
	}
}
