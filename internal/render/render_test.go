package render

import (
	"strings"
	"testing"
	"time"

	apperrors "venue-marquee/internal/errors"
	"venue-marquee/internal/lineup"
)

var (
	// 2025-06-14 is a Saturday.
	today = time.Date(2025, time.June, 14, 12, 0, 0, 0, time.UTC)
	now   = time.Date(2025, time.June, 14, 20, 0, 0, 0, time.UTC)
)

func eventAt(name string, hour, minute int) lineup.Event {
	return lineup.Event{
		Name:  name,
		Start: time.Date(2025, time.June, 14, hour, minute, 0, 0, time.UTC),
	}
}

func TestDigestLiveEvent(t *testing.T) {
	events := []lineup.Event{eventAt("Concert X", 19, 0)}

	got := Digest(events, today, now)

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), got)
	}
	if lines[0] != "Saturday 06-14-2025 Events:" {
		t.Fatalf("wrong header: %q", lines[0])
	}
	if lines[1] != "- Concert X: 7:00 PM–9:00 PM (LIVE)" {
		t.Fatalf("wrong event line: %q", lines[1])
	}
}

func TestDigestNonLiveEventHasNoMarker(t *testing.T) {
	events := []lineup.Event{eventAt("Late Show", 23, 0)}

	got := Digest(events, today, now)
	if strings.Contains(got, "LIVE") {
		t.Fatalf("unexpected LIVE marker:\n%s", got)
	}
	if !strings.Contains(got, "- Late Show: 11:00 PM–1:00 AM") {
		t.Fatalf("missing event line:\n%s", got)
	}
}

func TestDigestEmpty(t *testing.T) {
	got := Digest(nil, today, now)
	want := "Saturday 06-14-2025: No events today."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDigestFailureStrings(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"missing credential", apperrors.ErrCredentialMissing, "Daily Events: API key missing"},
		{"unreachable", apperrors.ErrUpstreamUnreachable, "Daily Events: ticket service unreachable"},
		{"status code", apperrors.NewUpstreamStatusError(503), "Daily Events: Ticketmaster returned 503"},
		{"unparseable", apperrors.ErrResponseUnparseable, "Daily Events: failed parsing event data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DigestFailure(tt.err); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDigestFailureWrappedStatusError(t *testing.T) {
	err := apperrors.Wrap(apperrors.NewUpstreamStatusError(503), "fetching listing")
	got := DigestFailure(err)
	if !strings.Contains(got, "503") {
		t.Fatalf("expected status code in %q", got)
	}
}

func TestSlideshowNoEvents(t *testing.T) {
	got := Slideshow(nil, today, now)

	if count := strings.Count(got, `class="slide"`); count != 1 {
		t.Fatalf("expected exactly 1 slide, got %d", count)
	}
	if !strings.Contains(got, "No events today") {
		t.Fatalf("missing no-events slide:\n%s", got)
	}
	if !strings.Contains(got, "Saturday • 06-14-2025") {
		t.Fatalf("missing header date")
	}
}

func TestSlideshowSlidesAndLiveBadge(t *testing.T) {
	events := []lineup.Event{
		eventAt("Concert X", 19, 0),  // live at 20:00
		eventAt("Late Show", 23, 30), // later
	}

	got := Slideshow(events, today, now)

	if count := strings.Count(got, `class="slide"`); count != 2 {
		t.Fatalf("expected 2 slides, got %d", count)
	}
	if count := strings.Count(got, "live-badge"); count != 2 {
		// Once in the stylesheet, once on the live slide.
		t.Fatalf("expected LIVE badge on exactly one slide, badge count %d", count)
	}
	if !strings.Contains(got, `class="time-line time-live"`) ||
		!strings.Contains(got, `class="time-line time-later"`) {
		t.Fatalf("missing classification classes:\n%s", got)
	}
	if !strings.Contains(got, "7:00 PM – 9:00 PM") {
		t.Fatalf("missing formatted time range:\n%s", got)
	}
}

func TestSlideshowUpcomingClass(t *testing.T) {
	events := []lineup.Event{eventAt("Evening Gig", 21, 30)} // 90 minutes out

	got := Slideshow(events, today, now)
	if !strings.Contains(got, `class="time-line time-upcoming"`) {
		t.Fatalf("expected upcoming classification:\n%s", got)
	}
	if strings.Contains(got, `<span class="live-badge">LIVE</span>`) {
		t.Fatalf("unexpected LIVE badge for upcoming event")
	}
}

func TestSlideshowEscapesEventNames(t *testing.T) {
	events := []lineup.Event{eventAt(`<script>alert("x")</script>`, 19, 0)}

	got := Slideshow(events, today, now)
	if strings.Contains(got, `<script>alert`) {
		t.Fatalf("event name not escaped:\n%s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected escaped name in output")
	}
}

func TestSlideshowContainsRotationScript(t *testing.T) {
	got := Slideshow(nil, today, now)
	if !strings.Contains(got, "setInterval") || !strings.Contains(got, "10000") {
		t.Fatalf("missing 10s rotation script:\n%s", got)
	}
}

func TestPlaceholderCarriesReason(t *testing.T) {
	got := Placeholder("Ticket service unavailable")
	if !strings.Contains(got, "Ticket service unavailable") {
		t.Fatalf("missing reason:\n%s", got)
	}
	if !strings.HasPrefix(got, "<html>") || !strings.HasSuffix(got, "</html>") {
		t.Fatalf("placeholder is not a complete document:\n%s", got)
	}
}

func TestFailureReasonIncludesStatusCode(t *testing.T) {
	got := FailureReason(apperrors.NewUpstreamStatusError(503))
	if !strings.Contains(got, "503") {
		t.Fatalf("expected status code in %q", got)
	}
}
