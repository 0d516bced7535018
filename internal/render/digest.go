package render

import (
	"fmt"
	"strings"
	"time"

	apperrors "venue-marquee/internal/errors"
	"venue-marquee/internal/lineup"
)

const digestDateLayout = "Monday 01-02-2006"

// DigestSubject is the subject line used when the digest is published
// to a channel that carries one.
const DigestSubject = "Daily Events"

// Digest renders the plain-text daily summary: a header line followed
// by one line per event. An empty schedule produces the explicit
// no-events line, never an error.
func Digest(events []lineup.Event, today, now time.Time) string {
	if len(events) == 0 {
		return fmt.Sprintf("%s: No events today.", today.Format(digestDateLayout))
	}

	lines := make([]string, 0, len(events)+1)
	lines = append(lines, fmt.Sprintf("%s Events:", today.Format(digestDateLayout)))

	for _, ev := range events {
		live := ""
		if lineup.Classify(ev.Start, now) == lineup.Live {
			live = " (LIVE)"
		}
		lines = append(lines, fmt.Sprintf("- %s: %s–%s%s",
			ev.Name, ev.Start.Format(clockLayout), ev.End().Format(clockLayout), live))
	}

	return strings.Join(lines, "\n")
}

// DigestFailure maps an upstream failure to the fixed text sent in
// place of a digest. Each cause has a distinct string; a non-success
// status interpolates the numeric code.
func DigestFailure(err error) string {
	var statusErr *apperrors.UpstreamStatusError
	switch {
	case apperrors.Is(err, apperrors.ErrCredentialMissing):
		return "Daily Events: API key missing"
	case apperrors.As(err, &statusErr):
		return fmt.Sprintf("Daily Events: Ticketmaster returned %d", statusErr.StatusCode)
	case apperrors.Is(err, apperrors.ErrResponseUnparseable):
		return "Daily Events: failed parsing event data"
	default:
		return "Daily Events: ticket service unreachable"
	}
}
