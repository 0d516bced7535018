// Package lineup turns a raw venue listing into today's ordered,
// classified event schedule. It is the one shared implementation
// behind both the kiosk page and the daily digest.
package lineup

import (
	"sort"
	"strings"
	"time"

	apperrors "venue-marquee/internal/errors"
	"venue-marquee/internal/ticketmaster"
)

// EventDuration is the assumed length of every event. The provider
// never reports a true duration, so the display window for an event
// is always [start, start+EventDuration].
const EventDuration = 2 * time.Hour

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// DefaultExcludedPrefixes suppresses non-public listings such as
// suite packages, recovery vouchers, guest-pass bundles and internal
// fee line items. It is the one canonical list; both display paths
// draw from it unless configuration overrides it.
var DefaultExcludedPrefixes = []string{"Suites", "Recovery", "Wild", "Int Fee"}

// Event is one of today's events with its resolved start instant.
type Event struct {
	Name  string
	Start time.Time
}

// End returns the end of the event's assumed display window.
func (e Event) End() time.Time {
	return e.Start.Add(EventDuration)
}

// Classification tags an event relative to the current time.
type Classification int

const (
	// Later means the event starts more than EventDuration from now,
	// or is already over.
	Later Classification = iota
	// Upcoming means the event starts within EventDuration from now.
	Upcoming
	// Live means now falls inside the event's display window.
	Live
)

// String returns the display name of the classification.
func (c Classification) String() string {
	switch c {
	case Live:
		return "live"
	case Upcoming:
		return "upcoming"
	default:
		return "later"
	}
}

// Classify computes the classification of an event starting at start,
// evaluated at now. It is a pure function of the two instants:
//
//	Live     ⇔ now ∈ [start, start+EventDuration]
//	Upcoming ⇔ now < start and start−now ≤ EventDuration
//	Later    ⇔ otherwise
func Classify(start, now time.Time) Classification {
	end := start.Add(EventDuration)
	switch {
	case !now.Before(start) && !now.After(end):
		return Live
	case now.Before(start) && start.Sub(now) <= EventDuration:
		return Upcoming
	default:
		return Later
	}
}

// Options control filtering.
type Options struct {
	// ExcludedPrefixes drops events whose display names begin with
	// any of the listed strings. Nil means DefaultExcludedPrefixes;
	// an empty non-nil slice excludes nothing.
	ExcludedPrefixes []string
}

// Skipped records an event dropped for a malformed field. Dropping is
// per event; one bad literal never aborts the whole listing.
type Skipped struct {
	ID     string
	Name   string
	Reason error
}

// Result is the filtered, ordered schedule for one day.
type Result struct {
	Events  []Event
	Skipped []Skipped
}

// Filter selects the events of raw whose start date equals today in
// loc, drops excluded name prefixes, resolves each start instant and
// sorts ascending by start. Events with an unparseable date are
// treated as not-today and silently excluded; events with a malformed
// time literal are dropped and reported in Result.Skipped.
//
// The sort is stable: events with equal starts keep their order in
// the source listing. That is the tie-break policy.
func Filter(raw []ticketmaster.Event, today time.Time, loc *time.Location, opts Options) Result {
	prefixes := opts.ExcludedPrefixes
	if prefixes == nil {
		prefixes = DefaultExcludedPrefixes
	}
	year, month, day := today.In(loc).Date()

	var res Result
	for _, ev := range raw {
		date, err := time.ParseInLocation(dateLayout, ev.Dates.Start.LocalDate, loc)
		if err != nil {
			continue
		}
		y, m, d := date.Date()
		if y != year || m != month || d != day {
			continue
		}
		if hasExcludedPrefix(ev.Name, prefixes) {
			continue
		}

		start, err := startInstant(ev, loc)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{ID: ev.ID, Name: ev.Name, Reason: err})
			continue
		}
		res.Events = append(res.Events, Event{Name: ev.Name, Start: start})
	}

	sort.SliceStable(res.Events, func(i, j int) bool {
		return res.Events[i].Start.Before(res.Events[j].Start)
	})
	return res
}

// startInstant combines the event's date with its time of day.
// Events without a time default to 23:59:59 so they sort to the end
// of the day.
func startInstant(ev ticketmaster.Event, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, ev.Dates.Start.LocalDate, loc)
	if err != nil {
		return time.Time{}, apperrors.NewFieldParseError(ev.ID, "localDate", ev.Dates.Start.LocalDate, err)
	}

	hour, minute, second := 23, 59, 59
	if lt := ev.Dates.Start.LocalTime; lt != "" {
		t, err := time.Parse(timeLayout, lt)
		if err != nil {
			return time.Time{}, apperrors.NewFieldParseError(ev.ID, "localTime", lt, err)
		}
		hour, minute, second = t.Clock()
	}

	y, m, d := date.Date()
	return time.Date(y, m, d, hour, minute, second, 0, loc), nil
}

func hasExcludedPrefix(name string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
