// Package render produces the kiosk slideshow page and the
// plain-text daily digest from a filtered schedule.
package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	apperrors "venue-marquee/internal/errors"
	"venue-marquee/internal/lineup"
)

const (
	headerDateLayout = "Monday • 01-02-2006"
	clockLayout      = "3:04 PM"
)

// slideshowTemplate is the self-contained kiosk page. The embedded
// script advances slides in display order every 10 seconds, looping.
const slideshowTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Today's Events</title>
<style>
body {
    background: #000;
    color: white;
    font-family: Arial, sans-serif;
    margin: 0;
    height: 100vh;
    display: flex;
    justify-content: center;
    align-items: center;
}
.container {
    width: 100%;
    text-align: center;
}
.header {
    font-size: 26px;
    color: #bbb;
    margin-bottom: 10px;
}
.slide {
    display: none;
    padding: 20px;
    animation: fade 0.8s ease-in-out;
}
@keyframes fade {
    from { opacity: 0; }
    to { opacity: 1; }
}
.title {
    font-size: 36px;
    font-weight: bold;
    color: #00e5ff;
    line-height: 1.2;
}
.time-line {
    font-size: 34px;
    margin-top: 14px;
}
.time-upcoming { color: #ffd54f; }
.time-later { color: #64b5f6; }
.time-live {
    color: #ff5252;
    font-weight: bold;
}
.live-badge {
    display: inline-block;
    margin-left: 12px;
    padding: 6px 14px;
    border-radius: 8px;
    background: #ff1744;
    color: white;
    font-size: 18px;
    animation: pulse 1.2s infinite;
}
@keyframes pulse {
    0% { opacity: 1; }
    50% { opacity: 0.6; }
    100% { opacity: 1; }
}
.empty { color: #777; }
</style>
</head>
<body>
<div class="container">
<div class="header">{{.Header}}</div>
<div id="slides">
{{- if .Slides}}
{{- range .Slides}}
<div class="slide">
    <div class="title">{{.Name}}</div>
    <div class="time-line {{.TimeClass}}">{{.TimeRange}}{{if .Live}} <span class="live-badge">LIVE</span>{{end}}</div>
</div>
{{- end}}
{{- else}}
<div class="slide" style="display:block;">
    <div class="title empty">No events today</div>
</div>
{{- end}}
</div>
<script>
let slides = document.querySelectorAll(".slide");
let index = 0;
function showSlide(i) {
    slides.forEach(s => s.style.display = "none");
    slides[i].style.display = "block";
}
if (slides.length > 0) {
    showSlide(0);
    setInterval(() => {
        index = (index + 1) % slides.length;
        showSlide(index);
    }, 10000);
}
</script>
</div>
</body>
</html>`

const placeholderTemplate = `<html><body style="background:black;color:white;font-family:sans-serif;text-align:center;padding-top:40vh;"><h2>{{.}}</h2></body></html>`

var (
	slideshowTmpl   = template.Must(template.New("slideshow").Parse(slideshowTemplate))
	placeholderTmpl = template.Must(template.New("placeholder").Parse(placeholderTemplate))
)

// slide is the view of one event in the rotation.
type slide struct {
	Name      string
	TimeClass string
	TimeRange string
	Live      bool
}

// slideshowData is the template payload for the kiosk page.
type slideshowData struct {
	Header string
	Slides []slide
}

// Slideshow renders the auto-advancing kiosk page for the given
// schedule. Classification is evaluated against now at render time.
// The result is always a complete document; template execution over
// this fixed data shape cannot fail, and if it somehow did the
// placeholder page is returned instead.
func Slideshow(events []lineup.Event, today, now time.Time) string {
	data := slideshowData{
		Header: today.Format(headerDateLayout),
		Slides: make([]slide, 0, len(events)),
	}

	for _, ev := range events {
		c := lineup.Classify(ev.Start, now)
		data.Slides = append(data.Slides, slide{
			Name:      ev.Name,
			TimeClass: "time-" + c.String(),
			TimeRange: fmt.Sprintf("%s – %s", ev.Start.Format(clockLayout), ev.End().Format(clockLayout)),
			Live:      c == lineup.Live,
		})
	}

	var b strings.Builder
	if err := slideshowTmpl.Execute(&b, data); err != nil {
		return Placeholder("Display temporarily unavailable")
	}
	return b.String()
}

// Placeholder renders a minimal styled page carrying a short
// human-readable reason. It is used whenever the listing cannot be
// fetched; the kiosk still receives well-formed HTML and a 200.
func Placeholder(reason string) string {
	var b strings.Builder
	if err := placeholderTmpl.Execute(&b, reason); err != nil {
		return "<html><body><h2>Display temporarily unavailable</h2></body></html>"
	}
	return b.String()
}

// FailureReason maps an upstream failure to the short reason shown on
// the kiosk placeholder page.
func FailureReason(err error) string {
	var statusErr *apperrors.UpstreamStatusError
	switch {
	case apperrors.Is(err, apperrors.ErrCredentialMissing):
		return "Ticket service not configured"
	case apperrors.As(err, &statusErr):
		return fmt.Sprintf("Ticket service temporarily unavailable (%d)", statusErr.StatusCode)
	case apperrors.Is(err, apperrors.ErrResponseUnparseable):
		return "Ticket service sent an unreadable response"
	default:
		return "Ticket service unavailable"
	}
}
