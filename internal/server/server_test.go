package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"venue-marquee/internal/config"
	"venue-marquee/internal/ticketmaster"
)

func newTestServer(t *testing.T, upstream http.HandlerFunc) *Server {
	t.Helper()

	api := httptest.NewServer(upstream)
	t.Cleanup(api.Close)

	client := ticketmaster.NewClient("test-key", "KovZpZA6AJdA")
	client.SetBaseURL(api.URL)

	cfg := &config.Config{
		Venue:  config.VenueConfig{ID: "KovZpZA6AJdA", Timezone: "UTC"},
		Server: config.ServerConfig{Listen: ":0"},
	}
	return NewServer(cfg, client, zerolog.Nop())
}

func TestDisplayRendersTodaysEvents(t *testing.T) {
	today := time.Now().UTC().Format("2006-01-02")
	listing := fmt.Sprintf(`{
		"_embedded": {"events": [
			{"name": "Concert X", "id": "evt-1",
			 "dates": {"start": {"localDate": %q, "localTime": "19:00:00"}}},
			{"name": "Suites Package A", "id": "evt-2",
			 "dates": {"start": {"localDate": %q, "localTime": "19:00:00"}}}
		]},
		"page": {"size": 20, "totalElements": 2, "totalPages": 1, "number": 0}
	}`, today, today)

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listing))
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("wrong content type: %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Concert X") {
		t.Fatalf("today's event missing from page:\n%s", body)
	}
	if strings.Contains(body, "Suites Package A") {
		t.Fatalf("excluded event rendered:\n%s", body)
	}
}

func TestDisplayDegradesOnUpstreamFailure(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("upstream failure must still yield 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "503") {
		t.Fatalf("placeholder should name the upstream status:\n%s", rec.Body.String())
	}
}

func TestDisplayAnswersAnyPathAndMethod(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page": {"size": 20, "totalElements": 0, "totalPages": 0, "number": 0}}`))
	})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/anything/else", nil),
		httptest.NewRequest(http.MethodPost, "/", nil),
	} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s %s: expected 200, got %d", req.Method, req.URL.Path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "No events today") {
			t.Fatalf("%s %s: expected empty-day slide", req.Method, req.URL.Path)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("health check failed: %d %q", rec.Code, rec.Body.String())
	}
}
