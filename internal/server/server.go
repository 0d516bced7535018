// Package server serves the kiosk display page.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"venue-marquee/internal/config"
	"venue-marquee/internal/lineup"
	"venue-marquee/internal/render"
	"venue-marquee/internal/ticketmaster"
)

// Server renders the slideshow page for every inbound request.
type Server struct {
	cfg    *config.Config
	client *ticketmaster.Client
	logger zerolog.Logger
	mux    *http.ServeMux
}

// NewServer constructs a new Server.
func NewServer(cfg *config.Config, client *ticketmaster.Client, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		client: client,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

// Handler returns the underlying http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)

	// Any other method and path triggers a render. The kiosk just
	// points a browser here.
	s.mux.HandleFunc("/", s.handleDisplay)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleDisplay answers every request with HTTP 200 and a complete
// text/html document. Upstream failures degrade the content to a
// placeholder page, never the status code.
func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	loc := s.cfg.Location()
	now := time.Now().In(loc)

	page := s.renderPage(r.Context(), now, loc)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

func (s *Server) renderPage(ctx context.Context, now time.Time, loc *time.Location) string {
	resp, err := s.client.Events(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("listing fetch failed")
		return render.Placeholder(render.FailureReason(err))
	}

	result := lineup.Filter(resp.EventList(), now, loc, lineup.Options{
		ExcludedPrefixes: s.cfg.Venue.ExcludedPrefixes,
	})
	for _, sk := range result.Skipped {
		s.logger.Warn().Err(sk.Reason).Str("event", sk.Name).Msg("event dropped from display")
	}
	s.logger.Debug().
		Int("listed", resp.Page.TotalElements).
		Int("today", len(result.Events)).
		Msg("rendered display page")

	return render.Slideshow(result.Events, now, now)
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Listen,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("listen", s.cfg.Server.Listen).Msg("starting kiosk server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
