package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"
	"windvane/internal/display"
	"windvane/internal/locator"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ViewSource is the screen the server exposes
type ViewSource interface {
	Snapshot() display.View
	Fix() (locator.Fix, bool)
}

type WindResponse struct {
	display.View
	Location *locator.Fix `json:"location,omitempty"`
}

// Server represents the HTTP server
type Server struct {
	screen ViewSource
	mux    *http.ServeMux
}

// NewServer creates a new HTTP server
func NewServer(screen ViewSource) *Server {
	s := &Server{
		screen: screen,
		mux:    http.NewServeMux(),
	}

	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/wind", s.handleWind)
	s.mux.Handle("/metrics", promhttp.Handler())

	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start serves on addr until ctx is cancelled
func (s *Server) Start(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown: %v", err)
		}
	}()

	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// handleHealth returns the server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().String(),
	})
}

// handleWind returns what the screen currently shows
func (s *Server) handleWind(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := WindResponse{View: s.screen.Snapshot()}
	if fix, ok := s.screen.Fix(); ok {
		resp.Location = &fix
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
