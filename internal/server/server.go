// Package server provides the HTTP server for the résumé page: the rendered
// page route, static asset delivery and a health endpoint. Request handling
// is stateless; every request renders from the same immutable content.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/thibault/resume-site/internal/rendering"
	"github.com/thibault/resume-site/internal/server/middleware"
	"github.com/thibault/resume-site/internal/types"
	"github.com/thibault/resume-site/web"
)

// stylesheetPath is the asset whose content hash doubles as the cache-bust
// token: the token changes exactly when the stylesheet changes.
const stylesheetPath = "static/css/resume.css"

// CacheBustToken derives the cache-bust token from the stylesheet bytes: it
// stays stable across restarts and changes exactly when the CSS changes.
func CacheBustToken(fsys fs.FS) (string, error) {
	css, err := fs.ReadFile(fsys, stylesheetPath)
	if err != nil {
		return "", fmt.Errorf("failed to read stylesheet: %w", err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(css))[:10], nil
}

// Config holds server configuration
type Config struct {
	Port  int
	Data  *types.ResumeData
	Debug bool
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	renderer   *rendering.Renderer
	data       *types.ResumeData
	staticFS   fs.FS
	cacheBust  string
	debug      bool
}

// New creates a new server instance. In debug mode, templates and static
// assets are read from the web/ directory on disk so edits show up without a
// restart; otherwise everything is served from the embedded filesystem.
func New(cfg Config) (*Server, error) {
	var fsys fs.FS = web.Assets
	if cfg.Debug {
		fsys = os.DirFS("web")
	}

	renderer, err := rendering.New(fsys, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	staticFS, err := fs.Sub(fsys, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	cacheBust, err := CacheBustToken(fsys)
	if err != nil {
		return nil, err
	}

	s := &Server{
		renderer:  renderer,
		data:      cfg.Data,
		staticFS:  staticFS,
		cacheBust: cacheBust,
		debug:     cfg.Debug,
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /static/{path...}", s.handleStatic)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.handler = middleware.RequestID(middleware.Logging(mux))

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully assembled handler, for tests and for serving on
// a caller-owned listener (PDF export).
func (s *Server) Handler() http.Handler {
	return s.handler
}

// CacheBust returns the current cache-bust token. Debug mode uses a
// per-request timestamp instead, so browsers always refetch during
// development.
func (s *Server) CacheBust() string {
	if s.debug {
		return strconv.FormatInt(time.Now().Unix(), 10)
	}
	return s.cacheBust
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[server] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[server] error: %v", err)
		}
	}()

	<-stop
	log.Println("[server] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("[server] stopped")
	return nil
}

// handleIndex renders the full résumé page. The page is rendered into a
// buffer first so a failed render produces a clean 500 instead of a partial
// body.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := &rendering.PageData{
		ResumeData: s.data,
		CacheBust:  s.CacheBust(),
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, page); err != nil {
		log.Printf("[server] failed to render page: %v request_id=%s",
			err, middleware.RequestIDFrom(r.Context()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// handleStatic serves one static asset. The cache-bust query parameter is
// ignored here on purpose: it only exists to defeat browser caching and never
// changes the returned bytes.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("path")

	data, err := fs.ReadFile(s.staticFS, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentType(name, data))
	if !s.debug {
		w.Header().Set("Cache-Control", "public, max-age=31536000")
	}
	_, _ = w.Write(data)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Printf("[server] error encoding JSON response: %v", err)
	}
}
