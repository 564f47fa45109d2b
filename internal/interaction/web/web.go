// Package web serves the price board over HTTP and websocket.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"bullion/internal/board"
	"bullion/internal/model"
	"bullion/internal/render"
)

const shutdownTimeout = 5 * time.Second

//go:embed templates/*.html
var templates embed.FS

type Board interface {
	Snapshot() board.Snapshot
	OnChange(listener board.Listener)
}

type CycleRunner interface {
	RunCycle(ctx context.Context) bool
}

type Archive interface {
	Latest(ctx context.Context, source string) (*model.PriceSnapshot, error)
}

type Interaction struct {
	logger   *slog.Logger
	router   *chi.Mux
	server   *http.Server
	page     *template.Template
	renderer *render.Renderer
	board    Board
	cycle    CycleRunner
	archive  Archive
	hub      *hub
	refresh  int
}

func NewInteraction(logger *slog.Logger, addr string, interval time.Duration, renderer *render.Renderer, b Board, cycle CycleRunner) *Interaction {
	that := &Interaction{
		logger:   logger.With("component", "web"),
		router:   chi.NewRouter(),
		page:     template.Must(template.ParseFS(templates, "templates/index.html")),
		renderer: renderer,
		board:    b,
		cycle:    cycle,
		refresh:  int(math.Max(1, math.Ceil(interval.Seconds()))),
	}

	that.hub = newHub(that.logger, that.payload)
	b.OnChange(that.hub.broadcast)

	that.setupMiddleware()
	that.setupRoutes()

	that.server = &http.Server{
		Addr:              addr,
		Handler:           that.router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	return that
}

// WithArchive serves the latest archived snapshot per source under /api/archive.
func (that *Interaction) WithArchive(archive Archive) *Interaction {
	that.archive = archive
	return that
}

// Handler exposes the router, mostly for tests.
func (that *Interaction) Handler() http.Handler {
	return that.router
}

// Start serves until ctx is done, then shuts the server down gracefully.
func (that *Interaction) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start", "addr", that.server.Addr)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting HTTP server")
		if err := that.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down HTTP server")
	that.hub.closeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := that.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	return nil
}

func (that *Interaction) setupMiddleware() {
	that.router.Use(middleware.Recoverer)
	that.router.Use(middleware.RequestID)
	that.router.Use(middleware.RealIP)
	that.router.Use(that.loggingMiddleware)
}

func (that *Interaction) setupRoutes() {
	that.router.Get("/", that.handleIndex)
	that.router.Post("/refresh", that.handleRefresh)
	that.router.Get("/health", that.handleHealth)
	that.router.Get("/ws", that.handleWebSocket)

	that.router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/prices", that.handlePrices)
		r.Get("/archive/{source}", that.handleLatestSnapshot)
	})
}

func (that *Interaction) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		that.logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
