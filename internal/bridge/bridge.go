// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bridge is the touch bridge: a small HTTP + WebSocket server that
// forwards touch frames from a companion device into the running TUI and
// publishes the navigation stack to observers.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/localfix/localfix/internal/config"
	"github.com/localfix/localfix/internal/logger"
	"github.com/rs/zerolog"
)

func getLog() *zerolog.Logger {
	l := logger.GetBridgeLogger()
	return &l
}

// Sender delivers messages into the Bubble Tea program
type Sender interface {
	Send(msg tea.Msg)
}

// Server is the touch bridge server.
type Server struct {
	httpServer  *http.Server
	snapshots   *SnapshotHolder
	clients     *ClientRegistry
	broadcaster *Broadcaster
	dedup       *FrameDeduplicator

	mu     sync.RWMutex
	sender Sender
}

// New creates and wires up the bridge server. It does not start listening;
// call Run() for that.
func New(cfg *config.BridgeConfig, snapshots *SnapshotHolder) *Server {
	s := &Server{
		snapshots: snapshots,
		clients:   NewClientRegistry(),
		dedup:     NewFrameDeduplicator(time.Minute),
	}
	s.broadcaster = NewBroadcaster(snapshots.Updates(), s.clients)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(AccessLog)
	r.Use(Recover)
	r.Use(CORS(cfg.AllowedOrigins))

	r.Get("/healthz", s.Healthz)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/navigation", s.GetNavigation)
	})
	r.With(RequireUpgrade).Get("/ws", s.HandleWebSocket(cfg.AllowedOrigins))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Attach sets the program touch frames are forwarded to. Frames received
// before a program is attached are dropped.
func (s *Server) Attach(sender Sender) {
	s.mu.Lock()
	s.sender = sender
	s.mu.Unlock()
}

func (s *Server) send(msg tea.Msg) bool {
	s.mu.RLock()
	sender := s.sender
	s.mu.RUnlock()
	if sender == nil {
		return false
	}
	sender.Send(msg)
	return true
}

// Run starts the snapshot broadcaster and the HTTP server.
// Blocks until the server is shut down or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go s.broadcaster.Run(ctx)
	go s.dedup.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	}()

	getLog().Info().Str("addr", s.httpServer.Addr).Msg("Touch bridge listening")
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
