// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/localfix/localfix/internal/gesture"
	"github.com/localfix/localfix/internal/navigation"
)

const (
	maxMessageSize = 1024
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	writeWait      = 10 * time.Second
	maxClients     = 8
)

// newUpgrader creates a WebSocket upgrader that respects the configured allowed
// origins. When allowedOrigins is empty the upgrader accepts any origin.
func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowed := originSet(allowedOrigins)
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(allowed) == 0 {
				return true
			}
			_, ok := allowed[r.Header.Get("Origin")]
			return ok
		},
	}
}

// TouchFrame is a client → server touch sample in logical px. T is the
// client clock in unix milliseconds; ID optionally identifies the frame for
// deduplication.
type TouchFrame struct {
	ID    string  `json:"id,omitempty"`
	Phase string  `json:"phase"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	T     int64   `json:"t"`
}

// wsOutMessage is the envelope for server → client WebSocket messages.
type wsOutMessage struct {
	Type    string          `json:"type"` // "navigation" or "error"
	Payload *NavigationView `json:"payload,omitempty"`
	Message string          `json:"message,omitempty"`
}

func parsePhase(s string) (gesture.TouchPhase, error) {
	switch p := gesture.TouchPhase(s); p {
	case gesture.TouchStart, gesture.TouchMove, gesture.TouchEnd, gesture.TouchCancel:
		return p, nil
	}
	return "", fmt.Errorf("unknown touch phase %q", s)
}

// frameClock maps a client's clock onto the server's. The offset is fixed
// at the first frame of a connection, so intervals between client frames
// are preserved.
type frameClock struct {
	offset time.Duration
	set    bool
	now    func() time.Time
}

func (c *frameClock) at(clientMillis int64) time.Time {
	now := c.now()
	if clientMillis <= 0 {
		return now
	}
	client := time.UnixMilli(clientMillis)
	if !c.set {
		c.offset = now.Sub(client)
		c.set = true
	}
	return client.Add(c.offset)
}

// toTouch validates a frame and converts it to a gesture touch
func (c *frameClock) toTouch(f TouchFrame) (gesture.TouchMsg, error) {
	phase, err := parsePhase(f.Phase)
	if err != nil {
		return gesture.TouchMsg{}, err
	}
	if f.X < 0 || f.Y < 0 {
		return gesture.TouchMsg{}, fmt.Errorf("negative touch position (%v, %v)", f.X, f.Y)
	}
	return gesture.TouchMsg{Phase: phase, X: f.X, Y: f.Y, At: c.at(f.T)}, nil
}

// wsClient represents a single connected WebSocket client.
type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// offer queues data without blocking. It reports false when the buffer is full.
func (c *wsClient) offer(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// ClientRegistry manages all connected WebSocket clients.
type ClientRegistry struct {
	mu      sync.RWMutex
	clients map[*wsClient]struct{}
}

// NewClientRegistry creates a new client registry.
func NewClientRegistry() *ClientRegistry {
	return &ClientRegistry{clients: make(map[*wsClient]struct{})}
}

// Len returns the number of connected clients
func (r *ClientRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Broadcast sends a snapshot to every client.
func (r *ClientRegistry) Broadcast(s navigation.Snapshot) {
	view := ViewOf(s)
	data, err := json.Marshal(wsOutMessage{Type: "navigation", Payload: &view})
	if err != nil {
		getLog().Error().Err(err).Msg("Failed to marshal snapshot for WebSocket broadcast")
		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for c := range r.clients {
		if !c.offer(data) {
			getLog().Warn().Msg("Dropping snapshot for slow WebSocket client")
		}
	}
}

func (r *ClientRegistry) add(c *wsClient) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.clients) >= maxClients {
		return false
	}
	r.clients[c] = struct{}{}
	return true
}

func (r *ClientRegistry) remove(c *wsClient) {
	r.mu.Lock()
	delete(r.clients, c)
	r.mu.Unlock()
}

// Broadcaster fans published snapshots out to WebSocket clients
type Broadcaster struct {
	updates <-chan navigation.Snapshot
	clients *ClientRegistry
}

// NewBroadcaster creates a broadcaster reading from updates
func NewBroadcaster(updates <-chan navigation.Snapshot, clients *ClientRegistry) *Broadcaster {
	return &Broadcaster{updates: updates, clients: clients}
}

// Run dispatches snapshots until the channel is closed or ctx is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	for {
		select {
		case s, ok := <-b.updates:
			if !ok {
				return
			}
			b.clients.Broadcast(s)
		case <-ctx.Done():
			return
		}
	}
}

// HandleWebSocket upgrades an HTTP connection and forwards its touch frames
// into the program.
func (s *Server) HandleWebSocket(allowedOrigins []string) http.HandlerFunc {
	upgrader := newUpgrader(allowedOrigins)

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			getLog().Error().Err(err).Msg("WebSocket upgrade failed")
			return
		}

		client := &wsClient{conn: conn, send: make(chan []byte, 16)}
		if !s.clients.add(client) {
			getLog().Warn().Msg("WebSocket connection limit reached")
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too many connections"))
			conn.Close()
			return
		}
		getLog().Info().Str("remote", r.RemoteAddr).Msg("Touch client connected")

		if snap, ok := s.snapshots.Latest(); ok {
			view := ViewOf(snap)
			if data, err := json.Marshal(wsOutMessage{Type: "navigation", Payload: &view}); err == nil {
				// broadcasts may already have filled the buffer; they carry newer state
				client.offer(data)
			}
		}

		go client.writePump()
		s.readPump(client)
	}
}

func (s *Server) readPump(c *wsClient) {
	var tracking bool
	defer func() {
		// a dropped connection must not leave a swipe half-done
		if tracking {
			s.send(gesture.TouchMsg{Phase: gesture.TouchCancel, At: time.Now()})
		}
		s.clients.remove(c)
		close(c.send)
		c.conn.Close()
		getLog().Info().Msg("Touch client disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	clock := &frameClock{now: time.Now}
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				getLog().Error().Err(err).Msg("WebSocket read error")
			}
			return
		}

		var frame TouchFrame
		if err := json.Unmarshal(message, &frame); err != nil {
			c.reject("invalid frame: " + err.Error())
			continue
		}
		touch, err := clock.toTouch(frame)
		if err != nil {
			c.reject(err.Error())
			continue
		}
		if !s.dedup.ShouldProcess(frame.ID) {
			getLog().Debug().Str("frame_id", frame.ID).Msg("Duplicate touch frame dropped")
			continue
		}
		if !s.send(touch) {
			getLog().Debug().Msg("Touch frame dropped, no program attached")
			continue
		}
		tracking = touch.Phase == gesture.TouchStart || touch.Phase == gesture.TouchMove
	}
}

func (c *wsClient) reject(reason string) {
	getLog().Warn().Str("reason", reason).Msg("Touch frame rejected")
	data, err := json.Marshal(wsOutMessage{Type: "error", Message: reason})
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				getLog().Error().Err(err).Msg("WebSocket write error")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
