// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"
	"github.com/localfix/localfix/internal/config"
	"github.com/localfix/localfix/internal/gesture"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func newTestServer(t *testing.T) (*Server, *SnapshotHolder, *httptest.Server) {
	t.Helper()
	holder := NewSnapshotHolder()
	srv := New(&config.BridgeConfig{Host: "127.0.0.1", Port: 0}, holder)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, holder, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func receive(t *testing.T, ch chanSender) tea.Msg {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a forwarded message")
		return nil
	}
}

func snapshot(version uint64, ids ...navigation.ScreenID) navigation.Snapshot {
	return navigation.Snapshot{
		Version: version,
		Action:  navigation.ActionPush,
		Source:  navigation.SourceScreen,
		Screens: ids,
		Current: navigation.To(ids[len(ids)-1]),
	}
}

func TestHealthz(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["attached"])
}

func TestGetNavigation(t *testing.T) {
	_, holder, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/navigation")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	holder.Publish(snapshot(3, navigation.Home, navigation.Settings))

	resp, err = http.Get(ts.URL + "/api/v1/navigation")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view NavigationView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, uint64(3), view.Version)
	assert.Equal(t, []string{"home", "settings"}, view.Screens)
	assert.Equal(t, "settings", view.Current)
	assert.Equal(t, 2, view.Depth)
	assert.Equal(t, "push", view.Action)
}

func TestSnapshotHolder_PublishNeverBlocks(t *testing.T) {
	holder := NewSnapshotHolder()
	for i := 0; i < 100; i++ {
		holder.Publish(snapshot(uint64(i), navigation.Home))
	}

	latest, ok := holder.Latest()
	require.True(t, ok)
	assert.Equal(t, uint64(99), latest.Version)
}

func TestWebSocket_ForwardsTouches(t *testing.T) {
	srv, _, ts := newTestServer(t)
	sent := make(chanSender, 8)
	srv.Attach(sent)

	conn := dial(t, ts)
	base := time.Now().UnixMilli()
	require.NoError(t, conn.WriteJSON(TouchFrame{Phase: "start", X: 10, Y: 100, T: base}))
	require.NoError(t, conn.WriteJSON(TouchFrame{Phase: "move", X: 60, Y: 100, T: base + 25}))

	start, ok := receive(t, sent).(gesture.TouchMsg)
	require.True(t, ok)
	assert.Equal(t, gesture.TouchStart, start.Phase)
	assert.Equal(t, 10.0, start.X)

	move := receive(t, sent).(gesture.TouchMsg)
	assert.Equal(t, gesture.TouchMove, move.Phase)
	assert.Equal(t, 25*time.Millisecond, move.At.Sub(start.At), "client intervals are preserved")
}

func TestWebSocket_RejectsBadFrames(t *testing.T) {
	srv, _, ts := newTestServer(t)
	srv.Attach(make(chanSender, 8))
	conn := dial(t, ts)

	require.NoError(t, conn.WriteJSON(TouchFrame{Phase: "hover", X: 1, Y: 1}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var out wsOutMessage
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, "error", out.Type)
	assert.Contains(t, out.Message, "hover")
}

func TestWebSocket_DropsDuplicateFrames(t *testing.T) {
	srv, _, ts := newTestServer(t)
	sent := make(chanSender, 8)
	srv.Attach(sent)
	conn := dial(t, ts)

	frame := TouchFrame{ID: "f-1", Phase: "start", X: 5, Y: 5}
	require.NoError(t, conn.WriteJSON(frame))
	require.NoError(t, conn.WriteJSON(frame))
	require.NoError(t, conn.WriteJSON(TouchFrame{ID: "f-2", Phase: "end", X: 5, Y: 5}))

	assert.Equal(t, gesture.TouchStart, receive(t, sent).(gesture.TouchMsg).Phase)
	assert.Equal(t, gesture.TouchEnd, receive(t, sent).(gesture.TouchMsg).Phase)
}

func TestWebSocket_DisconnectCancelsSwipe(t *testing.T) {
	srv, _, ts := newTestServer(t)
	sent := make(chanSender, 8)
	srv.Attach(sent)
	conn := dial(t, ts)

	require.NoError(t, conn.WriteJSON(TouchFrame{Phase: "start", X: 5, Y: 5}))
	receive(t, sent)
	conn.Close()

	assert.Equal(t, gesture.TouchCancel, receive(t, sent).(gesture.TouchMsg).Phase)
}

func TestWebSocket_BroadcastsSnapshots(t *testing.T) {
	srv, holder, ts := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.broadcaster.Run(ctx)

	conn := dial(t, ts)
	require.Eventually(t, func() bool { return srv.clients.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	holder.Publish(snapshot(7, navigation.Home, navigation.MyReports))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var out wsOutMessage
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, "navigation", out.Type)
	require.NotNil(t, out.Payload)
	assert.Equal(t, "myReports", out.Payload.Current)
}

func TestFrameDeduplicator(t *testing.T) {
	d := NewFrameDeduplicator(time.Minute)
	now := time.Now()
	d.now = func() time.Time { return now }

	assert.True(t, d.ShouldProcess(""))
	assert.True(t, d.ShouldProcess(""))
	assert.True(t, d.ShouldProcess("a"))
	assert.False(t, d.ShouldProcess("a"))

	now = now.Add(2 * time.Minute)
	d.expire()
	assert.True(t, d.ShouldProcess("a"), "expired IDs are forgotten")
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://phone.local"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://phone.local")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://phone.local", rec.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWebSocket_RequiresUpgrade(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUpgradeRequired, resp.StatusCode)
	assert.Equal(t, "websocket", resp.Header.Get("Upgrade"))
}

func TestRequestIDHeader(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRecover(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestClientOffer_NeverBlocks(t *testing.T) {
	c := &wsClient{send: make(chan []byte, 1)}

	assert.True(t, c.offer([]byte("first")))

	done := make(chan bool, 1)
	go func() { done <- c.offer([]byte("second")) }()
	select {
	case queued := <-done:
		assert.False(t, queued, "a full buffer drops the message")
	case <-time.After(time.Second):
		t.Fatal("offer blocked on a full buffer")
	}
	assert.Equal(t, []byte("first"), <-c.send)
}
