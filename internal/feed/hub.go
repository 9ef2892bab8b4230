// Package feed streams arena events to spectators over websocket.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/udisondev/arenago/internal/arena"
	"github.com/udisondev/arenago/internal/config"
)

// Path is the websocket endpoint.
const Path = "/feed"

// Hub fans arena events out to connected spectators.
// A spectator whose send queue is full is dropped.
type Hub struct {
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	queue        int

	mu      sync.Mutex
	clients map[*client]struct{}
}

var _ arena.EventSink = (*Hub)(nil)

// client — одно websocket-соединение зрителя.
type client struct {
	conn *websocket.Conn
	addr string
	send chan []byte
}

// NewHub creates a hub with the feed limits from cfg.
func NewHub(cfg config.FeedConfig) *Hub {
	h := &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		writeTimeout: cfg.WriteTimeout,
		queue:        cfg.SendQueue,
		clients:      make(map[*client]struct{}),
	}
	if h.writeTimeout <= 0 {
		h.writeTimeout = 5 * time.Second
	}
	if h.queue <= 0 {
		h.queue = 64
	}
	return h
}

// Handler returns the HTTP handler serving Path.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+Path, h.serveWS)
	return mux
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish encodes ev once and queues it for every spectator.
func (h *Hub) Publish(ev arena.Event) {
	msg, err := json.Marshal(ev)
	if err != nil {
		slog.Error("encoding feed event", "type", ev.Type, "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			slog.Warn("dropping slow spectator", "addr", c.addr)
			h.removeLocked(c)
		}
	}
}

// Close disconnects every spectator.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		h.removeLocked(c)
	}
}

// Run serves the feed on addr until ctx is canceled.
func (h *Hub) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		h.Close()
		if err != nil {
			return fmt.Errorf("shutting down feed server: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("feed server: %w", err)
	}
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("feed upgrade failed", "addr", r.RemoteAddr, "err", err)
		return
	}

	c := &client{
		conn: conn,
		addr: r.RemoteAddr,
		send: make(chan []byte, h.queue),
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	slog.Info("spectator connected", "addr", c.addr)

	go h.writePump(c)

	// Spectators don't send anything; reading detects the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(c)
	slog.Info("spectator disconnected", "addr", c.addr)
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			slog.Debug("feed write failed", "addr", c.addr, "err", err)
			h.remove(c)
		}
	}

	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(h.writeTimeout))
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// removeLocked closes c.send exactly once; h.mu must be held.
func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}
