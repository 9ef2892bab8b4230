package feed

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/arenago/internal/arena"
	"github.com/udisondev/arenago/internal/config"
	"github.com/udisondev/arenago/internal/testutil"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + Path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub(config.FeedConfig{})
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	defer hub.Close()

	a, b := dial(t, srv), dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 5*time.Millisecond)

	hub.Publish(arena.Event{
		Type: arena.EventDoorOpened,
		Tick: 7,
		Data: arena.DoorEvent{Name: "red_gate", Team: "red", Min: [3]int32{0, 32, 0}, Max: [3]int32{2, 34, 0}},
	})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
		var got struct {
			Type string         `json:"type"`
			Tick uint64         `json:"tick"`
			Data map[string]any `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, "door_opened", got.Type)
		assert.Equal(t, uint64(7), got.Tick)
		assert.Equal(t, "red_gate", got.Data["name"])
		assert.Equal(t, []any{0.0, 32.0, 0.0}, got.Data["min"])
	}
}

func TestHub_Disconnect(t *testing.T) {
	hub := NewHub(config.FeedConfig{})
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_DropsSlowClient(t *testing.T) {
	hub := NewHub(config.FeedConfig{SendQueue: 1})
	slow := &client{addr: "slow", send: make(chan []byte, 1)}
	hub.clients[slow] = struct{}{}

	hub.Publish(arena.Event{Type: arena.EventDoorClosed, Tick: 1})
	assert.Equal(t, 1, hub.Clients())

	hub.Publish(arena.Event{Type: arena.EventDoorClosed, Tick: 2})
	assert.Equal(t, 0, hub.Clients())

	<-slow.send
	_, open := <-slow.send
	assert.False(t, open, "send queue closed on drop")
}

func TestHub_RejectsPlainHTTP(t *testing.T) {
	hub := NewHub(config.FeedConfig{})
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + Path)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, 0, hub.Clients())
}

func TestHub_RunShutsDownOnCancel(t *testing.T) {
	hub := NewHub(config.FeedConfig{})
	addr := testutil.FreeAddr(t)
	ctx, cancel := testutil.ContextWithCancel(t)

	done := make(chan error, 1)
	go func() { done <- hub.Run(ctx, addr) }()
	require.NoError(t, testutil.WaitForTCPReady(addr, 2*time.Second))

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+Path, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("feed server did not stop")
	}
	assert.Equal(t, 0, hub.Clients())
}
