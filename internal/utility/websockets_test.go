package utility

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connect opens a client socket registered on hub under userID.
func connect(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()
	registered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(userID, conn)
		close(registered)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	<-registered
	return conn
}

func TestHubNotify(t *testing.T) {
	hub := NewHub()
	client := connect(t, hub, "user-1")
	assert.Equal(t, 1, hub.Connections("user-1"))

	hub.Notify("user-2", "vitals.changed") // nobody listening
	hub.Notify("user-1", "vitals.changed")

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	require.NoError(t, client.ReadJSON(&ev))
	assert.Equal(t, "vitals.changed", ev.Type)
	assert.False(t, ev.At.IsZero())
}

func TestHubStalledSocketOnlyDelaysItsOwner(t *testing.T) {
	hub := NewHub()
	connect(t, hub, "user-1")
	other := connect(t, hub, "user-2")

	// Hold user-1's socket as if a write on it were stuck.
	stalled := hub.snapshot("user-1")
	require.Len(t, stalled, 1)
	stalled[0].mu.Lock()
	released := false
	release := func() {
		if !released {
			released = true
			stalled[0].mu.Unlock()
		}
	}
	t.Cleanup(release)

	blocked := make(chan struct{})
	go func() {
		hub.Notify("user-1", "vitals.changed")
		close(blocked)
	}()

	done := make(chan struct{})
	go func() {
		hub.Notify("user-2", "mood.changed")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notify for user-2 waited on user-1's socket")
	}

	other.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	require.NoError(t, other.ReadJSON(&ev))
	assert.Equal(t, "mood.changed", ev.Type)

	release()
	<-blocked
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	hub.Unregister("ghost", nil)
	assert.Equal(t, 0, hub.Connections("ghost"))
}
