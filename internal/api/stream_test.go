package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

const testCode = "AAAA1111"

// dialTestHub spins up a server that upgrades one connection into the hub
// and returns the client side of the socket.
func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.add(testCode, conn)
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	// The server registers the subscriber after the handshake returns;
	// wait for it before publishing.
	for i := 0; i < 100; i++ {
		hub.mu.Lock()
		n := len(hub.sessions[testCode])
		hub.mu.Unlock()
		if n == 1 {
			return client
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("subscriber never registered")
	return nil
}

func TestHub_ConcurrentPublishers(t *testing.T) {
	hub := NewHub()
	client := dialTestHub(t, hub)

	// Handler goroutines and the background scanner publish for the same
	// session at the same time; all frames must arrive intact.
	const publishers = 8
	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func(serial int) {
			defer wg.Done()
			hub.Publish(testCode, Snapshot{JoinCode: testCode, Phase: "playing", TurnSerial: serial})
		}(i)
	}
	wg.Wait()

	_ = client.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < publishers; i++ {
		var snap Snapshot
		if err := client.ReadJSON(&snap); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if snap.JoinCode != testCode {
			t.Fatalf("frame %d: unexpected join code %q", i, snap.JoinCode)
		}
	}
}

func TestHub_DropsDeadSubscriber(t *testing.T) {
	hub := NewHub()
	client := dialTestHub(t, hub)
	_ = client.Close()

	// Publishing into a closed connection must eventually unsubscribe it
	// instead of wedging the hub.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.Publish(testCode, Snapshot{JoinCode: testCode})
		hub.mu.Lock()
		n := len(hub.sessions[testCode])
		hub.mu.Unlock()
		if n == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("dead subscriber was never dropped")
}
