package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/DADGADD/Venus/internal/constants"
	"github.com/DADGADD/Venus/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// subscriberBuffer bounds how many snapshots may queue per subscriber
	// before the hub considers it stalled and drops it.
	subscriberBuffer = 8
	writeTimeout     = 5 * time.Second
)

// subscriber is one websocket connection listening to a session. All
// writes to the connection happen on its single writer goroutine; the
// rest of the hub only queues onto send.
type subscriber struct {
	conn *websocket.Conn
	send chan Snapshot
}

// writeLoop drains the send queue onto the connection. It owns every
// write to conn and exits when the queue is closed or a write fails.
func (sub *subscriber) writeLoop(h *Hub, code string) {
	defer h.remove(code, sub)
	for snap := range sub.send {
		_ = sub.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := sub.conn.WriteJSON(snap); err != nil {
			return
		}
	}
}

// Hub fans session snapshots out to websocket subscribers. The frontend
// opens one socket per session so AI turns and auto-skips appear without
// polling; every mutation path publishes the fresh snapshot here.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[string]map[*subscriber]struct{})}
}

func (h *Hub) add(code string, conn *websocket.Conn) *subscriber {
	sub := &subscriber{conn: conn, send: make(chan Snapshot, subscriberBuffer)}
	h.mu.Lock()
	if h.sessions[code] == nil {
		h.sessions[code] = make(map[*subscriber]struct{})
	}
	h.sessions[code][sub] = struct{}{}
	h.mu.Unlock()
	go sub.writeLoop(h, code)
	return sub
}

// remove unsubscribes and closes the send queue exactly once. Queue
// closing happens under the hub lock, the same lock Publish queues
// under, so a publish can never hit a closed channel.
func (h *Hub) remove(code string, sub *subscriber) {
	h.mu.Lock()
	if conns := h.sessions[code]; conns != nil {
		if _, ok := conns[sub]; ok {
			delete(conns, sub)
			close(sub.send)
			if len(conns) == 0 {
				delete(h.sessions, code)
			}
		}
	}
	h.mu.Unlock()
	_ = sub.conn.Close()
}

// Publish queues a snapshot for every subscriber of the session. The
// queue hand-off never blocks; a subscriber whose buffer is full is not
// keeping up and gets dropped.
func (h *Hub) Publish(code string, snapshot Snapshot) {
	var stalled []*subscriber
	h.mu.Lock()
	for sub := range h.sessions[code] {
		select {
		case sub.send <- snapshot:
		default:
			stalled = append(stalled, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range stalled {
		h.remove(code, sub)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4 * 1024,
	WriteBufferSize: 4 * 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StreamSession upgrades the request to a websocket and subscribes it to
// the session's snapshot feed. The current snapshot is queued immediately.
func (h *SessionHandler) StreamSession(c *gin.Context) {
	short, ok := h.resolveSession(c)
	if !ok {
		return
	}
	s, err := h.repo.GetSessionByID(short.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrSessionNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	code := s.JoinCode
	sub := h.hub.add(code, conn)
	sub.send <- BuildSnapshot(s)
	logging.Info("stream subscribed", logging.Fields{constants.LogFieldJoinCode: code})

	// Reader loop: the stream is one-way, but control frames and the
	// close handshake still need to be consumed.
	go func() {
		defer h.hub.remove(code, sub)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
