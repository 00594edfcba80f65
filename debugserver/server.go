// Package debugserver is an opt-in local introspection feed: a
// gorilla/websocket hub that broadcasts the current MumbleLink snapshot
// and active-marker/trail counts to a connected external tool, adapted
// from the teacher's api.API register/unregister/broadcast hub with the
// territory-economy message types replaced by engine-state ones (spec
// section "Diagnostics & debug server").
package debugserver

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var logger = log.New(log.Writer(), "[debugserver] ", log.LstdFlags)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// A local dev-tool feed, not exposed beyond localhost by default;
		// origin checking would only get in the way during development.
		return true
	},
}

// MessageType discriminates the small set of engine-state messages this
// feed ever sends; there is no inbound command protocol (read-only feed).
type MessageType string

const (
	MessageTypeAck      MessageType = "ack"
	MessageTypeSnapshot MessageType = "snapshot"
)

// Message is the wire envelope for every message this hub sends.
type Message struct {
	Type      MessageType `json:"type"`
	Data      any         `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// SnapshotData is MessageTypeSnapshot's payload: the fields of a
// mlink.Snapshot an external tool actually wants to watch, plus the
// Active-Map Selector's current materialization counts. It intentionally
// does not import mlink/activemap to keep this package's wire format
// decoupled from their internal struct layout.
type SnapshotData struct {
	MapID         uint32  `json:"map_id"`
	ShardID       uint32  `json:"shard_id"`
	CharacterName string  `json:"character_name"`
	CameraX       float32 `json:"camera_x"`
	CameraY       float32 `json:"camera_y"`
	CameraZ       float32 `json:"camera_z"`
	Mount         uint8   `json:"mount"`
	ActiveMarkers int     `json:"active_markers"`
	ActiveTrails  int     `json:"active_trails"`
}

// Connection is the subset of *websocket.Conn the hub needs, so tests can
// substitute an in-memory fake instead of a real socket.
type Connection interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

// Client is one connected debug-feed consumer.
type Client struct {
	conn Connection
	send chan Message
	hub  *Hub
	id   string
}

// Hub fans Broadcast calls out to every registered Client, the same
// register/unregister/broadcast channel shape as the teacher's API type.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Message
}

// NewHub constructs a Hub; call Run in its own goroutine to start it.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Message, 64),
	}
}

// Run processes register/unregister/broadcast events until stopped by
// the program exiting; there is no graceful-shutdown channel since the
// feed's lifetime is the process's lifetime.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			ack := Message{Type: MessageTypeAck, Data: "connected to jokolay debug feed", Timestamp: time.Now()}
			select {
			case client.send <- ack:
			default:
				close(client.send)
				delete(h.clients, client)
			}
			logger.Printf("client %s connected", client.id)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				logger.Printf("client %s disconnected", client.id)
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast queues msg for every connected client without blocking the
// caller (the render-thread publisher): when the buffer is full the
// non-blocking send fails and msg itself is dropped and logged, while the
// already-queued broadcasts stay queued.
func (h *Hub) Broadcast(msg Message) {
	select {
	case h.broadcast <- msg:
	default:
		logger.Printf("broadcast buffer full, dropping one snapshot update")
	}
}

// PublishSnapshot is the convenience entry point the engine's frame loop
// calls once per tick when the debug server is enabled.
func (h *Hub) PublishSnapshot(data SnapshotData) {
	h.Broadcast(Message{Type: MessageTypeSnapshot, Data: data, Timestamp: time.Now()})
}

// ClientCount reports how many consumers are currently connected; only
// safe to call from the same goroutine running Run, or for tests that
// drive the hub synchronously.
func (h *Hub) ClientCount() int { return len(h.clients) }

// Server wraps a Hub with an HTTP listener exposing it at /ws.
type Server struct {
	hub *Hub
	mux *http.ServeMux
}

// NewServer builds a Server around a fresh Hub and starts the hub's
// event loop.
func NewServer() *Server {
	hub := NewHub()
	go hub.Run()
	mux := http.NewServeMux()
	s := &Server{hub: hub, mux: mux}
	mux.HandleFunc("/ws", s.handleWebSocket)
	return s
}

// Hub returns the underlying Hub so the engine's frame loop can publish
// snapshots.
func (s *Server) Hub() *Hub { return s.hub }

// ListenAndServe blocks serving the debug feed on addr (e.g.
// "localhost:7272"). Intended to be run in its own goroutine.
func (s *Server) ListenAndServe(addr string) error {
	logger.Printf("debug feed listening on %s/ws", addr)
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Printf("websocket upgrade failed: %v", err)
		return
	}
	client := &Client{conn: conn, send: make(chan Message, 16), hub: s.hub, id: r.RemoteAddr}
	s.hub.register <- client
	go client.writePump()
	go client.readPump()
}

func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteJSON(Message{Type: MessageTypeAck, Data: "ping", Timestamp: time.Now()}); err != nil {
				return
			}
		}
	}
}

// readPump only exists to notice the connection closing; this feed takes
// no inbound commands.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		var discard any
		if err := c.conn.ReadJSON(&discard); err != nil {
			return
		}
	}
}
