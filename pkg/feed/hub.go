// Package feed streams applied discovery events to websocket monitors.
// The feed is diagnostic only: frames may be dropped for slow consumers and
// the JSON layout carries no compatibility promise.
package feed

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Frame is one discovery event as rendered on the wire.
type Frame struct {
	Op          string `json:"op"`
	Endpoint    string `json:"endpoint"`
	Participant string `json:"participant"`
	Topic       string `json:"topic"`
	Type        string `json:"type"`
}

// Options configures a Hub. It is decoded from the sink spec in the config
// file.
type Options struct {
	// SendBuffer is the per-client frame buffer. A client that falls this
	// far behind is disconnected rather than allowed to block discovery.
	SendBuffer int `mapstructure:"sendBuffer"`
}

const defaultSendBuffer = 64

// Hub fans frames out to every connected websocket client.
type Hub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader
	buffer   int

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(logger *zap.Logger, opts Options) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	buffer := opts.SendBuffer
	if buffer <= 0 {
		buffer = defaultSendBuffer
	}
	return &Hub{
		logger:  logger,
		buffer:  buffer,
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and keeps the connection subscribed until
// the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, h.buffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("feed client connected", zap.String("remote", conn.RemoteAddr().String()))

	go h.writeLoop(c)
	go h.readLoop(c)
}

// Broadcast sends the frame to every connected client. Clients whose buffer
// is full are dropped; Broadcast never blocks the caller.
func (h *Hub) Broadcast(f Frame) {
	msg, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("failed to marshal feed frame", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Debug("dropping slow feed client",
				zap.String("remote", c.conn.RemoteAddr().String()))
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
	_ = c.conn.Close()
}

func (h *Hub) writeLoop(c *client) {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
	h.drop(c)
}

func (h *Hub) readLoop(c *client) {
	// Clients never send anything meaningful; reading just surfaces closes.
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			h.drop(c)
			return
		}
	}
}
