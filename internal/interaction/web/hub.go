package web

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"bullion/internal/board"
)

const (
	sendBuffer = 8
	writeWait  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type payloadFunc func(lang string, snapshot board.Snapshot) ([]byte, error)

type client struct {
	conn *websocket.Conn
	lang string
	send chan []byte
}

// hub fans board snapshots out to websocket clients. Slow clients are dropped.
type hub struct {
	logger  *slog.Logger
	payload payloadFunc

	mu      sync.Mutex
	clients map[*client]struct{}
}

func newHub(logger *slog.Logger, payload payloadFunc) *hub {
	return &hub{logger: logger.With("component", "ws_hub"), payload: payload, clients: make(map[*client]struct{})}
}

func (h *hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	h.removeLocked(c)
	h.mu.Unlock()
}

func (h *hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *hub) broadcast(snapshot board.Snapshot) {
	log := h.logger.With("method", "broadcast")

	h.mu.Lock()
	defer h.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			log.Error("broadcast panicked", "panic", r)
		}
	}()

	payloads := make(map[string][]byte)
	for c := range h.clients {
		body, ok := payloads[c.lang]
		if !ok {
			var err error
			if body, err = h.payload(c.lang, snapshot); err != nil {
				log.Error("failed to encode snapshot", "error", err)
				return
			}
			payloads[c.lang] = body
		}

		select {
		case c.send <- body:
		default:
			log.Warn("dropping slow websocket client", "remote_addr", c.conn.RemoteAddr().String())
			h.removeLocked(c)
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (that *Interaction) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleWebSocket")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, lang: requestLanguage(r), send: make(chan []byte, sendBuffer)}

	initial, err := that.payload(c.lang, that.board.Snapshot())
	if err != nil {
		log.Error("failed to encode snapshot", "error", err)
		_ = conn.Close()
		return
	}
	c.send <- initial
	that.hub.add(c)

	go c.writePump()
	go func() {
		defer that.hub.remove(c)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (c *client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
