package relay

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 16
)

// peer is one connected viewer. Outbound messages go through send so the
// broadcast path never blocks on a slow socket.
type peer struct {
	id   string
	send chan []byte
}

// Hub relays load events between connected viewers. Messages are forwarded
// verbatim to every peer except the sender; the hub does not inspect them
// beyond a size cap.
type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	peers map[string]*peer
}

// NewHub returns an empty hub.
func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		log:   log,
		peers: make(map[string]*peer),
		upgrader: websocket.Upgrader{
			// The viewer is a desktop app, not a browser; accept any origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// PeerCount returns the number of connected peers.
func (h *Hub) PeerCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.peers)
}

// Broadcast forwards raw to every peer except senderID. Peers with a full
// send buffer are skipped rather than blocking the sender.
func (h *Hub) Broadcast(senderID string, raw []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, p := range h.peers {
		if id == senderID {
			continue
		}
		select {
		case p.send <- raw:
		default:
			h.log.Warn("dropping message for slow peer", zap.String("peer", id))
		}
	}
}

func (h *Hub) register(p *peer) {
	h.mu.Lock()
	h.peers[p.id] = p
	h.mu.Unlock()
}

func (h *Hub) unregister(p *peer) {
	h.mu.Lock()
	if _, ok := h.peers[p.id]; ok {
		delete(h.peers, p.id)
		close(p.send)
	}
	h.mu.Unlock()
}

// ServeWS upgrades the request and runs the peer's read/write pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	p := &peer{id: uuid.NewString(), send: make(chan []byte, sendBuffer)}
	h.register(p)
	h.log.Info("peer connected", zap.String("peer", p.id), zap.Int("peers", h.PeerCount()))

	go h.writePump(conn, p)
	h.readPump(conn, p)
}

func (h *Hub) readPump(conn *websocket.Conn, p *peer) {
	defer func() {
		h.unregister(p)
		_ = conn.Close()
		h.log.Info("peer disconnected", zap.String("peer", p.id), zap.Int("peers", h.PeerCount()))
	}()
	conn.SetReadLimit(maxMessageSize)
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if _, err := Decode(raw); err != nil {
			h.log.Warn("ignoring malformed message", zap.String("peer", p.id), zap.Error(err))
			continue
		}
		h.Broadcast(p.id, raw)
	}
}

func (h *Hub) writePump(conn *websocket.Conn, p *peer) {
	for raw := range p.send {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			return
		}
	}
	_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
}
