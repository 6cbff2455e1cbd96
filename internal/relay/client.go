package relay

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// Client is the viewer side of the relay. Incoming load events are queued on
// a channel so the single-threaded frame loop can drain them at its own
// pace; nothing is applied from the read goroutine.
type Client struct {
	conn  *websocket.Conn
	loads chan string

	mu     sync.Mutex
	closed bool
}

// DialClient connects to a relay at url (e.g. ws://host:8080/ws) and starts
// reading.
func DialClient(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("relay dial %s: %w", url, err)
	}
	c := &Client{conn: conn, loads: make(chan string, 8)}
	go c.readLoop()
	return c, nil
}

// Loads returns the channel of structure ids requested by remote peers. The
// channel closes when the connection drops.
func (c *Client) Loads() <-chan string { return c.loads }

// PublishLoad broadcasts a local load to the other peers.
func (c *Client) PublishLoad(id string) error {
	raw, err := LoadMessage(id)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("relay: connection closed")
	}
	return c.conn.WriteMessage(websocket.TextMessage, raw)
}

// Close shuts the connection down.
func (c *Client) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	_ = c.conn.Close()
}

func (c *Client) readLoop() {
	defer close(c.loads)
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		m, err := Decode(raw)
		if err != nil || m.Type != TypeLoad || m.PDBID == "" {
			continue
		}
		select {
		case c.loads <- m.PDBID:
		default:
			// Frame loop is far behind; drop rather than block the socket.
		}
	}
}
