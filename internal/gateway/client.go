package gateway

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period; must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Outbound buffer per connection
	sendBufferSize = 256
)

// Client represents one connected peer: the websocket connection, its
// outbound queue, and the socket id assigned on connect.
type Client struct {
	conn *websocket.Conn
	hub  *Hub

	// send is the buffered outbound queue; the hub goroutine enqueues,
	// writePump drains
	send chan Message

	// socketID is the connection handle players are tracked by
	socketID string
}

// SocketID returns the connection handle assigned to this client
func (c *Client) SocketID() string {
	return c.socketID
}

// readPump reads inbound messages and forwards them to the hub. It runs in
// its own goroutine; exiting unregisters the client.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("unexpected close from %s: %v", c.conn.RemoteAddr(), err)
			}
			break
		}

		c.hub.incoming <- clientMessage{client: c, msg: msg}
	}
}

// writePump drains the send queue to the connection and keeps the peer alive
// with periodic pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			// The hub closed the queue; the client was unregistered
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
