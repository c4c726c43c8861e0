package gateway

// clientMessage pairs an inbound message with the client that sent it
type clientMessage struct {
	client *Client
	msg    Message
}

// EventHandler receives connection lifecycle and message callbacks from the
// hub. All callbacks run on the hub goroutine, one at a time, so handler
// state needs no locking.
type EventHandler interface {
	OnConnect(c *Client)
	OnDisconnect(c *Client)
	OnMessage(c *Client, msg Message)
}

// Hub owns the set of connected clients and serializes all event handling
// onto a single goroutine.
type Hub struct {
	// Registered clients; touched only by the hub goroutine
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	incoming   chan clientMessage

	handler EventHandler
}

// newHub creates a hub dispatching to the given handler
func newHub(handler EventHandler) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan clientMessage),
		handler:    handler,
	}
}

// Run processes registrations and inbound messages until the process exits.
// Strict single-goroutine dispatch gives every room handler implicit mutual
// exclusion at the gateway layer.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.handler.OnConnect(client)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				// Closing the send queue stops the client's writePump
				close(client.send)
				h.handler.OnDisconnect(client)
			}

		case clientMsg := <-h.incoming:
			h.handler.OnMessage(clientMsg.client, clientMsg.msg)
		}
	}
}
