package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/dicetable/robbers/internal/common/uuid"
	"github.com/dicetable/robbers/internal/services/game"
)

// Config holds configuration for the session gateway
type Config struct {
	// Game service handling room and turn semantics
	GameService game.Service

	// UUIDGenerator assigns socket ids to connections
	UUIDGenerator uuid.UUID
}

// Gateway translates inbound client events into game service operations and
// routes the resulting broadcasts and replies. All of its maps are touched
// only from the hub goroutine.
type Gateway struct {
	gameService   game.Service
	uuidGenerator uuid.UUID
	hub           *Hub
	upgrader      websocket.Upgrader

	// rooms maps room id to the clients joined to it
	rooms map[string]map[*Client]bool

	// clientRooms is the reverse index used on disconnect
	clientRooms map[*Client]map[string]bool
}

// New creates a new session gateway
func New(cfg *Config) (*Gateway, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	g := &Gateway{
		gameService:   cfg.GameService,
		uuidGenerator: uuidGenerator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		rooms:       make(map[string]map[*Client]bool),
		clientRooms: make(map[*Client]map[string]bool),
	}
	g.hub = newHub(g)

	return g, nil
}

// Run starts the hub's dispatch loop; it blocks until the process exits
func (g *Gateway) Run() {
	g.hub.Run()
}

// ServeWS upgrades an HTTP request to a websocket connection and hands it to
// the hub
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		conn: conn,
		hub:  g.hub,
		send: make(chan Message, sendBufferSize),
	}

	g.hub.register <- client

	go client.writePump()
	go client.readPump()
}

// OnConnect assigns the connection its socket id
func (g *Gateway) OnConnect(c *Client) {
	c.socketID = g.uuidGenerator.NewUUID()
	log.Printf("client connected: %s", c.socketID)
}

// OnDisconnect drops the connection from room tracking. A disconnect is not
// a leave: the player keeps their seat and may reconnect by name.
func (g *Gateway) OnDisconnect(c *Client) {
	for roomID := range g.clientRooms[c] {
		delete(g.rooms[roomID], c)
		if len(g.rooms[roomID]) == 0 {
			delete(g.rooms, roomID)
		}
	}
	delete(g.clientRooms, c)

	log.Printf("client disconnected: %s", c.socketID)
}

// OnMessage dispatches one inbound event. Any panic in a handler is caught
// here so a bad event cannot take down the process or other rooms.
func (g *Gateway) OnMessage(c *Client, msg Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic handling %q from %s: %v", msg.Event, c.socketID, r)
			g.unicastError(c, "internal error")
		}
	}()

	ctx := context.Background()

	switch msg.Event {
	case EventCreateRoom:
		g.handleCreateRoom(ctx, c, msg.Data)
	case EventJoinGame:
		g.handleJoinGame(ctx, c, msg.Data)
	case EventStartGame:
		g.handleStartGame(ctx, c, msg.Data)
	case EventRollDice:
		g.handleRollDice(ctx, c, msg.Data)
	case EventReorderPlayers:
		g.handleReorderPlayers(ctx, c, msg.Data)
	case EventGetStatistics:
		g.handleGetStatistics(ctx, c, msg.Data)
	case EventStopGame:
		g.handleStopGame(ctx, c, msg.Data)
	case EventPlayerLeft:
		g.handlePlayerLeft(ctx, c, msg.Data)
	default:
		g.unicastError(c, "unknown event: "+msg.Event)
	}
}

func (g *Gateway) handleCreateRoom(ctx context.Context, c *Client, data json.RawMessage) {
	var payload CreateRoomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		g.unicastError(c, "invalid create-room payload")
		return
	}

	output, err := g.gameService.CreateRoom(ctx, &game.CreateRoomInput{
		RoomID:     payload.RoomID,
		MaxPlayers: payload.MaxPlayers,
	})
	if err != nil {
		g.unicastError(c, "failed to create room")
		return
	}

	// Every connection learns about the new room, not just its members
	g.broadcastAll(EventRoomCreated, &RoomCreatedPayload{RoomID: payload.RoomID})
	g.broadcastRoom(payload.RoomID, EventGameState, output.Room)
}

func (g *Gateway) handleJoinGame(ctx context.Context, c *Client, data json.RawMessage) {
	var payload JoinGamePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		g.unicastError(c, "invalid join-game payload")
		return
	}

	output, err := g.gameService.JoinRoom(ctx, &game.JoinRoomInput{
		RoomID:     payload.RoomID,
		PlayerName: payload.PlayerName,
		SocketID:   c.socketID,
		MaxPlayers: payload.MaxPlayers,
	})
	if errors.Is(err, game.ErrRoomFull) {
		g.unicast(c, EventRoomFull, nil)
		return
	}
	if err != nil {
		g.unicastError(c, "failed to join game")
		return
	}

	g.joinRoom(c, payload.RoomID)

	if output.Reconnected {
		// Same seat, new connection; only the rejoining client needs the
		// current state
		g.unicast(c, EventGameState, output.Room)
		return
	}

	joined := &PlayerRoomPayload{Player: output.Player, Room: output.Room}
	g.unicast(c, EventPlayerConnected, joined)
	g.broadcastRoom(payload.RoomID, EventPlayerJoined, joined)
}

func (g *Gateway) handleStartGame(ctx context.Context, c *Client, data json.RawMessage) {
	var payload RoomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		g.unicastError(c, "invalid start-game payload")
		return
	}

	output, err := g.gameService.StartGame(ctx, &game.StartGameInput{RoomID: payload.RoomID})
	if err != nil {
		// Starting an unknown room is silently ignored
		return
	}

	g.broadcastRoom(payload.RoomID, EventGameStarted, output.Room)
	g.broadcastRoom(payload.RoomID, EventGameState, output.Room)
}

func (g *Gateway) handleRollDice(ctx context.Context, c *Client, data json.RawMessage) {
	var payload RollDicePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		g.unicastError(c, "invalid roll-dice payload")
		return
	}

	output, err := g.gameService.RollDice(ctx, &game.RollDiceInput{
		RoomID:     payload.RoomID,
		PlayerName: payload.PlayerName,
	})
	if errors.Is(err, game.ErrNotYourTurn) {
		g.unicast(c, EventNotYourTurn, nil)
		return
	}
	if errors.Is(err, game.ErrRoomNotFound) || errors.Is(err, game.ErrGameEnded) {
		// Rolls for absent or ended rooms degrade silently
		return
	}
	if err != nil {
		g.unicastError(c, "failed to roll dice")
		return
	}

	g.broadcastRoom(payload.RoomID, EventDiceRolled, &DiceRolledPayload{RollResult: output.Roll})
	g.broadcastRoom(payload.RoomID, EventGameState, output.Room)
}

func (g *Gateway) handleReorderPlayers(ctx context.Context, c *Client, data json.RawMessage) {
	var payload ReorderPlayersPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		g.unicastError(c, "invalid reorder-players payload")
		return
	}

	output, err := g.gameService.ReorderPlayers(ctx, &game.ReorderPlayersInput{
		RoomID:           payload.RoomID,
		OrderedPlayerIDs: payload.OrderedPlayerIDs,
	})
	if err != nil {
		return
	}

	g.broadcastRoom(payload.RoomID, EventGameState, output.Room)
}

func (g *Gateway) handleGetStatistics(ctx context.Context, c *Client, data json.RawMessage) {
	var payload RoomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		g.unicastError(c, "invalid get-statistics payload")
		return
	}

	output, err := g.gameService.GetStatistics(ctx, &game.GetStatisticsInput{RoomID: payload.RoomID})
	if err != nil {
		return
	}

	g.unicast(c, EventStatisticsData, output.Room)
	g.broadcastRoom(payload.RoomID, EventGameState, output.Room)
}

func (g *Gateway) handleStopGame(ctx context.Context, c *Client, data json.RawMessage) {
	var payload RoomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		g.unicastError(c, "invalid stop-game payload")
		return
	}

	output, err := g.gameService.StopGame(ctx, &game.StopGameInput{RoomID: payload.RoomID})
	if err != nil {
		return
	}

	g.broadcastRoom(payload.RoomID, EventGameState, output.Room)
}

func (g *Gateway) handlePlayerLeft(ctx context.Context, c *Client, data json.RawMessage) {
	var payload PlayerLeftPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		g.unicastError(c, "invalid player-left payload")
		return
	}

	output, err := g.gameService.LeaveRoom(ctx, &game.LeaveRoomInput{
		RoomID:   payload.RoomID,
		PlayerID: payload.PlayerID,
		SocketID: c.socketID,
	})
	if errors.Is(err, game.ErrRoomNotFound) {
		g.unicastError(c, "Room not found")
		return
	}
	if errors.Is(err, game.ErrPlayerNotFound) {
		g.unicastError(c, "Player not found in room")
		return
	}
	if err != nil {
		g.unicastError(c, "failed to leave room")
		return
	}

	left := &UserLeftRoomPayload{
		PlayerID:   output.Removed.ID,
		PlayerName: output.Removed.Name,
		Room:       output.Room,
	}

	if output.RoomDeleted {
		g.broadcastAll(EventUserLeftRoom, left)
		g.dropRoom(payload.RoomID)
		return
	}

	// The departed player's connection stays in the broadcast set; only a
	// disconnect or room destruction drops it
	g.broadcastRoom(payload.RoomID, EventGameState, output.Room)
	g.unicast(c, EventUserLeftRoom, left)
}

// joinRoom adds a connection to a room's broadcast set
func (g *Gateway) joinRoom(c *Client, roomID string) {
	if g.rooms[roomID] == nil {
		g.rooms[roomID] = make(map[*Client]bool)
	}
	g.rooms[roomID][c] = true

	if g.clientRooms[c] == nil {
		g.clientRooms[c] = make(map[string]bool)
	}
	g.clientRooms[c][roomID] = true
}

// dropRoom clears the broadcast set of a destroyed room
func (g *Gateway) dropRoom(roomID string) {
	for c := range g.rooms[roomID] {
		delete(g.clientRooms[c], roomID)
	}
	delete(g.rooms, roomID)
}

// unicast sends an event to a single connection
func (g *Gateway) unicast(c *Client, event string, payload any) {
	msg, err := newMessage(event, payload)
	if err != nil {
		log.Printf("failed to encode %s: %v", event, err)
		return
	}
	g.trySend(c, msg)
}

// unicastError sends a generic error event to a single connection
func (g *Gateway) unicastError(c *Client, message string) {
	g.unicast(c, EventError, &ErrorPayload{Message: message})
}

// broadcastRoom sends an event to every connection joined to a room
func (g *Gateway) broadcastRoom(roomID, event string, payload any) {
	msg, err := newMessage(event, payload)
	if err != nil {
		log.Printf("failed to encode %s: %v", event, err)
		return
	}
	for c := range g.rooms[roomID] {
		g.trySend(c, msg)
	}
}

// broadcastAll sends an event to every registered connection
func (g *Gateway) broadcastAll(event string, payload any) {
	msg, err := newMessage(event, payload)
	if err != nil {
		log.Printf("failed to encode %s: %v", event, err)
		return
	}
	for c := range g.hub.clients {
		g.trySend(c, msg)
	}
}

// trySend enqueues without blocking; a peer that cannot keep up loses
// messages rather than stalling the dispatch loop
func (g *Gateway) trySend(c *Client, msg Message) {
	select {
	case c.send <- msg:
	default:
		log.Printf("dropping %s for slow client %s", msg.Event, c.socketID)
	}
}
