package room

type CreateRoomInput struct {
	RoomID string

	// MaxPlayers is clamped to the minimum viable capacity; zero means the
	// default capacity
	MaxPlayers int
}

type GetRoomInput struct {
	RoomID string
}

type GetOrCreateRoomInput struct {
	RoomID string

	// MaxPlayers applies only when the room does not exist yet
	MaxPlayers int
}

type DeleteRoomInput struct {
	RoomID string
}
