package gameplay

import (
	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/state"
)

// CanEnter checks if the player may walk into a room
func CanEnter(g *state.Game, room entities.RoomID) bool {
	if !g.Playing() || !g.Variant.HasRoom(room) {
		return false
	}
	return g.IsUnlocked(room)
}

// NavigateTo moves the player into an unlocked room
func NavigateTo(g *state.Game, room entities.RoomID) Result {
	if !CanEnter(g, room) || g.CurrentRoom == room {
		return ignored()
	}
	g.CurrentRoom = room
	return applied()
}
