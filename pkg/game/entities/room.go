// Package entities contains the identifiers and descriptor tables for The Witch's Lair.
// Everything in here is immutable; mutable progress lives in the state package.
package entities

// RoomID identifies one of the lair's locations
type RoomID string

// Rooms of the lair, in the order the player reaches them
const (
	RoomForest     RoomID = "forest"
	RoomEntrance   RoomID = "entrance"
	RoomPotionRoom RoomID = "potion_room"
	RoomLair       RoomID = "lair"
)

// Room describes a location. NameKey and DescriptionKey are catalog keys.
type Room struct {
	ID             RoomID
	NameKey        string
	DescriptionKey string
	Icon           string
}

var rooms = map[RoomID]Room{
	RoomForest:     {ID: RoomForest, NameKey: "ROOM_FOREST", DescriptionKey: "ROOM_FOREST_DESC", Icon: "♣"},
	RoomEntrance:   {ID: RoomEntrance, NameKey: "ROOM_ENTRANCE", DescriptionKey: "ROOM_ENTRANCE_DESC", Icon: "⌂"},
	RoomPotionRoom: {ID: RoomPotionRoom, NameKey: "ROOM_POTION_ROOM", DescriptionKey: "ROOM_POTION_ROOM_DESC", Icon: "⚗"},
	RoomLair:       {ID: RoomLair, NameKey: "ROOM_LAIR", DescriptionKey: "ROOM_LAIR_DESC", Icon: "☾"},
}

// LookupRoom returns the descriptor for a room id
func LookupRoom(id RoomID) (Room, bool) {
	r, ok := rooms[id]
	return r, ok
}

// ParseRoom resolves player text ("potion room", "Lair") to a room id
func ParseRoom(s string) (RoomID, bool) {
	id := RoomID(slug(s))
	_, ok := rooms[id]
	return id, ok
}
