package entities

// LocationID identifies a search spot
type LocationID string

const (
	LocationFairyRing     LocationID = "fairy_ring"
	LocationMushroomPatch LocationID = "mushroom_patch"
	LocationRavenPerch    LocationID = "raven_perch"
	LocationDustyShelf    LocationID = "dusty_shelf"
	LocationCrackedMirror LocationID = "cracked_mirror"
	LocationDampCorner    LocationID = "damp_corner"
	LocationAshHeap       LocationID = "ash_heap"
)

// Location is a spot the player can search once. Each location yields exactly one item.
type Location struct {
	ID       LocationID
	Room     RoomID
	Item     ItemID
	Required bool // Counts towards the hidden objects puzzle
	Name     string
}

// ParseLocation resolves player text ("dusty shelf") to a location id
func ParseLocation(s string) LocationID {
	return LocationID(slug(s))
}
