package gameplay

import (
	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/state"
)

// PickUp takes an item lying in plain sight in an unlocked room.
// Items already carried or in the cauldron are left alone.
func PickUp(g *state.Game, item entities.ItemID) Result {
	if !g.Playing() {
		return ignored()
	}
	p, ok := g.Variant.Pickup(item)
	if !ok || !g.IsUnlocked(p.Room) {
		return ignored()
	}
	if g.IsStaged(item) || !g.AddItem(item) {
		return ignored()
	}
	logMessage(g, "Picked up: ITEM{%s}", entities.ItemName(item))
	return applied()
}

// Search looks through a location once, handing over whatever is hidden there.
// Decoys are handed over too; telling them apart is the player's problem.
func Search(g *state.Game, id entities.LocationID) Result {
	if !g.Playing() {
		return ignored()
	}
	loc, ok := g.Variant.Location(id)
	if !ok || !g.IsUnlocked(loc.Room) || g.HasSearched(id) {
		return ignored()
	}
	g.Searched.Put(id)
	g.AddItem(loc.Item)
	logMessage(g, "Searched the %s and found ITEM{%s}", loc.Name, entities.ItemName(loc.Item))
	return applied()
}
