package state

import (
	"slices"

	"witchlair/pkg/game/entities"
)

// Snapshot is a read-only copy of a Game handed to renderers and observers.
// It shares no memory with the live state.
type Snapshot struct {
	ID      string
	Variant string

	Phase         Phase
	CurrentRoom   entities.RoomID
	TimeRemaining int

	Inventory  []entities.ItemID
	HintsLeft  int
	ActiveHint entities.HintTopic

	Solved    map[entities.PuzzleID]bool
	Unlocked  map[entities.RoomID]bool
	Available map[entities.PuzzleID]bool
	Searched  map[entities.LocationID]bool

	Inputs       map[entities.Field]string
	Runes        []entities.RuneSymbol
	RuneFailures int
	Cauldron     []entities.ItemID

	Messages []string
}

// Snapshot copies the current state
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		ID:            g.ID,
		Variant:       g.Variant.Name,
		Phase:         g.Phase,
		CurrentRoom:   g.CurrentRoom,
		TimeRemaining: g.TimeRemaining,
		Inventory:     slices.Clone(g.Inventory),
		HintsLeft:     g.HintsLeft,
		ActiveHint:    g.ActiveHint,
		Solved:        make(map[entities.PuzzleID]bool, len(g.Variant.Puzzles)),
		Unlocked:      make(map[entities.RoomID]bool, len(g.Variant.Rooms)),
		Available:     make(map[entities.PuzzleID]bool, len(g.Variant.Puzzles)),
		Searched:      make(map[entities.LocationID]bool, len(g.Variant.Locations)),
		Inputs:        make(map[entities.Field]string, len(g.Inputs)),
		Runes:         slices.Clone(g.Runes),
		RuneFailures:  g.RuneFailures,
		Cauldron:      slices.Clone(g.Cauldron),
		Messages:      slices.Clone(g.Messages),
	}
	for _, r := range g.Variant.Rooms {
		s.Unlocked[r] = g.Unlocked.Has(r)
	}
	for i := range g.Variant.Puzzles {
		p := &g.Variant.Puzzles[i]
		s.Solved[p.ID] = g.Solved.Has(p.ID)
		s.Available[p.ID] = !s.Solved[p.ID] && p.Available(g)
	}
	for _, l := range g.Variant.Locations {
		s.Searched[l.ID] = g.Searched.Has(l.ID)
	}
	for f, v := range g.Inputs {
		s.Inputs[f] = v
	}
	return s
}

// HasItem checks if the snapshot's inventory holds an item
func (s Snapshot) HasItem(id entities.ItemID) bool {
	return slices.Contains(s.Inventory, id)
}

// InCauldron checks if the snapshot's cauldron holds an item
func (s Snapshot) InCauldron(id entities.ItemID) bool {
	return slices.Contains(s.Cauldron, id)
}
