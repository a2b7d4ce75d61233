package state

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"witchlair/pkg/game/content"
	"witchlair/pkg/game/entities"
)

// Phase is the top-level lifecycle state of a playthrough
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the game
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// Fixed budgets for every playthrough
const (
	TimeLimit   = 3600 // Seconds
	HintBudget  = 5
	maxMessages = 5
)

// Game represents the game state for The Witch's Lair
type Game struct {
	ID      string
	Variant *content.Variant

	Phase       Phase
	CurrentRoom entities.RoomID

	TimeRemaining int

	// Inventory keeps pickup order; it never holds the same item twice.
	Inventory []entities.ItemID

	Unlocked mapset.Set[entities.RoomID]
	Solved   mapset.Set[entities.PuzzleID]
	Searched mapset.Set[entities.LocationID]

	HintsLeft  int
	ActiveHint entities.HintTopic

	Inputs       map[entities.Field]string
	Runes        []entities.RuneSymbol
	RuneFailures int
	Cauldron     []entities.ItemID

	Messages []string
}

// NewGame creates a new game instance for the given edition
func NewGame(v *content.Variant) *Game {
	g := &Game{
		ID:            uuid.NewString(),
		Variant:       v,
		Phase:         PhaseIntro,
		CurrentRoom:   v.StartRoom(),
		TimeRemaining: TimeLimit,
		Inventory:     make([]entities.ItemID, 0),
		Unlocked:      mapset.New[entities.RoomID](),
		Solved:        mapset.New[entities.PuzzleID](),
		Searched:      mapset.New[entities.LocationID](),
		HintsLeft:     HintBudget,
		Inputs:        make(map[entities.Field]string),
		Messages:      make([]string, 0),
	}
	g.Unlocked.Put(v.StartRoom())
	return g
}

// Playing reports whether intents may change the game
func (g *Game) Playing() bool {
	return g.Phase == PhasePlaying
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// IsSolved implements entities.Progress
func (g *Game) IsSolved(id entities.PuzzleID) bool {
	return g.Solved.Has(id)
}

// HasSearched implements entities.Progress
func (g *Game) HasSearched(id entities.LocationID) bool {
	return g.Searched.Has(id)
}

// HasItem checks if the player is carrying an item
func (g *Game) HasItem(id entities.ItemID) bool {
	return indexOf(g.Inventory, id) >= 0
}

// IsStaged checks if an item is waiting in the cauldron
func (g *Game) IsStaged(id entities.ItemID) bool {
	return indexOf(g.Cauldron, id) >= 0
}

// AddItem puts an item at the end of the inventory. Returns false if it was already held.
func (g *Game) AddItem(id entities.ItemID) bool {
	if g.HasItem(id) {
		return false
	}
	g.Inventory = append(g.Inventory, id)
	return true
}

// RemoveItem takes an item out of the inventory. Returns false if it was not held.
func (g *Game) RemoveItem(id entities.ItemID) bool {
	i := indexOf(g.Inventory, id)
	if i < 0 {
		return false
	}
	g.Inventory = append(g.Inventory[:i], g.Inventory[i+1:]...)
	return true
}

// IsUnlocked checks if a room may be entered
func (g *Game) IsUnlocked(id entities.RoomID) bool {
	return g.Unlocked.Has(id)
}

// Attempt returns the buffered input for a puzzle
func (g *Game) Attempt(p *entities.Puzzle) entities.Attempt {
	if p.Kind == entities.KindRunes {
		return entities.Attempt{Runes: g.Runes}
	}
	return entities.Attempt{Text: g.Inputs[p.Input]}
}

// ClearAttempt empties the buffer a puzzle reads from
func (g *Game) ClearAttempt(p *entities.Puzzle) {
	if p.Kind == entities.KindRunes {
		g.Runes = nil
		return
	}
	if p.Input != entities.FieldNone {
		delete(g.Inputs, p.Input)
	}
}

func indexOf(list []entities.ItemID, id entities.ItemID) int {
	for i, it := range list {
		if it == id {
			return i
		}
	}
	return -1
}
