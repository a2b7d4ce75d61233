package gameplay

import (
	"slices"

	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/state"
)

// brewing returns the cauldron puzzle if it can currently be worked on
func brewing(g *state.Game) (*entities.Puzzle, bool) {
	if !g.Playing() {
		return nil, false
	}
	p, ok := g.Variant.PuzzleOfKind(entities.KindBrew)
	if !ok || g.IsSolved(p.ID) || !p.Available(g) {
		return nil, false
	}
	return p, true
}

// AddIngredient moves an item from the inventory into the cauldron
func AddIngredient(g *state.Game, item entities.ItemID) Result {
	if _, ok := brewing(g); !ok {
		return ignored()
	}
	if len(g.Cauldron) >= len(g.Variant.Recipe) || g.IsStaged(item) || !g.RemoveItem(item) {
		return ignored()
	}
	g.Cauldron = append(g.Cauldron, item)
	return applied()
}

// Brew stirs the cauldron. A wrong mix hands every staged ingredient back.
func Brew(g *state.Game) Result {
	p, ok := brewing(g)
	if !ok || len(g.Cauldron) == 0 {
		return ignored()
	}

	key := p.RejectedKey
	if g.Variant.RejectDecoys && slices.ContainsFunc(g.Cauldron, entities.IsDecoy) {
		key = "REJECTED_POTION_DECOY"
	} else if slices.Equal(g.Cauldron, g.Variant.Recipe) {
		g.Cauldron = nil
		solve(g, p)
		return applied()
	}

	for _, item := range g.Cauldron {
		g.AddItem(item)
	}
	g.Cauldron = nil
	logMessage(g, "GT{%s}", key)
	return rejected(p, key)
}
