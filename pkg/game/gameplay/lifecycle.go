package gameplay

import (
	"witchlair/pkg/game/content"
	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/state"
)

// BuildGame creates a fresh playthrough of the given edition, waiting on the intro screen
func BuildGame(v *content.Variant) *state.Game {
	return state.NewGame(v)
}

// Start leaves the intro and begins the countdown phase
func Start(g *state.Game) Result {
	if g.Phase != state.PhaseIntro {
		return ignored()
	}
	g.Phase = state.PhasePlaying
	logMessage(g, "GT{WELCOME}")
	return applied()
}

// Tick takes one second off the clock. Running out of time loses the game.
func Tick(g *state.Game) Result {
	if !g.Playing() {
		return ignored()
	}
	g.TimeRemaining--
	if g.TimeRemaining <= 0 {
		g.TimeRemaining = 0
		g.Phase = state.PhaseLost
		logMessage(g, "GT{OUT_OF_TIME}")
	}
	return applied()
}

// Settle reacts to a state change: it sets derived puzzle flags and then checks for the win.
// Returns true if anything changed.
func Settle(g *state.Game) bool {
	if !g.Playing() {
		return false
	}
	changed := false
	for i := range g.Variant.Puzzles {
		p := &g.Variant.Puzzles[i]
		if p.Kind != entities.KindDerived || g.IsSolved(p.ID) || !p.Available(g) {
			continue
		}
		solve(g, p)
		changed = true
	}
	if g.IsSolved(g.Variant.Terminal) {
		g.Phase = state.PhaseWon
		changed = true
	}
	return changed
}

// ResetGame discards a playthrough and starts over on the intro screen
func ResetGame(g *state.Game) *state.Game {
	return state.NewGame(g.Variant)
}
