package gameplay

import (
	"slices"

	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/state"
)

// maxRunes is the length of the rune wheel
const maxRunes = 5

// UpdateInput replaces the contents of a free-text buffer
func UpdateInput(g *state.Game, field entities.Field, value string) Result {
	if !g.Playing() || !slices.Contains(entities.TextFields, field) {
		return ignored()
	}
	if field == entities.FieldCode {
		if r := []rune(value); len(r) > entities.CodeLength {
			value = string(r[:entities.CodeLength])
		}
	}
	if g.Inputs[field] == value {
		return ignored()
	}
	if value == "" {
		delete(g.Inputs, field)
	} else {
		g.Inputs[field] = value
	}
	return applied()
}

// PlaceRune turns the rune wheel to the next symbol
func PlaceRune(g *state.Game, r entities.RuneSymbol) Result {
	if !g.Playing() || len(g.Runes) >= maxRunes {
		return ignored()
	}
	if _, ok := entities.ParseRune(string(r)); !ok {
		return ignored()
	}
	p, ok := g.Variant.PuzzleOfKind(entities.KindRunes)
	if !ok || g.IsSolved(p.ID) || !p.Available(g) {
		return ignored()
	}
	g.Runes = append(g.Runes, r)
	return applied()
}

// ClearRunes resets the rune wheel without counting a failure
func ClearRunes(g *state.Game) Result {
	if !g.Playing() || len(g.Runes) == 0 {
		return ignored()
	}
	g.Runes = nil
	return applied()
}

// Submit attempts a puzzle with whatever its input buffer holds.
// Solved, unavailable and unknown puzzles are silently ignored, and so is an empty buffer.
func Submit(g *state.Game, id entities.PuzzleID) Result {
	if !g.Playing() {
		return ignored()
	}
	p, ok := g.Variant.Puzzle(id)
	if !ok || g.IsSolved(id) || !p.Available(g) {
		return ignored()
	}

	switch p.Kind {
	case entities.KindAction:
		solve(g, p)
		return applied()

	case entities.KindAnswer, entities.KindRunes:
		attempt := g.Attempt(p)
		if attempt.Empty() {
			return ignored()
		}
		if p.CheckSolution(attempt) {
			solve(g, p)
			return applied()
		}
		if p.Pending != nil && p.Pending(attempt) {
			return Result{Outcome: Pending, Puzzle: p.ID}
		}
		g.ClearAttempt(p)
		if p.Kind == entities.KindRunes {
			g.RuneFailures++
		}
		logMessage(g, "GT{%s}", p.RejectedKey)
		return rejected(p, p.RejectedKey)

	default:
		// Brewed and derived puzzles have their own paths
		return ignored()
	}
}

// solve marks a puzzle solved and hands out its reward
func solve(g *state.Game, p *entities.Puzzle) {
	g.Solved.Put(p.ID)
	for _, item := range p.Reward.Items {
		g.AddItem(item)
	}
	for _, room := range p.Reward.Unlocks {
		g.Unlocked.Put(room)
	}
	g.ClearAttempt(p)
	if p.SolvedKey != "" {
		logMessage(g, "GT{%s}", p.SolvedKey)
	}
}
