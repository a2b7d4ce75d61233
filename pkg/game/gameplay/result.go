// Package gameplay provides the rules of The Witch's Lair.
// Every function here runs synchronously against a *state.Game and either applies its whole
// effect or none of it; locking and timers belong to the session package.
package gameplay

import (
	"fmt"

	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/state"
)

// Outcome says what an intent did to the game
type Outcome int

const (
	Ignored  Outcome = iota // Precondition not met, nothing changed
	Applied                 // State changed
	Pending                 // Input kept but not judged yet
	Rejected                // Wrong answer; the input buffer was cleared
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Applied:
		return "applied"
	case Pending:
		return "pending"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result reports the outcome of an intent. Key is a catalog key for the rejection notice.
type Result struct {
	Outcome Outcome
	Puzzle  entities.PuzzleID
	Key     string
}

// Changed reports whether observers need a fresh snapshot
func (r Result) Changed() bool {
	return r.Outcome != Ignored
}

func ignored() Result {
	return Result{Outcome: Ignored}
}

func applied() Result {
	return Result{Outcome: Applied}
}

func rejected(p *entities.Puzzle, key string) Result {
	return Result{Outcome: Rejected, Puzzle: p.ID, Key: key}
}

// logMessage adds a message in renderer markup to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(fmt.Sprintf(msg, a...))
}
