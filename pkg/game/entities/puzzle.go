package entities

import (
	"strings"

	"golang.org/x/text/cases"
)

// PuzzleID identifies a puzzle
type PuzzleID string

const (
	PuzzleMap           PuzzleID = "map"
	PuzzleDoorRiddle    PuzzleID = "door_riddle"
	PuzzleMirror        PuzzleID = "mirror"
	PuzzleSpellbook     PuzzleID = "spellbook"
	PuzzleRunePattern   PuzzleID = "rune_pattern"
	PuzzleHiddenObjects PuzzleID = "hidden_objects"
	PuzzlePotion        PuzzleID = "potion"
	PuzzleFinalEscape   PuzzleID = "final_escape"
)

// PuzzleKind says how a puzzle is attempted
type PuzzleKind int

const (
	KindAction  PuzzleKind = iota // Solved by a single action, no input (e.g. searching the stump)
	KindAnswer                    // Free-text answer held in an input field
	KindRunes                     // Ordered rune selection
	KindBrew                      // Cauldron staging, resolved by brewing
	KindDerived                   // Set automatically once its requirement holds
)

// Field names a free-text input buffer
type Field string

const (
	FieldNone   Field = ""
	FieldRiddle Field = "riddle"
	FieldSpell  Field = "spell"
	FieldMirror Field = "mirror"
	FieldCode   Field = "code"
)

// TextFields lists every free-text buffer
var TextFields = []Field{FieldRiddle, FieldSpell, FieldMirror, FieldCode}

// CodeLength is the number of characters the final seal accepts
const CodeLength = 4

// Progress is the read-only view of player progress that requirements are evaluated against
type Progress interface {
	IsSolved(id PuzzleID) bool
	HasItem(id ItemID) bool
	HasSearched(id LocationID) bool
	IsUnlocked(id RoomID) bool
}

// Requirement is a precondition over player progress
type Requirement func(p Progress) bool

// Solved requires that every listed puzzle is solved
func Solved(ids ...PuzzleID) Requirement {
	return func(p Progress) bool {
		for _, id := range ids {
			if !p.IsSolved(id) {
				return false
			}
		}
		return true
	}
}

// Holding requires that the player carries the item
func Holding(id ItemID) Requirement {
	return func(p Progress) bool {
		return p.HasItem(id)
	}
}

// Searched requires that every listed location has been searched
func Searched(ids ...LocationID) Requirement {
	return func(p Progress) bool {
		for _, id := range ids {
			if !p.HasSearched(id) {
				return false
			}
		}
		return true
	}
}

// Attempt is what the player submitted for a puzzle
type Attempt struct {
	Text  string
	Runes []RuneSymbol
}

// Empty reports whether nothing was entered
func (a Attempt) Empty() bool {
	return strings.TrimSpace(a.Text) == "" && len(a.Runes) == 0
}

// Checker validates an attempt against a puzzle's canonical answer
type Checker func(a Attempt) bool

// Reward is what solving a puzzle grants
type Reward struct {
	Items   []ItemID
	Unlocks []RoomID
}

// Puzzle represents a single gated challenge
type Puzzle struct {
	ID       PuzzleID
	Kind     PuzzleKind
	Room     RoomID
	Input    Field
	Hint     HintTopic
	Requires Requirement // nil means always available
	Check    Checker
	// Pending reports attempts that are not complete enough to judge yet.
	Pending Pending
	Reward  Reward

	SolvedKey   string // Catalog key logged on success
	RejectedKey string // Catalog key for the rejection notice
}

// Pending reports whether an attempt should wait for more input
type Pending func(a Attempt) bool

// Available reports whether the puzzle's room is open and its requirement is met
func (p *Puzzle) Available(progress Progress) bool {
	if p.Room != "" && !progress.IsUnlocked(p.Room) {
		return false
	}
	return p.Requires == nil || p.Requires(progress)
}

// CheckSolution checks if the provided attempt matches the solution
func (p *Puzzle) CheckSolution(a Attempt) bool {
	if p.Check == nil {
		return false
	}
	return p.Check(a)
}

// Normalize folds case and trims surrounding whitespace
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Equals accepts any of the given answers, case-insensitively and ignoring surrounding whitespace
func Equals(answers ...string) Checker {
	return func(a Attempt) bool {
		got := Normalize(a.Text)
		for _, want := range answers {
			if got == Normalize(want) {
				return true
			}
		}
		return false
	}
}

// Reversed accepts input whose reverse equals target. The input is reversed, never the target.
func Reversed(target string) Checker {
	return func(a Attempt) bool {
		return Normalize(reverse(a.Text)) == Normalize(target)
	}
}

// Sequence accepts a rune selection equal to target position by position
func Sequence(target ...RuneSymbol) Checker {
	return func(a Attempt) bool {
		if len(a.Runes) != len(target) {
			return false
		}
		for i := range target {
			if a.Runes[i] != target[i] {
				return false
			}
		}
		return true
	}
}

// Exact accepts the trimmed input only if it matches code character for character
func Exact(code string) Checker {
	return func(a Attempt) bool {
		return strings.TrimSpace(a.Text) == code
	}
}

// ShorterThan holds text attempts back until they reach n characters
func ShorterThan(n int) Pending {
	return func(a Attempt) bool {
		return len([]rune(strings.TrimSpace(a.Text))) < n
	}
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
