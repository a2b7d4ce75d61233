package input

import (
	"sort"
	"strings"
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Lifecycle
	ActionStart
	ActionAgain
	ActionQuit

	// Exploration
	ActionGo
	ActionLook
	ActionTake
	ActionSearch
	ActionExamine

	// Puzzles
	ActionRiddle
	ActionMirror
	ActionSpell
	ActionCode
	ActionRune
	ActionSubmitRunes
	ActionClearRunes
	ActionAdd
	ActionBrew

	// Meta / UI
	ActionHint
	ActionHelp
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Arg holds whatever followed the verb, trimmed but with its case kept.
type Intent struct {
	Action Action
	Arg    string
}

// RawInput is the 1st‑layer event emitted directly from the terminal: one whole line of text.
type RawInput struct {
	Code string
}

// DebouncedInput is the 2nd‑layer representation: the line split into a lowercased verb and its argument.
type DebouncedInput struct {
	Verb string
	Arg  string
}

// NewDebouncedInput normalizes a raw line
func NewDebouncedInput(raw RawInput) DebouncedInput {
	line := strings.TrimSpace(raw.Code)
	verb, arg, _ := strings.Cut(line, " ")
	return DebouncedInput{
		Verb: strings.ToLower(verb),
		Arg:  strings.TrimSpace(arg),
	}
}

// bindings maps verbs to actions (3rd-layer bindings).
// Multiple verbs may point to the same Action.
var bindings = map[string]Action{
	"start": ActionStart,
	"begin": ActionStart,
	"again": ActionAgain,
	"reset": ActionAgain,
	"quit":  ActionQuit,
	"q":     ActionQuit,
	"exit":  ActionQuit,

	"go":      ActionGo,
	"walk":    ActionGo,
	"look":    ActionLook,
	"l":       ActionLook,
	"take":    ActionTake,
	"get":     ActionTake,
	"search":  ActionSearch,
	"examine": ActionExamine,
	"x":       ActionExamine,

	"riddle": ActionRiddle,
	"answer": ActionRiddle,
	"mirror": ActionMirror,
	"spell":  ActionSpell,
	"code":   ActionCode,
	"rune":   ActionRune,
	"runes":  ActionSubmitRunes,
	"clear":  ActionClearRunes,
	"add":    ActionAdd,
	"brew":   ActionBrew,
	"stir":   ActionBrew,

	"hint": ActionHint,
	"?":    ActionHint,
	"help": ActionHelp,
	"h":    ActionHelp,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Verb]; ok {
		return Intent{Action: act, Arg: ev.Arg}
	}
	return Intent{Action: ActionNone, Arg: ev.Arg}
}

// Parse runs a terminal line through every layer
func Parse(line string) Intent {
	raw := RawInput{Code: line}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionAgain:
		return "Play Again"
	case ActionQuit:
		return "Quit"
	case ActionGo:
		return "Go"
	case ActionLook:
		return "Look"
	case ActionTake:
		return "Take"
	case ActionSearch:
		return "Search"
	case ActionExamine:
		return "Examine"
	case ActionRiddle:
		return "Answer Riddle"
	case ActionMirror:
		return "Read Mirror"
	case ActionSpell:
		return "Speak Spell"
	case ActionCode:
		return "Enter Code"
	case ActionRune:
		return "Turn Rune"
	case ActionSubmitRunes:
		return "Press Runes"
	case ActionClearRunes:
		return "Clear Runes"
	case ActionAdd:
		return "Add Ingredient"
	case ActionBrew:
		return "Brew"
	case ActionHint:
		return "Hint"
	case ActionHelp:
		return "Help"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
