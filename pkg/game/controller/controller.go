// Package controller connects the terminal front end to a session: it turns parsed intents into
// session calls and pumps snapshots and notices into the renderer.
package controller

import (
	"log/slog"
	"strings"

	"witchlair/pkg/engine/input"
	"witchlair/pkg/game/content"
	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/gameplay"
	"witchlair/pkg/game/renderer"
	"witchlair/pkg/game/state"
)

// Game is the set of session intents the controller drives
type Game interface {
	Start() gameplay.Result
	Reset() gameplay.Result
	NavigateTo(room entities.RoomID) gameplay.Result
	PickUp(item entities.ItemID) gameplay.Result
	Search(loc entities.LocationID) gameplay.Result
	Answer(field entities.Field, value string) gameplay.Result
	Submit(id entities.PuzzleID) gameplay.Result
	PlaceRune(r entities.RuneSymbol) gameplay.Result
	ClearRunes() gameplay.Result
	AddIngredient(item entities.ItemID) gameplay.Result
	Brew() gameplay.Result
	UseHint(topic entities.HintTopic) gameplay.Result
	Snapshot() state.Snapshot
	Variant() *content.Variant
}

// Controller dispatches player commands
type Controller struct {
	game   Game
	r      renderer.Renderer
	logger *slog.Logger
}

// New creates a controller
func New(game Game, r renderer.Renderer, logger *slog.Logger) *Controller {
	return &Controller{game: game, r: r, logger: logger}
}

// answerFields maps answer verbs to the buffers they fill
var answerFields = map[input.Action]entities.Field{
	input.ActionRiddle: entities.FieldRiddle,
	input.ActionMirror: entities.FieldMirror,
	input.ActionSpell:  entities.FieldSpell,
	input.ActionCode:   entities.FieldCode,
}

// HandleLine parses and dispatches one line of player input. Returns true when the player quits.
func (c *Controller) HandleLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		c.redraw()
		return false
	}
	return c.ProcessIntent(input.Parse(line))
}

// ProcessIntent handles a high-level input intent. Returns true when the player quits.
// Intents whose preconditions fail are dropped silently; the session only redraws on change.
func (c *Controller) ProcessIntent(intent input.Intent) bool {
	c.logger.Debug("intent", "action", input.ActionName(intent.Action), "arg", intent.Arg)

	switch intent.Action {
	case input.ActionNone:
		c.r.ShowNotice("GT{UNKNOWN_COMMAND}")
		c.redraw()

	case input.ActionQuit:
		c.r.ShowMessage("GT{GOODBYE}")
		return true

	case input.ActionHelp:
		c.r.ShowNotice("GT{HELP}")
		c.redraw()

	case input.ActionLook:
		c.redraw()

	case input.ActionStart:
		c.game.Start()

	case input.ActionAgain:
		c.game.Reset()

	case input.ActionGo:
		if room, ok := entities.ParseRoom(intent.Arg); ok {
			c.game.NavigateTo(room)
		}

	case input.ActionTake:
		if item, ok := entities.ParseItem(intent.Arg); ok {
			c.game.PickUp(item)
		}

	case input.ActionSearch:
		c.game.Search(entities.ParseLocation(intent.Arg))

	case input.ActionExamine:
		c.game.Submit(entities.PuzzleMap)

	case input.ActionRiddle, input.ActionMirror, input.ActionSpell, input.ActionCode:
		c.game.Answer(answerFields[intent.Action], intent.Arg)

	case input.ActionRune:
		// Several symbols may be turned at once: "rune moon star"
		for _, word := range strings.Fields(intent.Arg) {
			if r, ok := entities.ParseRune(word); ok {
				c.game.PlaceRune(r)
			}
		}

	case input.ActionSubmitRunes:
		c.game.Submit(entities.PuzzleRunePattern)

	case input.ActionClearRunes:
		c.game.ClearRunes()

	case input.ActionAdd:
		if item, ok := entities.ParseItem(intent.Arg); ok {
			c.game.AddIngredient(item)
		}

	case input.ActionBrew:
		c.game.Brew()

	case input.ActionHint:
		topic := entities.HintTopic(strings.ToLower(strings.TrimSpace(intent.Arg)))
		if topic == entities.HintNone {
			topic = SuggestHint(c.game.Variant(), c.game.Snapshot())
		}
		c.game.UseHint(topic)
	}

	return false
}

func (c *Controller) redraw() {
	c.r.RenderFrame(c.game.Snapshot())
}

// SuggestHint picks the hint for the first open puzzle in the player's room,
// falling back to the first open puzzle anywhere.
func SuggestHint(v *content.Variant, s state.Snapshot) entities.HintTopic {
	fallback := entities.HintNone
	for _, p := range v.Puzzles {
		if s.Solved[p.ID] || p.Hint == entities.HintNone || !v.HasHint(p.Hint) {
			continue
		}
		if s.Available[p.ID] && p.Room == s.CurrentRoom {
			return p.Hint
		}
		if fallback == entities.HintNone {
			fallback = p.Hint
		}
	}
	return fallback
}
