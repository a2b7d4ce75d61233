package renderer

import (
	"witchlair/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleHint
	StyleSuccess
	StyleClock
)

// Renderer defines the interface for game rendering backends.
// Renderers only ever see snapshots; they never touch live state.
type Renderer interface {
	// Init initializes the renderer (colors, markup, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame for the snapshot's phase
	RenderFrame(s state.Snapshot)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowNotice queues a one-off notice (such as a rejected answer) for the next frame
	ShowNotice(msg string)

	// ShowMessage displays a message to the user immediately
	ShowMessage(msg string)
}
