package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"sync"

	"github.com/gookit/color"

	"witchlair/pkg/engine/terminal"
	"witchlair/pkg/game/content"
	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/renderer"
	"witchlair/pkg/game/state"
	"witchlair/pkg/game/text"
)

// Icon constants for The Witch's Lair
const (
	IconLocked   = "▣"
	IconUnlocked = "□"
	IconCurrent  = "@"
	IconSolved   = "✓"
	IconNotice   = "✗"
	IconClock    = "⧗"
	IconHint     = "✦"
)

// maxPaneWidth keeps the message rules readable on very wide terminals
const maxPaneWidth = 100

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	catalog *text.Catalog

	// dynamicGet is used for runtime translation key lookups from markup
	dynamicGet func(key string) string

	colorRoom        color.Style
	colorItem        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorHint        color.Style
	colorSuccess     color.Style
	colorClock       color.Style
	colorTitle       color.Style

	regexpStringFunctions *regexp.Regexp

	mu     sync.Mutex
	notice string

	// drawMu keeps frames from the pump and the input loop from interleaving
	drawMu sync.Mutex
}

// New creates a new TUI renderer writing to out
func New(out io.Writer, catalog *text.Catalog) *TUIRenderer {
	return &TUIRenderer{out: out, catalog: catalog}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.dynamicGet = t.catalog.Get

	t.colorRoom = color.Style{color.FgBlue, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta} // Dark purple for inventory items
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorHint = color.Style{color.FgYellow}
	t.colorSuccess = color.Style{color.FgGreen}
	t.colorClock = color.Style{color.FgYellow, color.OpBold}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold, color.OpUnderscore}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.out != os.Stdout || !terminal.IsInteractive() {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleHint:
		return t.colorHint.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	case renderer.StyleClock:
		return t.colorClock.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system.
// GT{KEY} is replaced by catalog text, which may itself carry ITEM{} or ACTION{} markup.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)
	ret = t.expand(ret, "GT")
	return t.expand(ret, "")
}

// expand replaces markup calls. With only set, every other function is left for a later pass.
func (t *TUIRenderer) expand(ret string, only string) string {
	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]
		if only != "" && function != only {
			continue
		}

		var val string

		switch function {
		case "GT":
			val = t.dynamicGet(operand)
		case "ITEM":
			val = t.colorItem.Sprint(operand)
		case "ROOM":
			val = t.colorRoom.Sprint(t.dynamicGet(operand))
		case "ACTION":
			val = t.colorActionShort.Sprint(operand[0:1]) + t.colorAction.Sprint(operand[1:])
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// ShowNotice queues a notice for the next frame
func (t *TUIRenderer) ShowNotice(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notice = msg
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText("%s", msg))
}

// takeNotice returns the queued notice and forgets it
func (t *TUIRenderer) takeNotice() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.notice
	t.notice = ""
	return n
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(s state.Snapshot) {
	v, err := content.Lookup(s.Variant)
	if err != nil {
		t.ShowMessage(err.Error())
		return
	}

	t.drawMu.Lock()
	defer t.drawMu.Unlock()

	t.Clear()

	switch s.Phase {
	case state.PhaseIntro:
		t.printIntro(v)
	case state.PhaseWon:
		t.printEnding(s, "WON_TITLE", "WON_TEXT", t.colorSuccess)
	case state.PhaseLost:
		t.printEnding(s, "LOST_TITLE", "LOST_TEXT", t.colorDenied)
	default:
		t.printPlaying(v, s)
	}

	if n := t.takeNotice(); n != "" {
		fmt.Fprintf(t.out, "\n%s %s\n", t.colorDenied.Sprint(IconNotice), t.FormatText("%s", n))
	}

	// Input prompt
	fmt.Fprint(t.out, "\n> ")
}

func (t *TUIRenderer) printIntro(v *content.Variant) {
	fmt.Fprintln(t.out, t.colorTitle.Sprint(t.dynamicGet(v.TitleKey)))
	t.printString("GT{SUBTITLE}\n\n")
	t.printString("GT{INTRO_TEXT}\n\n")
	t.printString("GT{INTRO_START}\n")
}

func (t *TUIRenderer) printEnding(s state.Snapshot, titleKey, textKey string, style color.Style) {
	fmt.Fprintln(t.out, style.Sprint(t.dynamicGet(titleKey)))
	fmt.Fprintln(t.out)
	if s.Phase == state.PhaseWon {
		fmt.Fprintf(t.out, "%s %s\n\n", t.colorSubtle.Sprint("Time remaining:"), t.colorClock.Sprint(FormatClock(s.TimeRemaining)))
	}
	t.printString("GT{%s}\n\n", textKey)
	t.printString("GT{PLAY_AGAIN}\n")
}

func (t *TUIRenderer) printPlaying(v *content.Variant, s state.Snapshot) {
	t.printHeader(v, s)

	room, _ := entities.LookupRoom(s.CurrentRoom)
	t.printString("GT{IN_ROOM} ROOM{%s}\n", room.NameKey)
	t.printString("GT{%s}\n", room.DescriptionKey)

	t.printExits(v, s)
	t.printPuzzles(v, s)
	t.printFindings(v, s)

	if s.ActiveHint != entities.HintNone {
		fmt.Fprintf(t.out, "\n%s %s\n", t.colorHint.Sprint(IconHint+" Hint:"), t.colorHint.Sprint(t.dynamicGet(entities.HintKey(s.ActiveHint))))
	}

	t.printStatusBar(s)
	t.printMessagesPane(s)
}

// printHeader renders the title line with the countdown and hint budget
func (t *TUIRenderer) printHeader(v *content.Variant, s state.Snapshot) {
	clock := t.colorClock
	if s.TimeRemaining <= 300 {
		clock = t.colorDenied
	}
	fmt.Fprintf(t.out, "%s  %s  %s\n\n",
		t.colorTitle.Sprint(t.dynamicGet(v.TitleKey)),
		clock.Sprint(IconClock+" "+FormatClock(s.TimeRemaining)),
		t.colorSubtle.Sprintf("Hints: %d", s.HintsLeft),
	)
}

// printExits lists every room with its lock state
func (t *TUIRenderer) printExits(v *content.Variant, s state.Snapshot) {
	fmt.Fprintln(t.out)
	exits := make([]string, 0, len(v.Rooms))
	for _, id := range v.Rooms {
		room, _ := entities.LookupRoom(id)
		name := t.dynamicGet(room.NameKey)
		switch {
		case id == s.CurrentRoom:
			exits = append(exits, t.colorSuccess.Sprint(IconCurrent+" "+name))
		case s.Unlocked[id]:
			exits = append(exits, t.colorRoom.Sprint(IconUnlocked+" "+name))
		default:
			exits = append(exits, t.colorSubtle.Sprint(IconLocked+" "+name))
		}
	}
	fmt.Fprintf(t.out, "%s %s\n", t.colorSubtle.Sprint("Rooms:"), strings.Join(exits, t.colorSubtle.Sprint("  ")))
}

// printPuzzles shows the state of every puzzle placed in the current room
func (t *TUIRenderer) printPuzzles(v *content.Variant, s state.Snapshot) {
	for _, p := range v.Puzzles {
		if p.Room != s.CurrentRoom {
			continue
		}
		prompt := "PROMPT_" + strings.ToUpper(string(p.ID))
		switch {
		case s.Solved[p.ID]:
			fmt.Fprintf(t.out, "\n%s %s\n", t.colorSuccess.Sprint(IconSolved), t.colorSuccess.Sprint(t.dynamicGet(p.SolvedKey)))
		case s.Available[p.ID]:
			t.printString("\n- GT{%s}\n", prompt)
			t.printPuzzleInput(v, s, &p)
		case p.ID == entities.PuzzleFinalEscape:
			t.printString("\n- GT{PROMPT_FINAL_LOCKED}\n")
		}
	}
}

// printPuzzleInput shows the buffered input and the verb that works the puzzle
func (t *TUIRenderer) printPuzzleInput(v *content.Variant, s state.Snapshot, p *entities.Puzzle) {
	switch p.Kind {
	case entities.KindAction:
		t.printString("  ACTION{examine}\n")
	case entities.KindAnswer:
		verb := string(p.Input)
		if buf := s.Inputs[p.Input]; buf != "" {
			fmt.Fprintf(t.out, "  %s %s\n", t.FormatText("ACTION{%s}", verb), t.colorItem.Sprint(buf))
		} else {
			t.printString("  ACTION{%s} <answer>\n", verb)
		}
	case entities.KindRunes:
		icons := make([]string, 0, len(s.Runes))
		for _, r := range s.Runes {
			icons = append(icons, entities.RuneIcon(r))
		}
		fmt.Fprintf(t.out, "  %s %s\n", t.colorSubtle.Sprint("Wheel:"), t.colorItem.Sprint(strings.Join(icons, " ")))
		names := make([]string, 0, len(entities.RuneSymbols))
		for _, r := range entities.RuneSymbols {
			names = append(names, entities.RuneIcon(r)+" "+string(r))
		}
		fmt.Fprintf(t.out, "  %s %s\n", t.colorSubtle.Sprint("Symbols:"), strings.Join(names, ", "))
		if s.RuneFailures > 0 {
			fmt.Fprintln(t.out, t.colorDenied.Sprintf("  Failed attempts: %d", s.RuneFailures))
		}
		t.printString("  ACTION{rune} <symbol>, ACTION{runes}, ACTION{clear}\n")
	case entities.KindBrew:
		staged := make([]string, 0, len(s.Cauldron))
		for _, id := range s.Cauldron {
			staged = append(staged, t.colorItem.Sprint(entities.ItemName(id)))
		}
		if len(staged) == 0 {
			staged = append(staged, t.colorSubtle.Sprint("(empty)"))
		}
		fmt.Fprintf(t.out, "  %s %s %s\n", t.colorSubtle.Sprint("Cauldron:"), strings.Join(staged, t.colorSubtle.Sprint(" → ")),
			t.colorSubtle.Sprintf("(%d/%d)", len(s.Cauldron), len(v.Recipe)))
		t.printString("  ACTION{add} <item>, ACTION{brew}\n")
	}
}

// printFindings lists pickups lying around and spots still worth searching
func (t *TUIRenderer) printFindings(v *content.Variant, s state.Snapshot) {
	var found []string
	for _, p := range v.Pickups {
		if p.Room != s.CurrentRoom || s.HasItem(p.Item) || s.InCauldron(p.Item) {
			continue
		}
		found = append(found, t.FormatText("ACTION{take} ITEM{%s}", entities.ItemName(p.Item)))
	}
	for _, l := range v.Locations {
		if l.Room != s.CurrentRoom || s.Searched[l.ID] {
			continue
		}
		found = append(found, t.FormatText("ACTION{search} %s", t.colorItem.Sprint(l.Name)))
	}
	if len(found) == 0 {
		return
	}
	fmt.Fprintln(t.out)
	for _, f := range found {
		fmt.Fprintf(t.out, "- %s\n", f)
	}
}

// printStatusBar renders the inventory status bar
func (t *TUIRenderer) printStatusBar(s state.Snapshot) {
	fmt.Fprintln(t.out)

	fmt.Fprint(t.out, t.colorSubtle.Sprint("Inventory: "))
	if len(s.Inventory) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("(empty)"))
		return
	}
	items := make([]string, 0, len(s.Inventory))
	for _, id := range s.Inventory {
		item, _ := entities.LookupItem(id)
		items = append(items, t.colorItem.Sprint(item.Icon+" "+item.Name))
	}
	fmt.Fprintln(t.out, strings.Join(items, t.colorSubtle.Sprint(", ")))
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(s state.Snapshot) {
	width := min(terminal.GetWidth(), maxPaneWidth)

	label := " Messages "
	labelLen := len(label)
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-labelLen, 1))

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(leftDashes+label+rightDashes))

	if len(s.Messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range s.Messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText("%s", msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// FormatClock renders seconds as mm:ss
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
