package entities

// RuneSymbol is one of the carvings on the lair's rune wheel
type RuneSymbol string

const (
	RuneMoon  RuneSymbol = "moon"
	RuneStar  RuneSymbol = "star"
	RuneSkull RuneSymbol = "skull"
	RuneEye   RuneSymbol = "eye"
	RuneFlame RuneSymbol = "flame"
)

// RuneSymbols lists every symbol in display order
var RuneSymbols = []RuneSymbol{RuneMoon, RuneStar, RuneSkull, RuneEye, RuneFlame}

// ParseRune resolves player text to a rune symbol
func ParseRune(s string) (RuneSymbol, bool) {
	r := RuneSymbol(slug(s))
	for _, known := range RuneSymbols {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// RuneIcon returns a single-glyph rendering of a symbol
func RuneIcon(r RuneSymbol) string {
	switch r {
	case RuneMoon:
		return "☾"
	case RuneStar:
		return "★"
	case RuneSkull:
		return "☠"
	case RuneEye:
		return "◉"
	case RuneFlame:
		return "♨"
	default:
		return "?"
	}
}
