package entities

import "strings"

// HintTopic names one of the witch's hints. The empty topic means no hint is showing.
type HintTopic string

const (
	HintNone      HintTopic = ""
	HintMap       HintTopic = "map"
	HintRiddle    HintTopic = "riddle"
	HintMirror    HintTopic = "mirror"
	HintSpellbook HintTopic = "spellbook"
	HintRunes     HintTopic = "runes"
	HintSearch    HintTopic = "search"
	HintPotion    HintTopic = "potion"
	HintFinal     HintTopic = "final"
)

// HintKey returns the catalog key holding the topic's text
func HintKey(t HintTopic) string {
	if t == HintNone {
		return ""
	}
	return "HINT_" + strings.ToUpper(string(t))
}

