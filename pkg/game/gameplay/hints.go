package gameplay

import (
	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/state"
)

// UseHint spends one hint and shows the topic's text. The budget never goes below zero.
func UseHint(g *state.Game, topic entities.HintTopic) Result {
	if !g.Playing() || g.HintsLeft <= 0 || !g.Variant.HasHint(topic) {
		return ignored()
	}
	g.HintsLeft--
	g.ActiveHint = topic
	return applied()
}

// ClearHint hides the hint if it is still the one showing
func ClearHint(g *state.Game, topic entities.HintTopic) Result {
	if g.Phase.Terminal() || g.ActiveHint == entities.HintNone || g.ActiveHint != topic {
		return ignored()
	}
	g.ActiveHint = entities.HintNone
	return applied()
}
