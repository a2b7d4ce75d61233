// Package session owns a running game. It serializes every intent and timer callback behind
// one lock, runs the countdown and the hint auto-hide, and tells observers about each change.
package session

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"witchlair/pkg/engine/clock"
	"witchlair/pkg/game/content"
	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/gameplay"
	"witchlair/pkg/game/state"
	"witchlair/pkg/game/text"
)

// DefaultHintDuration is how long a hint stays on screen when Config leaves it unset
const DefaultHintDuration = 8 * time.Second

// ErrNoVariant is returned by New when Config has no edition
var ErrNoVariant = errors.New("session: no variant")

// Config wires a session to its collaborators
type Config struct {
	Variant      *content.Variant
	Clock        clock.Scheduler // Defaults to the wall clock
	Catalog      *text.Catalog   // Resolves rejection notices; defaults to English
	Logger       *slog.Logger    // Defaults to discarding
	HintDuration time.Duration   // Defaults to DefaultHintDuration
}

// Session is the single owner of a game's state
type Session struct {
	clock        clock.Scheduler
	catalog      *text.Catalog
	logger       *slog.Logger
	hintDuration time.Duration

	mu   sync.Mutex
	game *state.Game

	countdown    clock.Timer
	countdownGen uint64
	hintTimer    clock.Timer
	hintGen      uint64

	// Notifications queue up under mu in mutation order. One goroutine at a time
	// delivers them, with mu released, until the queue is empty.
	observers  []Observer
	queue      []notification
	delivering bool
}

// notification is one queued observer call
type notification struct {
	snap   state.Snapshot
	notice *Notice
}

// New creates a session waiting on the intro screen
func New(cfg Config) (*Session, error) {
	if cfg.Variant == nil {
		return nil, ErrNoVariant
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.NewReal()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = text.English()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.HintDuration <= 0 {
		cfg.HintDuration = DefaultHintDuration
	}

	s := &Session{
		clock:        cfg.Clock,
		catalog:      cfg.Catalog,
		logger:       cfg.Logger,
		hintDuration: cfg.HintDuration,
		game:         gameplay.BuildGame(cfg.Variant),
	}
	s.log().Info("session created", "variant", cfg.Variant.Name)
	return s, nil
}

// Subscribe registers an observer. The returned function removes it again.
func (s *Session) Subscribe(o Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if i := slices.Index(s.observers, o); i >= 0 {
			s.observers = slices.Delete(slices.Clone(s.observers), i, i+1)
		}
	}
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() state.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Variant returns the edition being played
func (s *Session) Variant() *content.Variant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Variant
}

// Start leaves the intro screen and starts the countdown
func (s *Session) Start() gameplay.Result {
	return s.apply("start", gameplay.Start)
}

// Reset stops every timer and starts over on the intro screen with a new session id
func (s *Session) Reset() gameplay.Result {
	s.mu.Lock()
	s.stopTimers()
	old := s.game.ID
	s.game = gameplay.ResetGame(s.game)
	s.log().Info("session reset", "previousID", old)
	s.publish(gameplay.Result{Outcome: gameplay.Applied})
	return gameplay.Result{Outcome: gameplay.Applied}
}

// Close stops the timers. The session keeps answering reads.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimers()
}

// NavigateTo moves the player into an unlocked room
func (s *Session) NavigateTo(room entities.RoomID) gameplay.Result {
	return s.apply("navigate", func(g *state.Game) gameplay.Result {
		return gameplay.NavigateTo(g, room)
	})
}

// PickUp takes an item from a fixed source
func (s *Session) PickUp(item entities.ItemID) gameplay.Result {
	return s.apply("pickup", func(g *state.Game) gameplay.Result {
		return gameplay.PickUp(g, item)
	})
}

// Search looks through a location
func (s *Session) Search(loc entities.LocationID) gameplay.Result {
	return s.apply("search", func(g *state.Game) gameplay.Result {
		return gameplay.Search(g, loc)
	})
}

// UpdateInput replaces a free-text buffer
func (s *Session) UpdateInput(field entities.Field, value string) gameplay.Result {
	return s.apply("input", func(g *state.Game) gameplay.Result {
		return gameplay.UpdateInput(g, field, value)
	})
}

// Submit attempts a puzzle with its buffered input
func (s *Session) Submit(id entities.PuzzleID) gameplay.Result {
	return s.apply("submit", func(g *state.Game) gameplay.Result {
		return gameplay.Submit(g, id)
	})
}

// Answer fills a text buffer and submits the puzzle that reads it, as one step
func (s *Session) Answer(field entities.Field, value string) gameplay.Result {
	return s.apply("answer", func(g *state.Game) gameplay.Result {
		p, ok := g.Variant.PuzzleFor(field)
		if !ok {
			return gameplay.Result{Outcome: gameplay.Ignored}
		}
		input := gameplay.UpdateInput(g, field, value)
		res := gameplay.Submit(g, p.ID)
		if res.Outcome == gameplay.Ignored && input.Changed() {
			// The text was kept even though nothing was judged
			return input
		}
		return res
	})
}

// PlaceRune appends a symbol to the rune pattern
func (s *Session) PlaceRune(r entities.RuneSymbol) gameplay.Result {
	return s.apply("rune", func(g *state.Game) gameplay.Result {
		return gameplay.PlaceRune(g, r)
	})
}

// ClearRunes empties the rune pattern
func (s *Session) ClearRunes() gameplay.Result {
	return s.apply("clear runes", gameplay.ClearRunes)
}

// AddIngredient stages an item in the cauldron
func (s *Session) AddIngredient(item entities.ItemID) gameplay.Result {
	return s.apply("add ingredient", func(g *state.Game) gameplay.Result {
		return gameplay.AddIngredient(g, item)
	})
}

// Brew stirs the cauldron
func (s *Session) Brew() gameplay.Result {
	return s.apply("brew", gameplay.Brew)
}

// UseHint spends a hint and schedules it to hide again
func (s *Session) UseHint(topic entities.HintTopic) gameplay.Result {
	return s.apply("hint", func(g *state.Game) gameplay.Result {
		res := gameplay.UseHint(g, topic)
		if res.Outcome == gameplay.Applied {
			s.scheduleHintClear(topic)
		}
		return res
	})
}

// apply runs one intent under the lock, settles the result and notifies observers
func (s *Session) apply(name string, intent func(g *state.Game) gameplay.Result) gameplay.Result {
	s.mu.Lock()
	before := s.game.Phase

	res := intent(s.game)
	if res.Outcome == gameplay.Applied {
		gameplay.Settle(s.game)
	}
	s.syncTimers()

	logger := s.log()
	logger.Debug("intent", "name", name, "outcome", res.Outcome, "puzzle", res.Puzzle)
	if res.Outcome == gameplay.Rejected {
		logger.Info("attempt rejected", "puzzle", res.Puzzle, "key", res.Key)
	}
	s.logPhaseChange(before)

	if !res.Changed() {
		s.mu.Unlock()
		return res
	}
	s.publish(res)
	return res
}

// tick is the countdown callback
func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.countdownGen {
		s.mu.Unlock()
		return
	}
	before := s.game.Phase
	res := gameplay.Tick(s.game)
	s.syncTimers()
	s.logPhaseChange(before)
	if !res.Changed() {
		s.mu.Unlock()
		return
	}
	s.publish(res)
}

// clearHint is the hint auto-hide callback
func (s *Session) clearHint(gen uint64, topic entities.HintTopic) {
	s.mu.Lock()
	if gen != s.hintGen {
		s.mu.Unlock()
		return
	}
	s.hintTimer = nil
	res := gameplay.ClearHint(s.game, topic)
	if !res.Changed() {
		s.mu.Unlock()
		return
	}
	s.publish(res)
}

// publish queues a snapshot for every observer. It must be called with mu held and releases it.
// If no other goroutine is delivering, this one drains the queue before returning.
func (s *Session) publish(res gameplay.Result) {
	n := notification{snap: s.game.Snapshot()}
	if res.Outcome == gameplay.Rejected {
		n.notice = &Notice{Puzzle: res.Puzzle, Key: res.Key, Message: s.catalog.Get(res.Key)}
	}
	s.queue = append(s.queue, n)

	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	for len(s.queue) > 0 {
		n := s.queue[0]
		s.queue = s.queue[1:]
		observers := s.observers
		s.mu.Unlock()

		for _, o := range observers {
			if n.notice != nil {
				o.Rejected(*n.notice)
			}
			o.Changed(n.snap)
		}

		s.mu.Lock()
	}
	s.queue = nil
	s.delivering = false
	s.mu.Unlock()
}

// syncTimers starts the countdown on entering Playing and stops both timers on leaving it
func (s *Session) syncTimers() {
	if !s.game.Playing() {
		s.stopTimers()
		return
	}
	if s.countdown != nil {
		return
	}
	s.countdownGen++
	gen := s.countdownGen
	s.countdown = s.clock.Every(time.Second, func() { s.tick(gen) })
}

func (s *Session) stopTimers() {
	if s.countdown != nil {
		s.countdown.Stop()
		s.countdown = nil
	}
	s.countdownGen++
	if s.hintTimer != nil {
		s.hintTimer.Stop()
		s.hintTimer = nil
	}
	s.hintGen++
}

// scheduleHintClear replaces any pending auto-hide with a fresh one for topic
func (s *Session) scheduleHintClear(topic entities.HintTopic) {
	if s.hintTimer != nil {
		s.hintTimer.Stop()
	}
	s.hintGen++
	gen := s.hintGen
	s.hintTimer = s.clock.AfterFunc(s.hintDuration, func() { s.clearHint(gen, topic) })
}

func (s *Session) logPhaseChange(before state.Phase) {
	if s.game.Phase == before {
		return
	}
	s.log().Info("phase changed", "from", before.String(), "to", s.game.Phase.String(), "timeRemaining", s.game.TimeRemaining)
}

// log returns the logger tagged with the current playthrough. Callers hold mu.
func (s *Session) log() *slog.Logger {
	return s.logger.With("sessionID", s.game.ID)
}
