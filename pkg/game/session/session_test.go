package session_test

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"witchlair/pkg/engine/clock"
	"witchlair/pkg/game/content"
	"witchlair/pkg/game/entities"
	"witchlair/pkg/game/gameplay"
	"witchlair/pkg/game/session"
	"witchlair/pkg/game/session/mocks"
	"witchlair/pkg/game/state"
)

func newSession(t *testing.T, v *content.Variant) (*session.Session, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual()
	s, err := session.New(session.Config{Variant: v, Clock: clk, HintDuration: 8 * time.Second})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	t.Cleanup(s.Close)
	return s, clk
}

func mustApply(t *testing.T, what string, res gameplay.Result) {
	t.Helper()
	if res.Outcome != gameplay.Applied {
		t.Fatalf("%s = %v, want applied", what, res.Outcome)
	}
}

// playClassic takes a fresh classic session all the way to the open seal
func playClassic(t *testing.T, s *session.Session) {
	t.Helper()
	mustApply(t, "Start", s.Start())
	mustApply(t, "Submit(map)", s.Submit(entities.PuzzleMap))
	mustApply(t, "NavigateTo(entrance)", s.NavigateTo(entities.RoomEntrance))
	mustApply(t, "riddle", s.Answer(entities.FieldRiddle, " Shadow "))
	mustApply(t, "NavigateTo(potion_room)", s.NavigateTo(entities.RoomPotionRoom))
	mustApply(t, "mirror", s.Answer(entities.FieldMirror, "thgilnoom"))
	mustApply(t, "spell", s.Answer(entities.FieldSpell, "MIDNIGHT"))
	for _, item := range []entities.ItemID{entities.ItemMoonflower, entities.ItemRavenFeather, entities.ItemShadowMoss} {
		mustApply(t, "PickUp("+string(item)+")", s.PickUp(item))
	}
	for _, item := range content.PotionRecipe {
		mustApply(t, "AddIngredient("+string(item)+")", s.AddIngredient(item))
	}
	mustApply(t, "Brew", s.Brew())
	mustApply(t, "NavigateTo(lair)", s.NavigateTo(entities.RoomLair))
}

func TestNew_RequiresVariant(t *testing.T) {
	if _, err := session.New(session.Config{}); !errors.Is(err, session.ErrNoVariant) {
		t.Errorf("New without a variant: error = %v, want ErrNoVariant", err)
	}
}

func TestCountdown_StartsOnce(t *testing.T) {
	s, clk := newSession(t, content.Classic)
	clk.Advance(5 * time.Second)
	if got := s.Snapshot().TimeRemaining; got != state.TimeLimit {
		t.Errorf("TimeRemaining before Start = %d, want %d", got, state.TimeLimit)
	}

	s.Start()
	if res := s.Start(); res.Outcome != gameplay.Ignored {
		t.Errorf("second Start = %v, want ignored", res.Outcome)
	}
	if clk.Pending() != 1 {
		t.Errorf("live timers = %d, want 1", clk.Pending())
	}

	clk.Advance(3 * time.Second)
	if got := s.Snapshot().TimeRemaining; got != state.TimeLimit-3 {
		t.Errorf("TimeRemaining = %d, want %d", got, state.TimeLimit-3)
	}
}

func TestCountdown_RunsOutAndLoses(t *testing.T) {
	s, clk := newSession(t, content.Classic)
	s.Start()
	clk.Advance(state.TimeLimit * time.Second)

	snap := s.Snapshot()
	if snap.Phase != state.PhaseLost {
		t.Fatalf("Phase = %v, want lost", snap.Phase)
	}
	if snap.TimeRemaining != 0 {
		t.Errorf("TimeRemaining = %d, want 0", snap.TimeRemaining)
	}
	if clk.Pending() != 0 {
		t.Errorf("live timers after loss = %d, want 0", clk.Pending())
	}

	clk.Advance(10 * time.Second)
	if got := s.Snapshot().TimeRemaining; got != 0 {
		t.Errorf("TimeRemaining after loss = %d, want 0", got)
	}
	if res := s.Submit(entities.PuzzleMap); res.Outcome != gameplay.Ignored {
		t.Errorf("Submit(map) after loss = %v, want ignored", res.Outcome)
	}
}

func TestHint_AutoClears(t *testing.T) {
	s, clk := newSession(t, content.Classic)
	s.Start()
	mustApply(t, "UseHint(map)", s.UseHint(entities.HintMap))

	clk.Advance(7 * time.Second)
	if got := s.Snapshot().ActiveHint; got != entities.HintMap {
		t.Errorf("ActiveHint after 7s = %q, want map", got)
	}
	clk.Advance(time.Second)
	if got := s.Snapshot().ActiveHint; got != entities.HintNone {
		t.Errorf("ActiveHint after 8s = %q, want none", got)
	}
}

func TestHint_NewHintCancelsPendingClear(t *testing.T) {
	s, clk := newSession(t, content.Classic)
	s.Start()
	s.UseHint(entities.HintMap)
	clk.Advance(5 * time.Second)
	s.UseHint(entities.HintRiddle)

	// The first hint's clear would have fired at 8s
	clk.Advance(4 * time.Second)
	if got := s.Snapshot().ActiveHint; got != entities.HintRiddle {
		t.Errorf("ActiveHint at 9s = %q, want riddle", got)
	}
	clk.Advance(4 * time.Second)
	if got := s.Snapshot().ActiveHint; got != entities.HintNone {
		t.Errorf("ActiveHint at 13s = %q, want none", got)
	}
	if got := s.Snapshot().HintsLeft; got != state.HintBudget-2 {
		t.Errorf("HintsLeft = %d, want %d", got, state.HintBudget-2)
	}
}

func TestReset(t *testing.T) {
	s, clk := newSession(t, content.Classic)
	firstID := s.Snapshot().ID
	s.Start()
	s.Submit(entities.PuzzleMap)
	s.UseHint(entities.HintRiddle)
	clk.Advance(30 * time.Second)

	mustApply(t, "Reset", s.Reset())
	snap := s.Snapshot()
	if snap.Phase != state.PhaseIntro {
		t.Errorf("Phase = %v, want intro", snap.Phase)
	}
	if snap.TimeRemaining != state.TimeLimit {
		t.Errorf("TimeRemaining = %d, want %d", snap.TimeRemaining, state.TimeLimit)
	}
	if snap.HintsLeft != state.HintBudget || snap.ActiveHint != entities.HintNone {
		t.Errorf("hints = %d/%q, want %d/none", snap.HintsLeft, snap.ActiveHint, state.HintBudget)
	}
	if snap.Solved[entities.PuzzleMap] || len(snap.Inventory) != 0 {
		t.Errorf("progress survived reset: solved=%v inventory=%v", snap.Solved, snap.Inventory)
	}
	if snap.ID == firstID {
		t.Error("session id unchanged after Reset, want a new one")
	}
	if clk.Pending() != 0 {
		t.Errorf("live timers after Reset = %d, want 0", clk.Pending())
	}

	clk.Advance(5 * time.Second)
	if got := s.Snapshot().TimeRemaining; got != state.TimeLimit {
		t.Errorf("TimeRemaining ticking on the intro screen: %d", got)
	}
}

func TestClassic_Win(t *testing.T) {
	s, clk := newSession(t, content.Classic)
	playClassic(t, s)
	clk.Advance(42 * time.Second)

	if res := s.Answer(entities.FieldCode, "739"); res.Outcome != gameplay.Pending {
		t.Errorf("three digit code = %v, want pending", res.Outcome)
	}
	mustApply(t, "code", s.Answer(entities.FieldCode, "7392"))

	snap := s.Snapshot()
	if snap.Phase != state.PhaseWon {
		t.Fatalf("Phase = %v, want won", snap.Phase)
	}
	if clk.Pending() != 0 {
		t.Errorf("live timers after win = %d, want 0", clk.Pending())
	}
	clk.Advance(time.Minute)
	if got := s.Snapshot().TimeRemaining; got != state.TimeLimit-42 {
		t.Errorf("TimeRemaining after win = %d, want %d", got, state.TimeLimit-42)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newSession(t, content.Classic)
	s.Start()
	s.PickUp(entities.ItemMoonflower)

	snap := s.Snapshot()
	snap.Inventory[0] = entities.ItemEscapePotion
	snap.Unlocked[entities.RoomLair] = true

	fresh := s.Snapshot()
	if fresh.Inventory[0] != entities.ItemMoonflower {
		t.Errorf("Inventory[0] = %q, want moonflower", fresh.Inventory[0])
	}
	if fresh.Unlocked[entities.RoomLair] {
		t.Error("Unlocked[lair] = true, want false")
	}
}

func TestObserver_ChangedPerAppliedIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newSession(t, content.Classic)
	obs := mocks.NewMockObserver(ctrl)
	s.Subscribe(obs)

	var phases []state.Phase
	obs.EXPECT().Changed(gomock.Any()).Do(func(snap state.Snapshot) {
		phases = append(phases, snap.Phase)
	}).Times(2)

	s.Start()
	s.Submit(entities.PuzzleMap)

	// Ignored intents stay quiet
	s.NavigateTo(entities.RoomLair)
	s.Submit(entities.PuzzleMap)

	if len(phases) != 2 || phases[0] != state.PhasePlaying {
		t.Errorf("phases = %v, want two playing snapshots", phases)
	}
}

func TestObserver_RejectedNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newSession(t, content.Classic)
	s.Start()
	s.Submit(entities.PuzzleMap)

	obs := mocks.NewMockObserver(ctrl)
	unsubscribe := s.Subscribe(obs)

	gomock.InOrder(
		obs.EXPECT().Rejected(session.Notice{
			Puzzle:  entities.PuzzleDoorRiddle,
			Key:     "REJECTED_DOOR_RIDDLE",
			Message: "Incorrect answer. The door remains sealed...",
		}),
		obs.EXPECT().Changed(gomock.Any()).Do(func(snap state.Snapshot) {
			if _, ok := snap.Inputs[entities.FieldRiddle]; ok {
				t.Error("riddle buffer kept after rejection, want cleared")
			}
		}),
	)

	if res := s.Answer(entities.FieldRiddle, "light"); res.Outcome != gameplay.Rejected {
		t.Errorf("wrong riddle = %v, want rejected", res.Outcome)
	}

	unsubscribe()
	s.Answer(entities.FieldRiddle, "darkness")
}

// funcObserver forwards Changed to a function and drops notices
type funcObserver struct {
	changed func(state.Snapshot)
}

func (f *funcObserver) Changed(snap state.Snapshot) { f.changed(snap) }
func (f *funcObserver) Rejected(session.Notice)     {}

func TestObserver_MayReenterSession(t *testing.T) {
	s, _ := newSession(t, content.Classic)

	var mapSolved []bool
	s.Subscribe(&funcObserver{changed: func(snap state.Snapshot) {
		mapSolved = append(mapSolved, snap.Solved[entities.PuzzleMap])
		if live := s.Snapshot(); live.Phase == state.PhasePlaying && !live.Solved[entities.PuzzleMap] {
			s.Submit(entities.PuzzleMap)
		}
	}})

	mustApply(t, "Start", s.Start())
	if !slices.Equal(mapSolved, []bool{false, true}) {
		t.Errorf("map solved per notification = %v, want [false true]", mapSolved)
	}
	if !s.Snapshot().Unlocked[entities.RoomEntrance] {
		t.Error("entrance locked, want the observer's Submit(map) applied")
	}
}

func TestObserver_ConcurrentIntentsAndTicks(t *testing.T) {
	s, clk := newSession(t, content.Classic)

	var mu sync.Mutex
	var times []int
	s.Subscribe(&funcObserver{changed: func(snap state.Snapshot) {
		s.Snapshot()
		mu.Lock()
		times = append(times, snap.TimeRemaining)
		mu.Unlock()
	}})
	mustApply(t, "Start", s.Start())

	const ticks = 200
	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		for w := range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range 200 {
					s.UpdateInput(entities.FieldRiddle, fmt.Sprintf("guess %d-%d", w, i))
					s.UseHint(entities.HintRiddle)
				}
			}()
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range ticks {
				clk.Advance(time.Second)
			}
		}()
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("intents and ticks still blocked after 5s")
	}

	if got := s.Snapshot().TimeRemaining; got != state.TimeLimit-ticks {
		t.Errorf("TimeRemaining = %d, want %d", got, state.TimeLimit-ticks)
	}
	mu.Lock()
	defer mu.Unlock()
	for i := 1; i < len(times); i++ {
		if times[i] > times[i-1] {
			t.Fatalf("notification %d has TimeRemaining %d after %d, want mutation order", i, times[i], times[i-1])
		}
	}
}

func TestObserver_SeesCountdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, clk := newSession(t, content.Classic)
	s.Start()

	obs := mocks.NewMockObserver(ctrl)
	s.Subscribe(obs)

	var last int
	obs.EXPECT().Changed(gomock.Any()).Do(func(snap state.Snapshot) {
		last = snap.TimeRemaining
	}).Times(3)

	clk.Advance(3 * time.Second)
	if last != state.TimeLimit-3 {
		t.Errorf("last TimeRemaining = %d, want %d", last, state.TimeLimit-3)
	}
}

func TestRunes_SearchAndPattern(t *testing.T) {
	s, _ := newSession(t, content.Runes)
	s.Start()
	s.Submit(entities.PuzzleMap)
	s.Answer(entities.FieldRiddle, "shadow")
	s.Answer(entities.FieldSpell, "midnight")

	for _, r := range []entities.RuneSymbol{entities.RuneStar, entities.RuneMoon} {
		s.PlaceRune(r)
	}
	if res := s.Submit(entities.PuzzleRunePattern); res.Outcome != gameplay.Rejected {
		t.Errorf("partial rune pattern = %v, want rejected", res.Outcome)
	}
	if got := s.Snapshot().RuneFailures; got != 1 {
		t.Errorf("RuneFailures = %d, want 1", got)
	}

	for _, r := range content.RuneTarget {
		mustApply(t, "PlaceRune("+string(r)+")", s.PlaceRune(r))
	}
	mustApply(t, "Submit(rune_pattern)", s.Submit(entities.PuzzleRunePattern))
	if !s.Snapshot().Unlocked[entities.RoomLair] {
		t.Error("lair locked after the rune pattern, want unlocked")
	}

	for _, id := range content.Runes.RequiredLocations() {
		mustApply(t, "Search("+string(id)+")", s.Search(id))
	}
	if !s.Snapshot().Solved[entities.PuzzleHiddenObjects] {
		t.Error("hidden_objects unsolved after every required search")
	}
}
