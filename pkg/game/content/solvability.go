package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"witchlair/pkg/game/entities"
)

// ErrUnsolvable is returned by Validate for editions that cannot be finished
var ErrUnsolvable = errors.New("edition cannot be finished")

// reach is everything a perfect player could have after some amount of play
type reach struct {
	solved   mapset.Set[entities.PuzzleID]
	items    mapset.Set[entities.ItemID]
	searched mapset.Set[entities.LocationID]
	unlocked mapset.Set[entities.RoomID]
}

func (r reach) IsSolved(id entities.PuzzleID) bool      { return r.solved.Has(id) }
func (r reach) HasItem(id entities.ItemID) bool         { return r.items.Has(id) }
func (r reach) HasSearched(id entities.LocationID) bool { return r.searched.Has(id) }
func (r reach) IsUnlocked(id entities.RoomID) bool      { return r.unlocked.Has(id) }

// Validate checks that the edition can be won. It repeatedly collects every item in an open room
// and solves every available puzzle until nothing changes, then looks at the terminal puzzle.
// Consumed ingredients are not tracked, so this proves reachability, not a route.
func (v *Variant) Validate() error {
	r := reach{
		solved:   mapset.New[entities.PuzzleID](),
		items:    mapset.New[entities.ItemID](),
		searched: mapset.New[entities.LocationID](),
		unlocked: mapset.New[entities.RoomID](),
	}
	if len(v.Rooms) == 0 {
		return fmt.Errorf("%w: %s has no rooms", ErrUnsolvable, v.Name)
	}
	r.unlocked.Put(v.StartRoom())

	for changed := true; changed; {
		changed = false

		for _, p := range v.Pickups {
			if r.unlocked.Has(p.Room) && !r.items.Has(p.Item) {
				r.items.Put(p.Item)
				changed = true
			}
		}
		for _, l := range v.Locations {
			if r.unlocked.Has(l.Room) && !r.searched.Has(l.ID) {
				r.searched.Put(l.ID)
				r.items.Put(l.Item)
				changed = true
			}
		}

		for i := range v.Puzzles {
			p := &v.Puzzles[i]
			if r.solved.Has(p.ID) || !p.Available(r) {
				continue
			}
			if p.Kind == entities.KindBrew && !v.canBrew(r) {
				continue
			}
			r.solved.Put(p.ID)
			for _, item := range p.Reward.Items {
				r.items.Put(item)
			}
			for _, room := range p.Reward.Unlocks {
				r.unlocked.Put(room)
			}
			changed = true
		}
	}

	if !r.solved.Has(v.Terminal) {
		var stuck []string
		for _, p := range v.Puzzles {
			if !r.solved.Has(p.ID) {
				stuck = append(stuck, string(p.ID))
			}
		}
		sort.Strings(stuck)
		return fmt.Errorf("%w: %s (unreachable: %s)", ErrUnsolvable, v.Name, strings.Join(stuck, ", "))
	}
	return nil
}

func (v *Variant) canBrew(r reach) bool {
	if len(v.Recipe) == 0 {
		return false
	}
	for _, item := range v.Recipe {
		if !r.items.Has(item) {
			return false
		}
	}
	return true
}
