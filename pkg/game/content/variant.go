// Package content holds the puzzle definition tables for each edition of The Witch's Lair.
// An edition is pure data: the gameplay package runs any of them unchanged.
package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"witchlair/pkg/game/entities"
)

// ErrUnknownVariant is returned by Lookup for names that are not registered
var ErrUnknownVariant = errors.New("unknown variant")

// Pickup is an item lying in plain sight that can always be taken
type Pickup struct {
	Item entities.ItemID
	Room entities.RoomID
}

// Variant is one edition of the game
type Variant struct {
	Name     string
	TitleKey string

	// Rooms in navigation order. The first room is where the player starts and is always unlocked.
	Rooms []entities.RoomID

	Puzzles   []entities.Puzzle
	Pickups   []Pickup
	Locations []entities.Location
	Hints     []entities.HintTopic

	// Recipe is the exact cauldron order that brews the escape potion.
	Recipe       []entities.ItemID
	RejectDecoys bool

	// Terminal is the puzzle whose solution wins the game.
	Terminal entities.PuzzleID
}

// StartRoom returns the room every playthrough begins in
func (v *Variant) StartRoom() entities.RoomID {
	return v.Rooms[0]
}

// Puzzle returns the definition for id
func (v *Variant) Puzzle(id entities.PuzzleID) (*entities.Puzzle, bool) {
	for i := range v.Puzzles {
		if v.Puzzles[i].ID == id {
			return &v.Puzzles[i], true
		}
	}
	return nil, false
}

// PuzzleFor returns the puzzle that reads the given input field
func (v *Variant) PuzzleFor(field entities.Field) (*entities.Puzzle, bool) {
	if field == entities.FieldNone {
		return nil, false
	}
	for i := range v.Puzzles {
		if v.Puzzles[i].Input == field {
			return &v.Puzzles[i], true
		}
	}
	return nil, false
}

// PuzzleOfKind returns the first puzzle of the given kind
func (v *Variant) PuzzleOfKind(kind entities.PuzzleKind) (*entities.Puzzle, bool) {
	for i := range v.Puzzles {
		if v.Puzzles[i].Kind == kind {
			return &v.Puzzles[i], true
		}
	}
	return nil, false
}

// HasRoom reports whether the room belongs to this edition
func (v *Variant) HasRoom(id entities.RoomID) bool {
	for _, r := range v.Rooms {
		if r == id {
			return true
		}
	}
	return false
}

// Pickup returns the fixed source of an item
func (v *Variant) Pickup(item entities.ItemID) (Pickup, bool) {
	for _, p := range v.Pickups {
		if p.Item == item {
			return p, true
		}
	}
	return Pickup{}, false
}

// Location returns a search spot by id
func (v *Variant) Location(id entities.LocationID) (entities.Location, bool) {
	for _, l := range v.Locations {
		if l.ID == id {
			return l, true
		}
	}
	return entities.Location{}, false
}

// RequiredLocations lists the search spots holding real ingredients
func (v *Variant) RequiredLocations() []entities.LocationID {
	return requiredIDs(v.Locations)
}

// HasHint reports whether the topic belongs to this edition
func (v *Variant) HasHint(topic entities.HintTopic) bool {
	for _, h := range v.Hints {
		if h == topic {
			return true
		}
	}
	return false
}

var registry = map[string]*Variant{}

// register adds an edition to the registry. Editions that cannot be won never load.
func register(v *Variant) *Variant {
	if err := v.Validate(); err != nil {
		panic(err)
	}
	registry[v.Name] = v
	return v
}

// Lookup returns a registered edition by name
func Lookup(name string) (*Variant, error) {
	v, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownVariant, name, strings.Join(Names(), ", "))
	}
	return v, nil
}

// Names lists the registered editions
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
