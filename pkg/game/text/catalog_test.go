package text

import (
	"testing"

	"witchlair/pkg/game/content"
	"witchlair/pkg/game/entities"
)

func TestEnglish_KnownKey(t *testing.T) {
	c := English()
	got := c.Get("REJECTED_DOOR_RIDDLE")
	want := "Incorrect answer. The door remains sealed..."
	if got != want {
		t.Errorf("Get(REJECTED_DOOR_RIDDLE) = %q, want %q", got, want)
	}
}

func TestEnglish_UnknownKeyPassesThrough(t *testing.T) {
	c := English()
	if got := c.Get("NOT_A_KEY"); got != "NOT_A_KEY" {
		t.Errorf("Get(NOT_A_KEY) = %q, want the key back", got)
	}
	if c.Has("NOT_A_KEY") {
		t.Error("Has(NOT_A_KEY) = true, want false")
	}
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	if got := c.Get("WELCOME"); got != "WELCOME" {
		t.Errorf("nil Get = %q, want WELCOME", got)
	}
}

// Every key an edition can emit must have English text
func TestEnglish_CoversEditions(t *testing.T) {
	c := English()
	for _, name := range content.Names() {
		v, err := content.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", name, err)
		}
		t.Run(name, func(t *testing.T) {
			keys := []string{v.TitleKey}
			for _, p := range v.Puzzles {
				keys = append(keys, p.SolvedKey, p.RejectedKey)
			}
			for _, h := range v.Hints {
				keys = append(keys, entities.HintKey(h))
			}
			for _, r := range v.Rooms {
				room, ok := entities.LookupRoom(r)
				if !ok {
					t.Fatalf("LookupRoom(%q) not found", r)
				}
				keys = append(keys, room.NameKey, room.DescriptionKey)
			}
			for _, key := range keys {
				if key != "" && !c.Has(key) {
					t.Errorf("missing catalog entry for %q", key)
				}
			}
		})
	}
}
