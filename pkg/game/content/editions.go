package content

import "witchlair/pkg/game/entities"

// Canonical answers
const (
	RiddleAnswer    = "shadow"
	MirrorTarget    = "moonlight"
	SpellbookAnswer = "midnight"
	EscapeCode      = "7392"
)

// RuneTarget is the order the rune wheel must be turned in
var RuneTarget = []entities.RuneSymbol{
	entities.RuneMoon,
	entities.RuneStar,
	entities.RuneSkull,
	entities.RuneEye,
	entities.RuneFlame,
}

// PotionRecipe is the brewing order shared by both editions
var PotionRecipe = []entities.ItemID{
	entities.ItemMoonflower,
	entities.ItemRavenFeather,
	entities.ItemCrystalShard,
	entities.ItemShadowMoss,
}

var lairRooms = []entities.RoomID{
	entities.RoomForest,
	entities.RoomEntrance,
	entities.RoomPotionRoom,
	entities.RoomLair,
}

func mapPuzzle() entities.Puzzle {
	return entities.Puzzle{
		ID:        entities.PuzzleMap,
		Kind:      entities.KindAction,
		Room:      entities.RoomForest,
		Hint:      entities.HintMap,
		Reward:    entities.Reward{Items: []entities.ItemID{entities.ItemMap}, Unlocks: []entities.RoomID{entities.RoomEntrance}},
		SolvedKey: "SOLVED_MAP",
	}
}

func doorRiddle() entities.Puzzle {
	return entities.Puzzle{
		ID:          entities.PuzzleDoorRiddle,
		Kind:        entities.KindAnswer,
		Room:        entities.RoomEntrance,
		Input:       entities.FieldRiddle,
		Hint:        entities.HintRiddle,
		Check:       entities.Equals(RiddleAnswer),
		Reward:      entities.Reward{Items: []entities.ItemID{entities.ItemIronKey}, Unlocks: []entities.RoomID{entities.RoomPotionRoom}},
		SolvedKey:   "SOLVED_DOOR_RIDDLE",
		RejectedKey: "REJECTED_DOOR_RIDDLE",
	}
}

func spellbook(unlocks ...entities.RoomID) entities.Puzzle {
	return entities.Puzzle{
		ID:          entities.PuzzleSpellbook,
		Kind:        entities.KindAnswer,
		Room:        entities.RoomPotionRoom,
		Input:       entities.FieldSpell,
		Hint:        entities.HintSpellbook,
		Check:       entities.Equals(SpellbookAnswer),
		Reward:      entities.Reward{Items: []entities.ItemID{entities.ItemSpellScroll}, Unlocks: unlocks},
		SolvedKey:   "SOLVED_SPELLBOOK",
		RejectedKey: "REJECTED_SPELLBOOK",
	}
}

func potion() entities.Puzzle {
	return entities.Puzzle{
		ID:          entities.PuzzlePotion,
		Kind:        entities.KindBrew,
		Room:        entities.RoomPotionRoom,
		Hint:        entities.HintPotion,
		Requires:    entities.Solved(entities.PuzzleSpellbook),
		Reward:      entities.Reward{Items: []entities.ItemID{entities.ItemEscapePotion}},
		SolvedKey:   "SOLVED_POTION",
		RejectedKey: "REJECTED_POTION",
	}
}

func finalEscape() entities.Puzzle {
	return entities.Puzzle{
		ID:          entities.PuzzleFinalEscape,
		Kind:        entities.KindAnswer,
		Room:        entities.RoomLair,
		Input:       entities.FieldCode,
		Hint:        entities.HintFinal,
		Requires:    entities.Holding(entities.ItemEscapePotion),
		Check:       entities.Exact(EscapeCode),
		Pending:     entities.ShorterThan(entities.CodeLength),
		SolvedKey:   "SOLVED_FINAL_ESCAPE",
		RejectedKey: "REJECTED_FINAL_ESCAPE",
	}
}

// Classic is the mirror and spellbook edition. Solving the spellbook opens the lair directly.
var Classic = register(&Variant{
	Name:     "classic",
	TitleKey: "TITLE_CLASSIC",
	Rooms:    lairRooms,
	Puzzles: []entities.Puzzle{
		mapPuzzle(),
		doorRiddle(),
		{
			ID:          entities.PuzzleMirror,
			Kind:        entities.KindAnswer,
			Room:        entities.RoomPotionRoom,
			Input:       entities.FieldMirror,
			Hint:        entities.HintMirror,
			Check:       entities.Reversed(MirrorTarget),
			Reward:      entities.Reward{Items: []entities.ItemID{entities.ItemCrystalShard}},
			SolvedKey:   "SOLVED_MIRROR",
			RejectedKey: "REJECTED_MIRROR",
		},
		spellbook(entities.RoomLair),
		potion(),
		finalEscape(),
	},
	Pickups: []Pickup{
		{Item: entities.ItemMoonflower, Room: entities.RoomForest},
		{Item: entities.ItemRavenFeather, Room: entities.RoomEntrance},
		{Item: entities.ItemShadowMoss, Room: entities.RoomPotionRoom},
	},
	Hints: []entities.HintTopic{
		entities.HintMap,
		entities.HintRiddle,
		entities.HintMirror,
		entities.HintSpellbook,
		entities.HintPotion,
		entities.HintFinal,
	},
	Recipe:   PotionRecipe,
	Terminal: entities.PuzzleFinalEscape,
})

var runeLocations = []entities.Location{
	{ID: entities.LocationFairyRing, Room: entities.RoomForest, Item: entities.ItemMoonflower, Required: true, Name: "Fairy Ring"},
	{ID: entities.LocationMushroomPatch, Room: entities.RoomForest, Item: entities.ItemToadstool, Name: "Mushroom Patch"},
	{ID: entities.LocationRavenPerch, Room: entities.RoomEntrance, Item: entities.ItemRavenFeather, Required: true, Name: "Raven Perch"},
	{ID: entities.LocationDustyShelf, Room: entities.RoomEntrance, Item: entities.ItemCrowFeather, Name: "Dusty Shelf"},
	{ID: entities.LocationCrackedMirror, Room: entities.RoomPotionRoom, Item: entities.ItemCrystalShard, Required: true, Name: "Cracked Mirror"},
	{ID: entities.LocationDampCorner, Room: entities.RoomPotionRoom, Item: entities.ItemShadowMoss, Required: true, Name: "Damp Corner"},
	{ID: entities.LocationAshHeap, Room: entities.RoomPotionRoom, Item: entities.ItemQuartzPebble, Name: "Ash Heap"},
}

// Runes is the search and rune wheel edition. The lair stays sealed until the rune pattern is set.
var Runes = register(&Variant{
	Name:     "runes",
	TitleKey: "TITLE_RUNES",
	Rooms:    lairRooms,
	Puzzles: []entities.Puzzle{
		mapPuzzle(),
		doorRiddle(),
		spellbook(),
		{
			ID:          entities.PuzzleRunePattern,
			Kind:        entities.KindRunes,
			Room:        entities.RoomPotionRoom,
			Hint:        entities.HintRunes,
			Requires:    entities.Solved(entities.PuzzleSpellbook),
			Check:       entities.Sequence(RuneTarget...),
			Reward:      entities.Reward{Unlocks: []entities.RoomID{entities.RoomLair}},
			SolvedKey:   "SOLVED_RUNE_PATTERN",
			RejectedKey: "REJECTED_RUNE_PATTERN",
		},
		{
			ID:        entities.PuzzleHiddenObjects,
			Kind:      entities.KindDerived,
			Hint:      entities.HintSearch,
			Requires:  entities.Searched(requiredIDs(runeLocations)...),
			SolvedKey: "SOLVED_HIDDEN_OBJECTS",
		},
		potion(),
		finalEscape(),
	},
	Locations: runeLocations,
	Hints: []entities.HintTopic{
		entities.HintMap,
		entities.HintRiddle,
		entities.HintSpellbook,
		entities.HintRunes,
		entities.HintSearch,
		entities.HintPotion,
		entities.HintFinal,
	},
	Recipe:       PotionRecipe,
	RejectDecoys: true,
	Terminal:     entities.PuzzleFinalEscape,
})

func requiredIDs(locations []entities.Location) []entities.LocationID {
	var ids []entities.LocationID
	for _, l := range locations {
		if l.Required {
			ids = append(ids, l.ID)
		}
	}
	return ids
}
