package entities

import "strings"

// ItemID identifies a collectible item
type ItemID string

// Items of both editions
const (
	ItemMap          ItemID = "map"
	ItemIronKey      ItemID = "iron_key"
	ItemMoonflower   ItemID = "moonflower"
	ItemRavenFeather ItemID = "raven_feather"
	ItemCrystalShard ItemID = "crystal_shard"
	ItemShadowMoss   ItemID = "shadow_moss"
	ItemSpellScroll  ItemID = "spell_scroll"
	ItemEscapePotion ItemID = "escape_potion"

	// Decoys only turn up while searching. They look like ingredients but ruin a brew.
	ItemToadstool    ItemID = "toadstool"
	ItemCrowFeather  ItemID = "crow_feather"
	ItemQuartzPebble ItemID = "quartz_pebble"
)

// Item represents a collectible item
type Item struct {
	ID    ItemID
	Name  string
	Icon  string
	Decoy bool
}

var items = map[ItemID]Item{
	ItemMap:          {ID: ItemMap, Name: "Ancient Map", Icon: "▤"},
	ItemIronKey:      {ID: ItemIronKey, Name: "Iron Key", Icon: "⚷"},
	ItemMoonflower:   {ID: ItemMoonflower, Name: "Moonflower", Icon: "✿"},
	ItemRavenFeather: {ID: ItemRavenFeather, Name: "Raven Feather", Icon: "≈"},
	ItemCrystalShard: {ID: ItemCrystalShard, Name: "Crystal Shard", Icon: "◆"},
	ItemShadowMoss:   {ID: ItemShadowMoss, Name: "Shadow Moss", Icon: "☠"},
	ItemSpellScroll:  {ID: ItemSpellScroll, Name: "Spell Scroll", Icon: "✉"},
	ItemEscapePotion: {ID: ItemEscapePotion, Name: "Escape Potion", Icon: "⚱"},
	ItemToadstool:    {ID: ItemToadstool, Name: "Toadstool", Icon: "♠", Decoy: true},
	ItemCrowFeather:  {ID: ItemCrowFeather, Name: "Crow Feather", Icon: "≈", Decoy: true},
	ItemQuartzPebble: {ID: ItemQuartzPebble, Name: "Quartz Pebble", Icon: "◇", Decoy: true},
}

// LookupItem returns the descriptor for an item id
func LookupItem(id ItemID) (Item, bool) {
	it, ok := items[id]
	return it, ok
}

// ItemName returns the display name of an item, falling back to its id
func ItemName(id ItemID) string {
	if it, ok := items[id]; ok {
		return it.Name
	}
	return string(id)
}

// IsDecoy reports whether the item spoils a brew
func IsDecoy(id ItemID) bool {
	return items[id].Decoy
}

// ParseItem resolves player text ("Raven Feather", "raven_feather") to an item id
func ParseItem(s string) (ItemID, bool) {
	id := ItemID(slug(s))
	_, ok := items[id]
	return id, ok
}

// slug lowercases s and joins its words with underscores
func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "_")
}
