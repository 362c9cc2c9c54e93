package entity

// ItemKind is the closed set of item variants.
type ItemKind uint8

const (
	KindResource   ItemKind = iota // crafting material, no direct use
	KindWeapon                     // equippable, carries Damage
	KindConsumable                 // single use, carries Effect
	KindQuest                      // key items that gate doors
)

var kindNames = [...]string{
	KindResource:   "resource",
	KindWeapon:     "weapon",
	KindConsumable: "consumable",
	KindQuest:      "quest",
}

func (k ItemKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseItemKind maps a content-table kind name to an ItemKind.
func ParseItemKind(s string) (ItemKind, bool) {
	for k, name := range kindNames {
		if name == s {
			return ItemKind(k), true
		}
	}
	return 0, false
}

// Item is immutable reference data owned by the content table.
// Names are globally unique; two items are the same item iff their names match.
type Item struct {
	Name        string
	Description string
	Kind        ItemKind
	Damage      int      // KindWeapon only
	Effect      EffectID // KindConsumable only
}

// IsWeapon reports whether the item can be equipped.
func (i *Item) IsWeapon() bool { return i != nil && i.Kind == KindWeapon }

// IsConsumable reports whether the item can be used up for an effect.
func (i *Item) IsConsumable() bool { return i != nil && i.Kind == KindConsumable }
