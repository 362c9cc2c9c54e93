package entity

const (
	// MaxStat caps HP, hunger and sanity.
	MaxStat = 100
	// StarvationDamage is the HP lost when hunger would drop below zero.
	StarvationDamage = 5
)

// Player is the single player character.
// Invariant: HP, Hunger and Sanity stay within [0, MaxStat].
type Player struct {
	HP, Hunger, Sanity int
	X, Y               int
	Inventory          Inventory
	// Weapon is a non-owning reference into the content table. It stays set
	// even if the item is no longer held.
	Weapon *Item
}

// NewPlayer returns a fully healthy, fed and sane player at (x, y).
func NewPlayer(x, y int) *Player {
	return &Player{HP: MaxStat, Hunger: MaxStat, Sanity: MaxStat, X: x, Y: y}
}

func clampStat(v int) int {
	switch {
	case v < 0:
		return 0
	case v > MaxStat:
		return MaxStat
	}
	return v
}

func (p *Player) TakeDamage(n int) { p.HP = clampStat(p.HP - n) }

func (p *Player) Heal(n int) { p.HP = clampStat(p.HP + n) }

func (p *Player) Eat(n int) { p.Hunger = clampStat(p.Hunger + n) }

func (p *Player) GainSanity(n int) { p.Sanity = clampStat(p.Sanity + n) }

// LoseSanity has no side effect at zero; callers decide what that means.
func (p *Player) LoseSanity(n int) { p.Sanity = clampStat(p.Sanity - n) }

// LoseHunger lowers hunger. If the subtraction would go negative the player
// starves: hunger pins at zero, StarvationDamage is taken, and it returns true.
func (p *Player) LoseHunger(n int) (starved bool) {
	p.Hunger -= n
	if p.Hunger < 0 {
		p.Hunger = 0
		p.TakeDamage(StarvationDamage)
		return true
	}
	p.Hunger = clampStat(p.Hunger)
	return false
}

func (p *Player) AddItem(it *Item, n int) { p.Inventory.Add(it, n) }

// RemoveItem reports false and changes nothing when fewer than n are held.
func (p *Player) RemoveItem(it *Item, n int) bool { return p.Inventory.Remove(it, n) }

// HasItem is a case-insensitive existence check by item name.
func (p *Player) HasItem(name string) bool { return p.Inventory.Count(name) > 0 }

// Count returns how many of the named item are held.
func (p *Player) Count(name string) int { return p.Inventory.Count(name) }

// Equip sets the equipped weapon without consuming it. Non-weapons are refused.
func (p *Player) Equip(it *Item) bool {
	if !it.IsWeapon() {
		return false
	}
	p.Weapon = it
	return true
}
