package entity

// Archetype is the closed set of creature variants.
type Archetype uint8

const (
	ArchetypeShambler Archetype = iota
	ArchetypeStalker
	ArchetypeWhisperer
	ArchetypeAnomaly
)

type archetypeStats struct {
	name   string
	maxHP  int
	attack int
}

var archetypes = [...]archetypeStats{
	ArchetypeShambler:  {"Shambler", 30, 10},
	ArchetypeStalker:   {"Stalker", 50, 15},
	ArchetypeWhisperer: {"Whisperer", 20, 5},
	ArchetypeAnomaly:   {"Anomaly", 200, 0},
}

func (a Archetype) String() string { return a.stats().name }

// MaxHP is the archetype's starting and maximum health.
func (a Archetype) MaxHP() int { return a.stats().maxHP }

// Attack is the HP damage the archetype deals per counter-attack.
func (a Archetype) Attack() int { return a.stats().attack }

func (a Archetype) stats() archetypeStats {
	if int(a) < len(archetypes) {
		return archetypes[a]
	}
	return archetypeStats{name: "Creature"}
}

// ParseArchetype maps a content-table creature name (e.g. "shambler") to an
// Archetype. Matching is case-insensitive.
func ParseArchetype(s string) (Archetype, bool) {
	for a, st := range archetypes {
		if equalFold(st.name, s) {
			return Archetype(a), true
		}
	}
	return 0, false
}

// Creature is a hostile (or obstacle) living in one zone.
// Invariant: 0 <= HP <= Archetype.MaxHP().
type Creature struct {
	Archetype Archetype
	HP        int
	X, Y      int
}

// NewCreature returns a full-health creature of archetype a at (x, y).
func NewCreature(a Archetype, x, y int) *Creature {
	return &Creature{Archetype: a, HP: a.MaxHP(), X: x, Y: y}
}

func (c *Creature) Name() string { return c.Archetype.String() }

func (c *Creature) Attack() int { return c.Archetype.Attack() }

// TakeDamage lowers HP, never below zero.
func (c *Creature) TakeDamage(n int) {
	c.HP -= n
	if c.HP < 0 {
		c.HP = 0
	}
}

func (c *Creature) Alive() bool { return c.HP > 0 }

// Stationary creatures never take a step during the creature pass.
func (c *Creature) Stationary() bool { return c.Archetype == ArchetypeAnomaly }

// DrainsSanity reports whether the creature's counter-attack also hits sanity.
func (c *Creature) DrainsSanity() bool { return c.Archetype == ArchetypeWhisperer }
