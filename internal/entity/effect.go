package entity

import "fmt"

// EffectID names a consumable effect. Effects are data: the behaviour lives in
// the table below and is resolved by ID.
type EffectID uint8

const (
	EffectNone EffectID = iota
	EffectHeal20
	EffectHeal75
	EffectEat40
	EffectDistract
)

type effectDef struct {
	name  string
	apply func(p *Player) string
}

var effects = [...]effectDef{
	EffectNone: {"none", func(*Player) string { return "Nothing happens." }},
	EffectHeal20: {"heal20", func(p *Player) string {
		p.Heal(20)
		return "You apply the bandage. It stings, but you feel much better. (+20 HP)"
	}},
	EffectHeal75: {"heal75", func(p *Player) string {
		p.Heal(75)
		return "You apply the med-kit. The relief is immediate. (+75 HP)"
	}},
	EffectEat40: {"eat40", func(p *Player) string {
		p.Eat(40)
		return "It doesn't taste good, but it's food. (+40 HG)"
	}},
	EffectDistract: {"distract", func(*Player) string {
		return "You get ready to throw the bottle."
	}},
}

func (id EffectID) String() string {
	if int(id) < len(effects) {
		return effects[id].name
	}
	return fmt.Sprintf("effect(%d)", uint8(id))
}

// ParseEffect maps a content-table effect name to its ID.
func ParseEffect(s string) (EffectID, bool) {
	for id, def := range effects {
		if def.name == s {
			return EffectID(id), true
		}
	}
	return EffectNone, false
}

// Apply runs the effect against p and returns the message describing it.
func (id EffectID) Apply(p *Player) string {
	if int(id) >= len(effects) {
		return effects[EffectNone].apply(p)
	}
	return effects[id].apply(p)
}
