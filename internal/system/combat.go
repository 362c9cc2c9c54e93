package system

import (
	"fmt"
	"strings"

	"static-decay/internal/entity"
	"static-decay/internal/zone"
)

const (
	// BaseDamage is dealt by an unarmed attack.
	BaseDamage = 5
	// RunChance is the percent chance that running away succeeds.
	RunChance = 40
	// WhisperSanityDamage is the sanity lost to a whisperer's counter-attack.
	WhisperSanityDamage = 20
)

// Roller is the randomness source used by combat and container searches.
// *rand.Rand satisfies it.
type Roller interface {
	Intn(n int) int
}

// Action is a player's choice in a combat round.
type Action uint8

const (
	ActionAttack Action = iota
	ActionItem
	ActionRun
)

// ParseAction maps a combat token to an Action by its first letter,
// ignoring case.
func ParseAction(token string) (Action, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}
	switch token[0] {
	case 'a', 'A':
		return ActionAttack, true
	case 'i', 'I':
		return ActionItem, true
	case 'r', 'R':
		return ActionRun, true
	}
	return 0, false
}

// Phase is the combat state machine's current state.
type Phase uint8

const (
	PhaseChoosingAction Phase = iota
	PhaseChoosingItem
	PhaseOver
)

// Outcome is how a finished combat ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeEscaped
	OutcomePlayerDefeated
	OutcomeCreatureDefeated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEscaped:
		return "escaped"
	case OutcomePlayerDefeated:
		return "player defeated"
	case OutcomeCreatureDefeated:
		return "creature defeated"
	}
	return "none"
}

// Tally counts what happened during one combat.
type Tally struct {
	Rounds      int
	DamageDealt int
	DamageTaken int
	SanityLost  int
	ItemsUsed   int
}

// Combat resolves one player-versus-creature encounter round by round.
// Each call returns the messages it produced, in order.
type Combat struct {
	Creature *entity.Creature
	Tally    Tally

	player  *entity.Player
	zone    *zone.Zone
	rng     Roller
	phase   Phase
	outcome Outcome
}

// NewCombat starts an encounter between p and c, who lives in z.
func NewCombat(p *entity.Player, c *entity.Creature, z *zone.Zone, rng Roller) *Combat {
	return &Combat{Creature: c, player: p, zone: z, rng: rng}
}

func (cb *Combat) Phase() Phase { return cb.phase }

func (cb *Combat) Outcome() Outcome { return cb.outcome }

func (cb *Combat) Over() bool { return cb.phase == PhaseOver }

// Choose plays a in the ChoosingAction phase. Choosing ActionItem with
// consumables held moves to the ChoosingItem phase without using the round.
func (cb *Combat) Choose(a Action) []string {
	if cb.phase != PhaseChoosingAction {
		return nil
	}
	name := cb.Creature.Name()
	switch a {
	case ActionAttack:
		dmg := BaseDamage
		if cb.player.Weapon != nil {
			dmg = cb.player.Weapon.Damage
		}
		before := cb.Creature.HP
		cb.Creature.TakeDamage(dmg)
		cb.Tally.DamageDealt += before - cb.Creature.HP
		msgs := []string{fmt.Sprintf("You attack the %s for %d damage.", name, dmg)}
		return append(msgs, cb.endRound()...)
	case ActionItem:
		if len(cb.player.Inventory.Consumables()) == 0 {
			return []string{"You have no consumable items to use in combat."}
		}
		cb.phase = PhaseChoosingItem
		return nil
	case ActionRun:
		if cb.rng.Intn(100) < RunChance {
			cb.finish(OutcomeEscaped)
			return []string{"You successfully escaped!"}
		}
		msgs := []string{"You failed to escape!"}
		return append(msgs, cb.endRound()...)
	}
	return nil
}

// UseItem picks a consumable by name in the ChoosingItem phase. An empty
// name or "b" cancels; an unknown name is rejected. Neither uses the round.
func (cb *Combat) UseItem(name string) []string {
	if cb.phase != PhaseChoosingItem {
		return nil
	}
	cb.phase = PhaseChoosingAction
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "b") {
		return []string{"Cancelled using item."}
	}
	var it *entity.Item
	for _, c := range cb.player.Inventory.Consumables() {
		if strings.EqualFold(c.Name, name) {
			it = c
			break
		}
	}
	if it == nil || !cb.player.RemoveItem(it, 1) {
		return []string{"Invalid item or you don't have it."}
	}
	cb.Tally.ItemsUsed++
	msgs := []string{it.Effect.Apply(cb.player)}
	return append(msgs, cb.endRound()...)
}

// Consumables lists what the player may pick in the ChoosingItem phase.
func (cb *Combat) Consumables() []*entity.Item {
	return cb.player.Inventory.Consumables()
}

// endRound runs the creature's reaction to a used round and the terminal checks.
func (cb *Combat) endRound() []string {
	cb.Tally.Rounds++
	var msgs []string
	c, p := cb.Creature, cb.player
	if c.Alive() {
		if c.DrainsSanity() {
			before := p.Sanity
			p.LoseSanity(WhisperSanityDamage)
			cb.Tally.SanityLost += before - p.Sanity
			msgs = append(msgs, fmt.Sprintf("The %s's whispers echo in your mind! You lose %d sanity.",
				c.Name(), WhisperSanityDamage))
		}
		if atk := c.Attack(); atk > 0 {
			before := p.HP
			p.TakeDamage(atk)
			cb.Tally.DamageTaken += before - p.HP
			msgs = append(msgs, fmt.Sprintf("The %s attacks you for %d damage.", c.Name(), atk))
		}
	}
	// Player defeat wins a tie and suppresses the creature-defeated message.
	switch {
	case p.HP <= 0:
		cb.finish(OutcomePlayerDefeated)
		msgs = append(msgs, fmt.Sprintf("You have been defeated by the %s!", c.Name()))
	case !c.Alive():
		cb.finish(OutcomeCreatureDefeated)
		cb.zone.RemoveCreature(c)
		msgs = append(msgs, fmt.Sprintf("You defeated the %s!", c.Name()))
	}
	return msgs
}

func (cb *Combat) finish(o Outcome) {
	cb.phase = PhaseOver
	cb.outcome = o
}
