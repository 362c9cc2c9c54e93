package engine

import (
	"strings"

	"static-decay/internal/entity"
	"static-decay/internal/system"
)

func (g *Game) startCombat(c *entity.Creature) {
	g.combat = system.NewCombat(g.player, c, g.zone, g.rng)
	g.mode = ModeCombat
	g.addMessage("You encounter a " + c.Name() + "!")
	g.logger.Debug("combat started", "creature", c.Name(), "hp", c.HP, "zone", g.zone.Name)
}

// combatChoice feeds one token to the running combat. Invalid or empty
// tokens cost nothing and the creature does not react.
func (g *Game) combatChoice(token string) {
	cb := g.combat
	switch cb.Phase() {
	case system.PhaseChoosingAction:
		token = strings.TrimSpace(token)
		if token == "" {
			g.addMessage("No action taken.")
			return
		}
		a, ok := system.ParseAction(token)
		if !ok {
			g.addMessage("Invalid combat action.")
			return
		}
		g.addMessages(cb.Choose(a))
	case system.PhaseChoosingItem:
		g.addMessages(cb.UseItem(token))
	}
	if cb.Over() {
		g.endCombat()
	}
}

// endCombat folds the combat tally into the run stats and, unless the player
// died, finishes the turn that started the fight.
func (g *Game) endCombat() {
	cb := g.combat
	g.combat = nil
	g.stats.DamageDealt += cb.Tally.DamageDealt
	g.stats.DamageTaken += cb.Tally.DamageTaken
	g.stats.ItemsUsed += cb.Tally.ItemsUsed
	g.logger.Debug("combat ended", "creature", cb.Creature.Name(), "outcome", cb.Outcome().String(),
		"rounds", cb.Tally.Rounds)

	switch cb.Outcome() {
	case system.OutcomePlayerDefeated:
		g.stats.KilledBy = cb.Creature.Name()
		g.finish(OutcomeLost, g.messages[len(g.messages)-1])
		return
	case system.OutcomeCreatureDefeated:
		g.stats.Kills[cb.Creature.Name()]++
	}
	g.endTurn()
}

// CombatView describes a running combat for presentation.
type CombatView struct {
	Creature     string
	CreatureHP   int
	ChoosingItem bool
	Consumables  []string
}

func (g *Game) combatView() *CombatView {
	if g.combat == nil {
		return nil
	}
	cb := g.combat
	v := &CombatView{
		Creature:     cb.Creature.Name(),
		CreatureHP:   cb.Creature.HP,
		ChoosingItem: cb.Phase() == system.PhaseChoosingItem,
	}
	for _, it := range cb.Consumables() {
		v.Consumables = append(v.Consumables, it.Name)
	}
	return v
}
