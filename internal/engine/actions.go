package engine

import (
	"fmt"
	"strconv"
	"strings"

	"static-decay/internal/entity"
	"static-decay/internal/system"
	"static-decay/internal/zone"
)

// Direction is one of the four cardinal moves.
type Direction uint8

const (
	North Direction = iota
	South
	West
	East
)

// Delta returns the grid offset for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	case East:
		return 1, 0
	}
	return 0, 0
}

// Move steps the player one tile in d. Bumping a creature starts combat and
// the turn only ends once that combat does.
func (g *Game) Move(d Direction) {
	if g.mode != ModeExplore {
		return
	}
	dx, dy := d.Delta()
	res, c := system.TryMove(g.zone, g.player, dx, dy)
	switch res {
	case system.MoveOutOfBounds:
		g.addMessage("You can't go that way (edge of the world).")
	case system.MoveBlocked:
		g.addMessage("A wall blocks your path.")
	case system.MoveCombat:
		g.startCombat(c)
		return
	case system.MoveOK:
		g.stats.Moves++
		hp := g.player.HP
		if g.player.LoseHunger(MoveHungerCost) {
			g.addMessage(fmt.Sprintf("You are starving! You lose %d HP", entity.StarvationDamage))
			g.stats.DamageTaken += hp - g.player.HP
		}
		system.Reveal(g.zone, g.player.X, g.player.Y)
		if it, ok := g.zone.Interactable(g.player.X, g.player.Y); ok {
			g.addMessage("You see something: " + it.Text)
		}
	}
	g.endTurn()
}

// Look inspects the interactable under the player.
func (g *Game) Look() {
	if g.mode != ModeExplore {
		return
	}
	g.interact()
	g.endTurn()
}

func (g *Game) interact() {
	x, y := g.player.X, g.player.Y
	it, ok := g.zone.Interactable(x, y)
	if !ok {
		g.addMessage("There's nothing interesting here.")
		return
	}
	g.addMessage(it.Text)
	spec := g.spec()
	switch {
	case it.Kind == zone.InteractContainer:
		g.search(it)
		g.zone.RemoveInteractable(x, y)
	case it.Kind == zone.InteractStory:
		g.stats.StoriesRead++
		if spec.Story != "" {
			g.addMessage(spec.Story)
		}
		if gr := spec.StoryGrant; gr != nil {
			g.player.AddItem(gr.Item, 1)
			g.addMessage(gr.Message)
		}
		g.zone.RemoveInteractable(x, y)
	case it.Kind == zone.InteractDoor && spec.Door != nil:
		g.openDoor()
	case it.Kind == zone.InteractEndgame && spec.Endgame != nil:
		if g.zone.HasArchetype(entity.ArchetypeAnomaly) {
			g.addMessage(spec.Endgame.Failure)
			return
		}
		g.addMessage(spec.Endgame.Success)
		g.finish(OutcomeWon, spec.Endgame.Success)
	default:
		g.addMessage(fmt.Sprintf("You examine the %s, but nothing happens.", noun(it.Text)))
	}
}

// search rolls one container outcome; the roll past the loot table is empty.
func (g *Game) search(it zone.Interactable) {
	g.stats.ContainersSearched++
	g.addMessage(fmt.Sprintf("You search the %s...", noun(it.Text)))
	loot := g.table.Loot()
	if roll := g.rng.Intn(len(loot) + 1); roll < len(loot) {
		g.player.AddItem(loot[roll].Item, 1)
		g.addMessage(loot[roll].Message)
		return
	}
	g.addMessage("...it's empty.")
}

// noun turns an interactable description such as "A rusted locker." into
// "rusted locker" for use after "the".
func noun(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.TrimRight(s, ".!")
	for _, article := range []string{"a ", "an ", "the "} {
		if rest, ok := strings.CutPrefix(s, article); ok {
			return rest
		}
	}
	return s
}

// openDoor moves to the next zone if the player holds the door's key.
// The door stays in place on failure so it can be retried.
func (g *Game) openDoor() {
	door := g.spec().Door
	if !g.player.HasItem(door.Key.Name) {
		g.addMessage(door.Failure)
		return
	}
	from := g.zone.Name
	if err := g.enterZone(g.zoneIdx + 1); err != nil {
		g.logger.Error("zone transition failed", "from", from, "err", err)
		g.addMessage(door.Failure)
		return
	}
	g.addMessage(door.Success)
}

func (g *Game) openInventory() {
	if g.player.Inventory.Len() == 0 {
		g.addMessage("Your inventory is empty.")
		g.endTurn()
		return
	}
	g.mode = ModeInventory
}

func isCancel(token string) bool {
	return token == "" || strings.EqualFold(token, "b")
}

// inventoryChoice handles the inventory prompt. Cancelling still passes the
// turn.
func (g *Game) inventoryChoice(token string) {
	token = strings.TrimSpace(token)
	if isCancel(token) {
		g.endTurn()
		return
	}
	g.UseItem(token)
}

// UseItem uses a consumable or equips a weapon by name, then ends the turn.
func (g *Game) UseItem(name string) {
	if g.mode != ModeExplore && g.mode != ModeInventory {
		return
	}
	g.useItem(strings.TrimSpace(name))
	g.endTurn()
}

func (g *Game) useItem(name string) {
	it := g.player.Inventory.Find(name)
	if it == nil {
		g.addMessage(fmt.Sprintf("You don't have an item named '%s'.", name))
		return
	}
	switch it.Kind {
	case entity.KindConsumable:
		if !g.player.RemoveItem(it, 1) {
			return
		}
		g.stats.ItemsUsed++
		g.addMessage(it.Effect.Apply(g.player))
	case entity.KindWeapon:
		g.player.Equip(it)
		g.addMessage(fmt.Sprintf("You equipped the %s.", it.Name))
	default:
		g.addMessage(fmt.Sprintf("You can't use or equip '%s' in this way.", it.Name))
	}
}

func (g *Game) openCrafting() {
	if len(g.table.Recipes()) == 0 {
		g.addMessage("There are no crafting recipes available.")
		g.endTurn()
		return
	}
	g.mode = ModeCrafting
}

// craftChoice handles the crafting prompt. Cancelling still passes the turn.
func (g *Game) craftChoice(token string) {
	token = strings.TrimSpace(token)
	if isCancel(token) {
		g.endTurn()
		return
	}
	idx, err := strconv.Atoi(token)
	if err != nil {
		idx = -1
	}
	g.Craft(idx)
}

// Craft builds recipe idx (zero-based, in table order), then ends the turn.
func (g *Game) Craft(idx int) {
	if g.mode != ModeExplore && g.mode != ModeCrafting {
		return
	}
	g.craft(idx)
	g.endTurn()
}

// craft checks every ingredient before consuming any of them.
func (g *Game) craft(idx int) {
	recipes := g.table.Recipes()
	if idx < 0 || idx >= len(recipes) {
		g.addMessage("Invalid recipe number.")
		return
	}
	r := recipes[idx]
	need := make(map[*entity.Item]int, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		need[ing.Item] += ing.Count
	}
	for it, n := range need {
		if g.player.Count(it.Name) < n {
			g.addMessage(fmt.Sprintf("You don't have the required ingredients for %s.", r.Result.Name))
			return
		}
	}
	for it, n := range need {
		g.player.RemoveItem(it, n)
	}
	g.player.AddItem(r.Result, 1)
	g.stats.ItemsCrafted++
	g.addMessage(fmt.Sprintf("You successfully crafted a %s!", r.Result.Name))
	g.logger.Info("crafted", "item", r.Result.Name, "zone", g.zone.Name)
}
