package engine

import (
	"fmt"
	"strings"
)

// LogLines is how many recent messages a Snapshot carries by default.
const LogLines = 5

// Snapshot is everything a frontend needs to draw one frame.
type Snapshot struct {
	HP, Hunger, Sanity int
	Equipped           string

	Zone          string
	Width, Height int
	// Map has one row per zone row: '@' player, 'A' stationary creature,
	// 'M' other creature, the tile symbol if visited, ' ' otherwise.
	Map       []string
	Creatures []CreatureMark // creatures on visited tiles
	Distorted bool

	Log    []string
	Mode   Mode
	Prompt []string
	Combat *CombatView

	Over         bool
	Outcome      Outcome
	FinalMessage string
}

// Snapshot captures the current state with the last logLines messages.
func (g *Game) Snapshot(logLines int) Snapshot {
	s := Snapshot{
		HP:           g.player.HP,
		Hunger:       g.player.Hunger,
		Sanity:       g.player.Sanity,
		Zone:         g.zone.Name,
		Width:        g.zone.Width,
		Height:       g.zone.Height,
		Map:          g.mapRows(),
		Creatures:    g.creatureMarks(),
		Distorted:    g.Distorted(),
		Log:          append([]string(nil), g.RecentLog(logLines)...),
		Mode:         g.mode,
		Prompt:       g.prompt(),
		Combat:       g.combatView(),
		Over:         g.Over(),
		Outcome:      g.outcome,
		FinalMessage: g.final,
	}
	if w := g.player.Weapon; w != nil {
		s.Equipped = w.Name
	}
	return s
}

func (g *Game) mapRows() []string {
	z := g.zone
	rows := make([]string, z.Height)
	var sb strings.Builder
	for y := 0; y < z.Height; y++ {
		sb.Reset()
		for x := 0; x < z.Width; x++ {
			sb.WriteByte(g.cell(x, y))
		}
		rows[y] = sb.String()
	}
	return rows
}

func (g *Game) cell(x, y int) byte {
	if g.player.X == x && g.player.Y == y {
		return '@'
	}
	if !g.zone.Visited(x, y) {
		return ' '
	}
	if c := g.zone.CreatureAt(x, y); c != nil {
		if c.Stationary() {
			return 'A'
		}
		return 'M'
	}
	return g.zone.Tile(x, y)
}

// CreatureMark places a named creature on the map.
type CreatureMark struct {
	Name string
	X, Y int
}

func (g *Game) creatureMarks() []CreatureMark {
	var marks []CreatureMark
	for _, c := range g.zone.Creatures {
		if g.zone.Visited(c.X, c.Y) {
			marks = append(marks, CreatureMark{Name: c.Name(), X: c.X, Y: c.Y})
		}
	}
	return marks
}

// prompt lists the choices for the current mode.
func (g *Game) prompt() []string {
	switch g.mode {
	case ModeExplore:
		return []string{"COMMANDS: [W/A/S/D] Move, [I]nventory, [C]raft, [L]ook, [Q]uit"}
	case ModeInventory:
		lines := []string{"--- INVENTORY ---"}
		for _, st := range g.player.Inventory.Stacks() {
			line := fmt.Sprintf("%d %s - %s", st.Count, st.Item.Name, st.Item.Description)
			if st.Item == g.player.Weapon {
				line += " (equipped)"
			}
			lines = append(lines, line)
		}
		return append(lines, "Enter item name to use/equip, or 'B' to go back:")
	case ModeCrafting:
		lines := []string{"--- CRAFTING ---"}
		for i, r := range g.table.Recipes() {
			parts := make([]string, len(r.Ingredients))
			for j, ing := range r.Ingredients {
				parts[j] = fmt.Sprintf("%s x%d", ing.Item.Name, ing.Count)
			}
			lines = append(lines, fmt.Sprintf("[%d] %s - Requires: %s", i, r.Result.Name, strings.Join(parts, ", ")))
		}
		return append(lines, "Enter recipe number to craft, or 'B' to go back:")
	case ModeCombat:
		v := g.combatView()
		if v.ChoosingItem {
			lines := []string{"--- Usable Items ---"}
			for _, name := range v.Consumables {
				lines = append(lines, "- "+name)
			}
			return append(lines, "Use which item? (Type name or B to go back):")
		}
		return []string{
			"--- COMBAT ---",
			fmt.Sprintf("%s HP: %d", v.Creature, v.CreatureHP),
			fmt.Sprintf("Your HP: %d", g.player.HP),
			"Actions: [A]ttack, [I]tem, [R]un",
		}
	}
	return nil
}
