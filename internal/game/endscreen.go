package game

import (
	"fmt"
	"sort"
	"strings"

	"static-decay/internal/engine"

	"github.com/gdamore/tcell/v2"
)

// showEndScreen renders the run summary and returns true if the player
// wants to try again, false to quit.
func (g *Game) showEndScreen() bool {
	won := g.engine.Outcome() == engine.OutcomeWon
	stats := g.engine.Stats()

	type killEntry struct {
		name  string
		count int
	}
	var kills []killEntry
	for name, cnt := range stats.Kills {
		kills = append(kills, killEntry{name, cnt})
	}
	sort.Slice(kills, func(i, j int) bool {
		if kills[i].count != kills[j].count {
			return kills[i].count > kills[j].count
		}
		return kills[i].name < kills[j].name
	})

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)
	dim := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		sw, _ := g.screen.Size()

		sep := func(y int) {
			for x := 0; x < sw; x++ {
				g.screen.SetContent(x, y, '─', nil, gray)
			}
		}
		// label prints a left-aligned key at column 2 and value at column 24.
		label := func(y int, l, v string) {
			g.putText(2, y, l, dim)
			g.putText(24, y, v, white)
		}

		y := 1
		sep(y)
		y += 2

		if won {
			g.putText(2, y, "THE SIGNAL GOES OUT", gold)
			badge := "[RESCUED]"
			g.putText(sw-len(badge)-1, y, badge, green)
		} else {
			g.putText(2, y, "THE STATIC CLAIMS YOU", gold)
			badge := "[LOST]"
			g.putText(sw-len(badge)-1, y, badge, red)
		}
		y += 2

		style := red
		if won {
			style = green
		}
		for _, line := range wrap(g.engine.FinalMessage(), sw-4) {
			g.putText(2, y, line, style)
			y++
		}
		y++

		label(y, "Zone Reached:", fmt.Sprintf("%s (%d)", stats.Zone, stats.ZonesReached))
		y++
		label(y, "Turns Survived:", fmt.Sprint(stats.Turns))
		y += 2

		label(y, "Creatures Slain:", fmt.Sprint(stats.TotalKills()))
		y++
		if len(kills) > 0 {
			parts := make([]string, len(kills))
			for i, e := range kills {
				parts[i] = fmt.Sprintf("%s×%d", e.name, e.count)
			}
			g.putText(4, y, strings.Join(parts, "  "), dim)
			y++
		}
		label(y, "Items Used:", fmt.Sprint(stats.ItemsUsed))
		y++
		label(y, "Items Crafted:", fmt.Sprint(stats.ItemsCrafted))
		y++
		label(y, "Containers Searched:", fmt.Sprint(stats.ContainersSearched))
		y++
		label(y, "Journals Read:", fmt.Sprint(stats.StoriesRead))
		y++
		label(y, "Damage Dealt/Taken:", fmt.Sprintf("%d / %d", stats.DamageDealt, stats.DamageTaken))
		y++
		if stats.KilledBy != "" {
			label(y, "Killed By:", stats.KilledBy)
			y++
		}
		y++

		sep(y)
		y += 2

		g.putText(2, y, "[R] Try Again", green)
		g.putText(18, y, "[Q] Quit", red)

		g.screen.Show()

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return false
		case *tcell.EventResize:
			g.screen.Sync()
			continue
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'r', 'R':
					return true
				case 'q', 'Q':
					return false
				}
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return false
			}
		}
	}
}

// wrap splits s into lines of at most width runes on word boundaries.
func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var (
		lines []string
		cur   []rune
	)
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(w) > width {
			lines = append(lines, string(cur))
			cur = cur[:0:0]
		}
		if len(cur) > 0 {
			cur = append(cur, ' ')
		}
		cur = append(cur, w...)
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
