package render

import (
	"fmt"

	"static-decay/internal/engine"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// panelHeight is the number of rows below the map needed for s.
func panelHeight(s engine.Snapshot) int {
	return 2 + len(s.Log) + len(s.Prompt)
}

// drawHUD renders the separator, status line, message log and prompt,
// starting at row top.
func (r *Renderer) drawHUD(s engine.Snapshot, top int) {
	r.drawHLine(top, styleDim)
	y := top + 1

	x := r.drawText(0, y, "HP: ", styleText)
	x = r.drawText(x, y, fmt.Sprint(s.HP), statStyle(s.HP))
	x = r.drawText(x, y, "  Hunger: ", styleText)
	x = r.drawText(x, y, fmt.Sprint(s.Hunger), statStyle(s.Hunger))
	x = r.drawText(x, y, "  Sanity: ", styleText)
	x = r.drawText(x, y, fmt.Sprint(s.Sanity), statStyle(s.Sanity))
	weapon := s.Equipped
	if weapon == "" {
		weapon = "none"
	}
	r.drawText(x, y, fmt.Sprintf("  Weapon: %s  Zone: %s", weapon, s.Zone), styleText)
	y++

	for i, msg := range s.Log {
		st := styleLog
		if i == len(s.Log)-1 {
			st = styleLatest
		}
		r.drawText(0, y, msg, st)
		y++
	}
	for _, line := range s.Prompt {
		r.drawText(0, y, line, stylePrompt)
		y++
	}
}

func (r *Renderer) drawHLine(y int, style tcell.Style) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text at (x, y), clipped to the screen width, and returns
// the column after the last rune drawn.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x+cw > w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += cw
	}
	return x
}
