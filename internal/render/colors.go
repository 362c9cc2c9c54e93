package render

import "github.com/gdamore/tcell/v2"

var (
	styleText      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLog       = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleLatest    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePrompt    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleMap       = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleDistorted = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack)
)

// statStyle colors a 0..100 stat: green when healthy, yellow when low,
// red when critical.
func statStyle(v int) tcell.Style {
	switch {
	case v <= 25:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case v <= 50:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGreen)
}
