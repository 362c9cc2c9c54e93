package game

import (
	"strings"

	"static-decay/internal/engine"

	"github.com/gdamore/tcell/v2"
)

// keyToToken maps a key to an engine token in the single-key modes (explore
// and the combat action choice). ok is false for keys that mean nothing
// there; Escape only quits from explore.
func keyToToken(ev *tcell.EventKey, mode engine.Mode) (token string, ok bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "w", true
	case tcell.KeyDown:
		return "s", true
	case tcell.KeyLeft:
		return "a", true
	case tcell.KeyRight:
		return "d", true
	case tcell.KeyEnter:
		return "", true
	case tcell.KeyEscape:
		if mode != engine.ModeExplore {
			return "", false
		}
		return "q", true
	case tcell.KeyRune:
		return strings.ToLower(string(ev.Rune())), true
	}
	return "", false
}

// lineEditor collects free text for the inventory, crafting and combat item
// prompts.
type lineEditor struct {
	buf []rune
}

// maxLine bounds the prompt buffer.
const maxLine = 40

// handle applies ev to the buffer and returns the submitted line when the
// player presses Enter. Escape submits "b" (back).
func (e *lineEditor) handle(ev *tcell.EventKey) (line string, done bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		line = string(e.buf)
		e.reset()
		return line, true
	case tcell.KeyEscape:
		e.reset()
		return "b", true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
		}
	case tcell.KeyRune:
		if len(e.buf) < maxLine {
			e.buf = append(e.buf, ev.Rune())
		}
	}
	return "", false
}

func (e *lineEditor) reset() { e.buf = e.buf[:0] }

func (e *lineEditor) String() string { return string(e.buf) }
