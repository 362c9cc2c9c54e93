package render

import (
	"testing"

	"static-decay/assets"
	"static-decay/internal/engine"

	"github.com/gdamore/tcell/v2"
)

type constRoller int

func (r constRoller) Intn(n int) int { return int(r) % n }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return ss
}

func snapshot() engine.Snapshot {
	return engine.Snapshot{
		HP: 100, Hunger: 40, Sanity: 100,
		Zone:  "Abandoned Subway",
		Width: 4, Height: 3,
		Map: []string{
			"####",
			"#@C ",
			"#.M ",
		},
		Creatures: []engine.CreatureMark{{Name: "Whisperer", X: 2, Y: 2}},
		Log:       []string{"You move."},
		Prompt:    []string{"COMMANDS"},
	}
}

func firstRune(s string) rune { return []rune(s)[0] }

func runeAt(ss tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := ss.GetContent(x, y)
	return r
}

func TestDrawFrameGlyphs(t *testing.T) {
	ss := newScreen(t)
	NewRenderer(ss, constRoller(99)).DrawFrame(snapshot())

	tests := []struct {
		name string
		x, y int
		want string
	}{
		{"wall", 0, 0, assets.ZoneThemes["Abandoned Subway"].Wall},
		{"player", 2, 1, assets.GlyphPlayer},
		{"container", 4, 1, assets.GlyphContainer},
		{"floor", 2, 2, assets.ZoneThemes["Abandoned Subway"].Floor},
		{"whisperer", 4, 2, assets.GlyphWhisperer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runeAt(ss, tt.x, tt.y); got != firstRune(tt.want) {
				t.Errorf("rune at (%d,%d) = %q; want %q", tt.x, tt.y, got, firstRune(tt.want))
			}
		})
	}
	if got := runeAt(ss, 6, 1); got != ' ' {
		t.Errorf("unvisited cell drew %q", got)
	}
}

func TestDrawFrameHUD(t *testing.T) {
	ss := newScreen(t)
	s := snapshot()
	NewRenderer(ss, constRoller(99)).DrawFrame(s)

	top := 24 - panelHeight(s)
	if got, _, style, _ := ss.GetContent(0, top); got != '─' || style != styleDim {
		t.Errorf("separator = %q style %v; want dim rule", got, style)
	}
	if got := runeAt(ss, 0, top+1); got != 'H' {
		t.Errorf("status line starts with %q", got)
	}
	if got := runeAt(ss, 4, top+2); got != 'm' {
		t.Errorf("log line rune = %q; want 'm' of \"You move.\"", got)
	}
	if got := runeAt(ss, 0, top+3); got != 'C' {
		t.Errorf("prompt line rune = %q", got)
	}
}

func TestDrawFrameDistortion(t *testing.T) {
	ss := newScreen(t)
	s := snapshot()
	s.Distorted = true
	// Roller 0 always scrambles and always picks the first noise rune.
	NewRenderer(ss, constRoller(0)).DrawFrame(s)

	if got := runeAt(ss, 0, 0); got != '!' {
		t.Errorf("distorted wall = %q; want '!'", got)
	}
	if got := runeAt(ss, 2, 1); got != firstRune(assets.GlyphPlayer) {
		t.Errorf("player must never be scrambled, got %q", got)
	}
}

func TestGlyphForUnknownCreature(t *testing.T) {
	if got := glyphFor('A', "", assets.DefaultTiles); got != assets.GlyphAnomaly {
		t.Errorf("stationary fallback = %q", got)
	}
	if got := glyphFor('M', "", assets.DefaultTiles); got != assets.GlyphCreature {
		t.Errorf("mobile fallback = %q", got)
	}
	if got := glyphFor('*', "", assets.DefaultTiles); got != assets.GlyphUnknown {
		t.Errorf("other interactable = %q", got)
	}
}

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		name           string
		cx, cy, ww, wh int
		wantX, wantY   int
	}{
		{"fits", 5, 3, 10, 5, 0, 0},
		{"center", 25, 10, 60, 40, 15, 5},
		{"clamp low", 1, 1, 60, 40, 0, 0},
		{"clamp high", 59, 39, 60, 40, 40, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(40, 10) // 20 tiles wide
			c.Follow(tt.cx, tt.cy, tt.ww, tt.wh)
			if c.OffsetX != tt.wantX || c.OffsetY != tt.wantY {
				t.Errorf("offset = (%d,%d); want (%d,%d)", c.OffsetX, c.OffsetY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	c := NewCamera(40, 10)
	c.OffsetX, c.OffsetY = 2, 1
	sx, sy, ok := c.WorldToScreen(5, 3)
	if !ok || sx != 6 || sy != 2 {
		t.Errorf("got (%d,%d,%v); want (6,2,true)", sx, sy, ok)
	}
	if _, _, ok := c.WorldToScreen(1, 3); ok {
		t.Error("tile left of the viewport reported visible")
	}
}
