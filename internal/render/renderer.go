// Package render draws engine snapshots onto a tcell screen.
package render

import (
	"static-decay/assets"
	"static-decay/internal/engine"
	"static-decay/internal/system"
	"static-decay/internal/zone"

	"github.com/gdamore/tcell/v2"
)

const (
	// ScrambleChance is the percent chance a distorted cell shows noise.
	ScrambleChance = 20
	scrambleRunes  = "!?#%$*&"
)

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	rng    system.Roller // distortion noise
}

// NewRenderer creates a Renderer for the given screen. rng drives the
// low-sanity map distortion.
func NewRenderer(screen tcell.Screen, rng system.Roller) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, h),
		rng:    rng,
	}
}

// DrawFrame renders the map, status line, log and prompt, then shows the
// screen.
func (r *Renderer) DrawFrame(s engine.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()
	top := h - panelHeight(s)
	if top < 1 {
		top = 1
	}
	r.camera.Resize(w, top)
	px, py := playerPos(s)
	r.camera.Follow(px, py, s.Width, s.Height)

	r.drawMap(s)
	r.drawHUD(s, top)
	r.screen.Show()
}

func playerPos(s engine.Snapshot) (int, int) {
	for y, row := range s.Map {
		for x := 0; x < len(row); x++ {
			if row[x] == '@' {
				return x, y
			}
		}
	}
	return 0, 0
}

func (r *Renderer) drawMap(s engine.Snapshot) {
	tiles, ok := assets.ZoneThemes[s.Zone]
	if !ok {
		tiles = assets.DefaultTiles
	}
	creatures := make(map[zone.Point]string, len(s.Creatures))
	for _, c := range s.Creatures {
		creatures[zone.Point{X: c.X, Y: c.Y}] = c.Name
	}

	for y, row := range s.Map {
		for x := 0; x < len(row); x++ {
			cell := row[x]
			if cell == ' ' {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			if s.Distorted && cell != '@' && r.rng.Intn(100) < ScrambleChance {
				noise := rune(scrambleRunes[r.rng.Intn(len(scrambleRunes))])
				r.screen.SetContent(sx, sy, noise, nil, styleDistorted)
				r.screen.SetContent(sx+1, sy, ' ', nil, styleDistorted)
				continue
			}
			r.putGlyph(sx, sy, glyphFor(cell, creatures[zone.Point{X: x, Y: y}], tiles), styleMap)
		}
	}
}

// glyphFor maps a snapshot map cell to its emoji.
func glyphFor(cell byte, creature string, tiles assets.ZoneTiles) string {
	switch cell {
	case '@':
		return assets.GlyphPlayer
	case 'M', 'A':
		return creatureGlyph(creature, cell)
	case zone.Wall:
		return tiles.Wall
	case zone.Floor:
		return tiles.Floor
	}
	switch cell {
	case zone.InteractContainer.Marker():
		return assets.GlyphContainer
	case zone.InteractStory.Marker():
		return assets.GlyphStory
	case zone.InteractDoor.Marker():
		return assets.GlyphDoor
	case zone.InteractEndgame.Marker():
		return assets.GlyphEndgame
	}
	return assets.GlyphUnknown
}

func creatureGlyph(name string, cell byte) string {
	switch name {
	case "Shambler":
		return assets.GlyphShambler
	case "Stalker":
		return assets.GlyphStalker
	case "Whisperer":
		return assets.GlyphWhisperer
	case "Anomaly":
		return assets.GlyphAnomaly
	}
	if cell == 'A' {
		return assets.GlyphAnomaly
	}
	return assets.GlyphCreature
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	// Every map cell spans two columns; pad the second one whether the
	// glyph is wide or not.
	r.screen.SetContent(x+1, y, ' ', nil, style)
}
