package zone

import (
	"errors"
	"fmt"

	"static-decay/internal/entity"
)

// ErrBadLayout reports a malformed zone grid or an out-of-grid placement.
var ErrBadLayout = errors.New("bad zone layout")

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Zone is one story map: a static grid plus the mutable overlays the engine
// changes while the player is inside it.
type Zone struct {
	Name          string
	Width, Height int

	grid          [][]byte
	visited       [][]bool
	interactables map[Point]Interactable

	// Creatures alive in this zone. Defeated creatures are removed.
	Creatures []*entity.Creature
}

// New builds a zone from layout rows. All rows must share one non-zero width.
func New(name string, rows []string) (*Zone, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("zone %q: empty layout: %w", name, ErrBadLayout)
	}
	width := len(rows[0])
	z := &Zone{
		Name:          name,
		Width:         width,
		Height:        len(rows),
		grid:          make([][]byte, len(rows)),
		visited:       make([][]bool, len(rows)),
		interactables: make(map[Point]Interactable),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("zone %q: row %d has width %d, want %d: %w",
				name, y, len(row), width, ErrBadLayout)
		}
		z.grid[y] = []byte(row)
		z.visited[y] = make([]bool, width)
	}
	return z, nil
}

// InBounds reports whether (x, y) is inside the grid.
func (z *Zone) InBounds(x, y int) bool {
	return x >= 0 && x < z.Width && y >= 0 && y < z.Height
}

// Tile returns the symbol at (x, y). Out-of-bounds reads as Wall.
func (z *Zone) Tile(x, y int) byte {
	if !z.InBounds(x, y) {
		return Wall
	}
	return z.grid[y][x]
}

// IsWall reports whether (x, y) blocks movement.
func (z *Zone) IsWall(x, y int) bool { return z.Tile(x, y) == Wall }

// Visited reports whether (x, y) has been revealed. Out-of-bounds is false.
func (z *Zone) Visited(x, y int) bool {
	return z.InBounds(x, y) && z.visited[y][x]
}

// MarkVisited reveals (x, y); out-of-bounds is ignored.
func (z *Zone) MarkVisited(x, y int) {
	if z.InBounds(x, y) {
		z.visited[y][x] = true
	}
}

// Place puts an interactable at (x, y) and stamps its marker on the grid.
func (z *Zone) Place(x, y int, it Interactable) error {
	if !z.InBounds(x, y) {
		return fmt.Errorf("zone %q: %s at (%d,%d) outside grid: %w", z.Name, it.Kind, x, y, ErrBadLayout)
	}
	if z.grid[y][x] == Wall {
		return fmt.Errorf("zone %q: %s at (%d,%d) inside a wall: %w", z.Name, it.Kind, x, y, ErrBadLayout)
	}
	z.interactables[Point{x, y}] = it
	z.grid[y][x] = it.Kind.Marker()
	return nil
}

// Interactable returns the interactable at (x, y), if any.
func (z *Zone) Interactable(x, y int) (Interactable, bool) {
	it, ok := z.interactables[Point{x, y}]
	return it, ok
}

// RemoveInteractable deletes the interactable at (x, y) and resets the tile
// to Floor.
func (z *Zone) RemoveInteractable(x, y int) {
	if !z.InBounds(x, y) {
		return
	}
	delete(z.interactables, Point{x, y})
	z.grid[y][x] = Floor
}

// Spawn adds a creature to the zone.
func (z *Zone) Spawn(c *entity.Creature) error {
	if !z.InBounds(c.X, c.Y) {
		return fmt.Errorf("zone %q: %s at (%d,%d) outside grid: %w", z.Name, c.Name(), c.X, c.Y, ErrBadLayout)
	}
	z.Creatures = append(z.Creatures, c)
	return nil
}

// CreatureAt returns the creature standing on (x, y), or nil.
func (z *Zone) CreatureAt(x, y int) *entity.Creature {
	for _, c := range z.Creatures {
		if c.X == x && c.Y == y {
			return c
		}
	}
	return nil
}

// RemoveCreature drops c from the zone. It reports whether c was present.
func (z *Zone) RemoveCreature(c *entity.Creature) bool {
	for i, other := range z.Creatures {
		if other == c {
			z.Creatures = append(z.Creatures[:i], z.Creatures[i+1:]...)
			return true
		}
	}
	return false
}

// HasArchetype reports whether any creature of archetype a remains.
func (z *Zone) HasArchetype(a entity.Archetype) bool {
	for _, c := range z.Creatures {
		if c.Archetype == a {
			return true
		}
	}
	return false
}
