package system

import (
	"static-decay/internal/entity"
	"static-decay/internal/zone"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK          MoveResult = iota // position updated
	MoveBlocked                       // wall
	MoveOutOfBounds                   // edge of the zone
	MoveCombat                        // bumped a creature; the player stays put
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveOutOfBounds:
		return "out of bounds"
	case MoveCombat:
		return "combat"
	}
	return "unknown"
}

// TryMove attempts to move p by (dx, dy) inside z.
// Returns the outcome and, for MoveCombat, the creature on the target tile.
// Only MoveOK changes the player's position.
func TryMove(z *zone.Zone, p *entity.Player, dx, dy int) (MoveResult, *entity.Creature) {
	nx, ny := p.X+dx, p.Y+dy
	if !z.InBounds(nx, ny) {
		return MoveOutOfBounds, nil
	}
	// Creatures are checked before walls, so a creature is always fought.
	if c := z.CreatureAt(nx, ny); c != nil {
		return MoveCombat, c
	}
	if z.IsWall(nx, ny) {
		return MoveBlocked, nil
	}
	p.X, p.Y = nx, ny
	return MoveOK, nil
}

// Reveal marks the 3x3 neighborhood centered on (x, y) as visited.
// Cells outside the zone are skipped.
func Reveal(z *zone.Zone, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			z.MarkVisited(x+dx, y+dy)
		}
	}
}
