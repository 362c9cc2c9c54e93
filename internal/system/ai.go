package system

import (
	"static-decay/internal/entity"
	"static-decay/internal/zone"
)

// ChaseRange is the exclusive Manhattan distance within which creatures
// close in on the player.
const ChaseRange = 5

// ProcessCreatures runs one creature pass over z and returns how many
// creatures stepped. It never starts combat.
func ProcessCreatures(z *zone.Zone, p *entity.Player) int {
	moved := 0
	for _, c := range z.Creatures {
		if c.Stationary() {
			continue
		}
		dist := Distance(c.X, c.Y, p.X, p.Y)
		if dist <= 0 || dist >= ChaseRange {
			continue
		}
		if chaseStep(z, p, c) {
			moved++
		}
	}
	return moved
}

// chaseStep moves c one tile toward p, trying the x axis first.
func chaseStep(z *zone.Zone, p *entity.Player, c *entity.Creature) bool {
	stepX, stepY := sign(p.X-c.X), sign(p.Y-c.Y)
	if stepX != 0 && canEnter(z, p, c, c.X+stepX, c.Y) {
		c.X += stepX
		return true
	}
	if stepY != 0 && canEnter(z, p, c, c.X, c.Y+stepY) {
		c.Y += stepY
		return true
	}
	return false
}

func canEnter(z *zone.Zone, p *entity.Player, self *entity.Creature, x, y int) bool {
	if z.IsWall(x, y) {
		return false
	}
	if p.X == x && p.Y == y {
		return false
	}
	if other := z.CreatureAt(x, y); other != nil && other != self {
		return false
	}
	return true
}

// Distance is the Manhattan distance between two points.
func Distance(x1, y1, x2, y2 int) int {
	return abs(x1-x2) + abs(y1-y2)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
