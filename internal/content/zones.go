package content

import (
	"fmt"

	"static-decay/internal/entity"
	"static-decay/internal/zone"
)

// CreatureSpec places one creature in a zone.
type CreatureSpec struct {
	Archetype entity.Archetype
	X, Y      int
}

// InteractableSpec places one interactable in a zone.
type InteractableSpec struct {
	zone.Interactable
	X, Y int
}

// Door is the key-gated exit to the next zone in the sequence.
type Door struct {
	Key     *entity.Item
	Success string
	Failure string
}

// Grant is an item handed over when the zone's story marker is read.
type Grant struct {
	Item    *entity.Item
	Message string
}

// Endgame holds the texts for the final objective.
type Endgame struct {
	Success string
	Failure string
}

// ZoneSpec is the factory for one zone: everything needed to build a fresh
// copy plus the zone-specific texts the engine looks up by zone.
type ZoneSpec struct {
	Name          string
	DrainsSanity  bool
	Spawn         zone.Point
	Layout        []string
	Creatures     []CreatureSpec
	Interactables []InteractableSpec

	Story      string
	StoryGrant *Grant
	Door       *Door
	Endgame    *Endgame
}

// Build returns a freshly populated zone. Every call yields independent state.
func (s *ZoneSpec) Build() (*zone.Zone, error) {
	z, err := zone.New(s.Name, s.Layout)
	if err != nil {
		return nil, err
	}
	if !z.InBounds(s.Spawn.X, s.Spawn.Y) || z.IsWall(s.Spawn.X, s.Spawn.Y) {
		return nil, fmt.Errorf("zone %q: spawn (%d,%d) is not walkable: %w",
			s.Name, s.Spawn.X, s.Spawn.Y, zone.ErrBadLayout)
	}
	for _, is := range s.Interactables {
		if err := z.Place(is.X, is.Y, is.Interactable); err != nil {
			return nil, err
		}
	}
	for _, cs := range s.Creatures {
		if z.IsWall(cs.X, cs.Y) && z.InBounds(cs.X, cs.Y) {
			return nil, fmt.Errorf("zone %q: %s at (%d,%d) inside a wall: %w",
				s.Name, cs.Archetype, cs.X, cs.Y, zone.ErrBadLayout)
		}
		if cs.X == s.Spawn.X && cs.Y == s.Spawn.Y {
			return nil, fmt.Errorf("zone %q: %s placed on the spawn point: %w",
				s.Name, cs.Archetype, zone.ErrBadLayout)
		}
		if err := z.Spawn(entity.NewCreature(cs.Archetype, cs.X, cs.Y)); err != nil {
			return nil, err
		}
	}
	return z, nil
}
