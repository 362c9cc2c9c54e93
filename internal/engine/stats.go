package engine

import "maps"

// Stats records what happened during one run.
type Stats struct {
	Turns              int            `json:"turns"`
	Moves              int            `json:"moves"`
	Zone               string         `json:"zone"`
	ZonesReached       int            `json:"zones_reached"`
	Kills              map[string]int `json:"kills"` // archetype name → count
	ItemsUsed          int            `json:"items_used"`
	ItemsCrafted       int            `json:"items_crafted"`
	ContainersSearched int            `json:"containers_searched"`
	StoriesRead        int            `json:"stories_read"`
	DamageDealt        int            `json:"damage_dealt"`
	DamageTaken        int            `json:"damage_taken"`
	KilledBy           string         `json:"killed_by,omitempty"`
	Outcome            string         `json:"outcome"`
	Cause              string         `json:"cause,omitempty"` // terminal message
}

func newStats() Stats {
	return Stats{Kills: make(map[string]int), Outcome: OutcomeNone.String()}
}

// TotalKills sums Kills.
func (s Stats) TotalKills() int {
	n := 0
	for _, c := range s.Kills {
		n += c
	}
	return n
}

// Stats returns a copy of the run statistics.
func (g *Game) Stats() Stats {
	s := g.stats
	s.Kills = maps.Clone(g.stats.Kills)
	return s
}
