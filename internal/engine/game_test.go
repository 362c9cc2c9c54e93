package engine

import (
	"strings"
	"testing"

	"static-decay/internal/content"
	"static-decay/internal/entity"
	"static-decay/internal/zone"
)

// seqRoller replays fixed rolls, then returns 0.
type seqRoller struct{ vals []int }

func (r *seqRoller) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	return v % n
}

func newGame(t *testing.T, rolls ...int) *Game {
	t.Helper()
	tab, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	g, err := New(tab, WithRoller(&seqRoller{vals: rolls}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func item(t *testing.T, g *Game, name string) *entity.Item {
	t.Helper()
	it, ok := g.table.LookupItem(name)
	if !ok {
		t.Fatalf("no item %q", name)
	}
	return it
}

func lastMessage(g *Game) string {
	if len(g.messages) == 0 {
		return ""
	}
	return g.messages[len(g.messages)-1]
}

func hasMessage(g *Game, sub string) bool {
	for _, m := range g.messages {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}

func place(g *Game, x, y int) {
	g.player.X, g.player.Y = x, y
}

func TestNewStartsInFirstZone(t *testing.T) {
	g := newGame(t)
	if g.Zone().Name != "Abandoned Subway" {
		t.Fatalf("zone = %q", g.Zone().Name)
	}
	if g.player.X != 1 || g.player.Y != 1 {
		t.Errorf("player at (%d,%d); want (1,1)", g.player.X, g.player.Y)
	}
	for y := 0; y <= 2; y++ {
		for x := 0; x <= 2; x++ {
			if !g.zone.Visited(x, y) {
				t.Errorf("(%d,%d) not revealed at start", x, y)
			}
		}
	}
	if !hasMessage(g, "You awaken in a cold, damp subway tunnel.") {
		t.Error("missing start message")
	}
	if g.Mode() != ModeExplore || g.Over() {
		t.Errorf("mode = %v over = %v", g.Mode(), g.Over())
	}
}

func TestMoveIntoWallKeepsPosition(t *testing.T) {
	g := newGame(t)
	g.Submit("w")
	if g.player.X != 1 || g.player.Y != 1 {
		t.Errorf("player moved to (%d,%d)", g.player.X, g.player.Y)
	}
	if g.player.Hunger != entity.MaxStat {
		t.Errorf("hunger = %d; blocked moves are free", g.player.Hunger)
	}
	if !hasMessage(g, "A wall blocks your path.") {
		t.Error("missing wall message")
	}
	if g.Stats().Turns != 1 {
		t.Errorf("turns = %d; want 1", g.Stats().Turns)
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	g := newGame(t)
	// Every zone is walled in, so stand on the border directly.
	place(g, 0, 3)
	g.Move(West)
	if g.player.X != 0 || g.player.Y != 3 {
		t.Errorf("player moved to (%d,%d)", g.player.X, g.player.Y)
	}
	if !hasMessage(g, "You can't go that way (edge of the world).") {
		t.Error("missing edge message")
	}
}

func TestMoveCostsHungerAndReveals(t *testing.T) {
	g := newGame(t)
	g.Submit("d")
	if g.player.X != 2 || g.player.Y != 1 {
		t.Fatalf("player at (%d,%d); want (2,1)", g.player.X, g.player.Y)
	}
	if g.player.Hunger != entity.MaxStat-MoveHungerCost {
		t.Errorf("hunger = %d", g.player.Hunger)
	}
	if !g.zone.Visited(3, 2) {
		t.Error("(3,2) not revealed")
	}
}

func TestMoveOntoInteractableTeases(t *testing.T) {
	g := newGame(t)
	place(g, 2, 1)
	g.Submit("s")
	if !hasMessage(g, "You see something: A rusted locker.") {
		t.Errorf("log = %q", g.messages)
	}
	if _, ok := g.zone.Interactable(2, 2); !ok {
		t.Error("teaser consumed the interactable")
	}
}

func TestStarvationOnMove(t *testing.T) {
	g := newGame(t)
	g.player.Hunger = 0
	g.Submit("d")
	if g.player.HP != entity.MaxStat-entity.StarvationDamage {
		t.Errorf("hp = %d", g.player.HP)
	}
	if !hasMessage(g, "You are starving! You lose 5 HP") {
		t.Error("missing starvation message")
	}
}

func TestStarvationDeathEndsGame(t *testing.T) {
	g := newGame(t)
	g.player.Hunger = 0
	g.player.HP = entity.StarvationDamage
	g.Submit("d")
	if !g.Over() || g.Outcome() != OutcomeLost {
		t.Fatalf("over=%v outcome=%v", g.Over(), g.Outcome())
	}
	if g.FinalMessage() != "Your wounds are too severe. You succumb to the darkness." {
		t.Errorf("final = %q", g.FinalMessage())
	}
}

func TestInvalidAndEmptyCommandsPassTheTurn(t *testing.T) {
	g := newGame(t)
	g.Submit("x")
	if !hasMessage(g, "Invalid command.") {
		t.Error("missing invalid command message")
	}
	g.Submit("   ")
	if !hasMessage(g, "No command entered.") {
		t.Error("missing empty command message")
	}
	if g.Stats().Turns != 2 || g.Over() {
		t.Errorf("turns=%d over=%v", g.Stats().Turns, g.Over())
	}
}

func TestQuit(t *testing.T) {
	g := newGame(t)
	g.Submit("Q")
	if g.Outcome() != OutcomeQuit || g.FinalMessage() != "You give up hope." {
		t.Fatalf("outcome=%v final=%q", g.Outcome(), g.FinalMessage())
	}
	n := len(g.messages)
	g.Submit("d")
	g.Submit("q")
	if len(g.messages) != n || g.player.X != 1 {
		t.Error("engine kept processing after game over")
	}
}

func TestSanityDrainOnlyInDrainingZones(t *testing.T) {
	g := newGame(t)
	g.Submit("l")
	if g.player.Sanity != entity.MaxStat-SanityDrain {
		t.Errorf("subway sanity = %d", g.player.Sanity)
	}
	if !hasMessage(g, "The oppressive atmosphere wears on your mind.") {
		t.Error("missing drain message")
	}
	if err := g.enterZone(1); err != nil {
		t.Fatal(err)
	}
	before := g.player.Sanity
	g.Submit("l")
	if g.player.Sanity != before {
		t.Errorf("city drained sanity: %d -> %d", before, g.player.Sanity)
	}
}

func TestZeroSanityIsFlavorOnly(t *testing.T) {
	g := newGame(t)
	g.player.Sanity = SanityDrain
	g.Submit("l")
	if g.player.Sanity != 0 || !hasMessage(g, "Your mind shatters under the strain!") {
		t.Fatalf("sanity=%d log=%q", g.player.Sanity, g.messages)
	}
	n := len(g.messages)
	g.Submit("l")
	for _, m := range g.messages[n:] {
		if strings.Contains(m, "oppressive") || strings.Contains(m, "shatters") {
			t.Errorf("drain repeated at zero sanity: %q", m)
		}
	}
	if g.Over() {
		t.Error("zero sanity ended the game")
	}
}

func TestCreaturePassStepsCloser(t *testing.T) {
	g := newGame(t)
	place(g, 3, 1) // shambler at (5,2) is 3 away
	g.Submit("l")
	c := g.zone.Creatures[0]
	if c.X != 4 || c.Y != 2 {
		t.Errorf("shambler at (%d,%d); want (4,2)", c.X, c.Y)
	}
}

func TestDistortedBelowThreshold(t *testing.T) {
	g := newGame(t)
	g.player.Sanity = DistortionThreshold
	if g.Distorted() {
		t.Error("distorted at threshold")
	}
	g.player.Sanity = DistortionThreshold - 1
	if !g.Snapshot(LogLines).Distorted {
		t.Error("not distorted below threshold")
	}
}

func TestSnapshotMap(t *testing.T) {
	g := newGame(t)
	place(g, 4, 1)
	g.zone.MarkVisited(5, 2)
	s := g.Snapshot(3)
	if len(s.Map) != g.zone.Height || len(s.Map[0]) != g.zone.Width {
		t.Fatalf("map is %dx%d", len(s.Map[0]), len(s.Map))
	}
	if s.Map[1][4] != '@' {
		t.Errorf("player cell = %q", s.Map[1][4])
	}
	if s.Map[2][5] != 'M' {
		t.Errorf("creature cell = %q", s.Map[2][5])
	}
	if len(s.Creatures) != 1 || s.Creatures[0] != (CreatureMark{Name: "Shambler", X: 5, Y: 2}) {
		t.Errorf("creatures = %+v", s.Creatures)
	}
	if s.Map[5][13] != ' ' {
		t.Errorf("unvisited cell = %q", s.Map[5][13])
	}
	if s.Map[0][0] != zone.Wall {
		t.Errorf("revealed wall = %q", s.Map[0][0])
	}
	if len(s.Log) > 3 || s.Mode != ModeExplore || len(s.Prompt) != 1 {
		t.Errorf("log=%d mode=%v prompt=%q", len(s.Log), s.Mode, s.Prompt)
	}
}
