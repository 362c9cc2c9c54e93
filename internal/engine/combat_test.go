package engine

import (
	"testing"

	"static-decay/internal/entity"
	"static-decay/internal/system"
)

// fightShambler stands the player next to the subway shambler at (5,2) and
// bumps into it.
func fightShambler(t *testing.T, g *Game) *entity.Creature {
	t.Helper()
	place(g, 4, 2)
	target := g.zone.CreatureAt(5, 2)
	if target == nil {
		t.Fatal("no shambler at (5,2)")
	}
	g.Submit("d")
	if g.Mode() != ModeCombat {
		t.Fatalf("mode = %v; want combat", g.Mode())
	}
	return target
}

func TestBumpStartsCombatWithoutMoving(t *testing.T) {
	g := newGame(t)
	fightShambler(t, g)
	if g.player.X != 4 || g.player.Y != 2 {
		t.Errorf("player moved to (%d,%d)", g.player.X, g.player.Y)
	}
	if lastMessage(g) != "You encounter a Shambler!" {
		t.Errorf("last message = %q", lastMessage(g))
	}
	if g.Stats().Turns != 0 {
		t.Error("turn ended before combat resolved")
	}
	if s := g.Snapshot(LogLines); s.Combat == nil || s.Combat.Creature != "Shambler" || s.Combat.CreatureHP != 30 {
		t.Errorf("combat view = %+v", s.Combat)
	}
}

func TestPistolKillsShamblerInOneRound(t *testing.T) {
	g := newGame(t)
	pistol, _ := g.table.LookupItem("9mm Pistol")
	g.player.AddItem(pistol, 1)
	g.player.Equip(pistol)
	target := fightShambler(t, g)

	g.Submit("a")
	if target.HP != 0 || g.zone.CreatureAt(5, 2) != nil {
		t.Fatalf("shambler hp=%d still in zone=%v", target.HP, g.zone.CreatureAt(5, 2) != nil)
	}
	if g.player.HP != entity.MaxStat {
		t.Errorf("player hp = %d; want untouched", g.player.HP)
	}
	if g.Mode() != ModeExplore || g.Stats().Turns != 1 {
		t.Errorf("mode=%v turns=%d", g.Mode(), g.Stats().Turns)
	}
	if g.player.X != 4 {
		t.Error("defeating a creature moved the player")
	}
	if s := g.Stats(); s.Kills["Shambler"] != 1 || s.DamageDealt != 30 {
		t.Errorf("kills=%v dealt=%d", s.Kills, s.DamageDealt)
	}
}

func TestCreaturePassWaitsForCombat(t *testing.T) {
	g := newGame(t)
	fightShambler(t, g)
	other := g.zone.Creatures[1]
	x, y := other.X, other.Y
	g.Submit("a") // unarmed: shambler survives and hits back
	if g.Mode() != ModeCombat || g.Stats().Turns != 0 {
		t.Fatalf("mode=%v turns=%d", g.Mode(), g.Stats().Turns)
	}
	if g.player.HP != entity.MaxStat-10 {
		t.Errorf("hp = %d", g.player.HP)
	}
	if g.player.Sanity != entity.MaxStat {
		t.Error("sanity drained mid-combat")
	}
	if other.X != x || other.Y != y {
		t.Error("creature pass ran mid-combat")
	}
}

func TestEscapeEndsTurn(t *testing.T) {
	g := newGame(t, system.RunChance-1)
	target := fightShambler(t, g)
	g.Submit("r")
	if g.Mode() != ModeExplore || g.Stats().Turns != 1 {
		t.Fatalf("mode=%v turns=%d", g.Mode(), g.Stats().Turns)
	}
	if !target.Alive() || g.zone.CreatureAt(target.X, target.Y) != target {
		t.Error("escaping removed the shambler")
	}
	if g.player.HP != entity.MaxStat {
		t.Errorf("hp = %d after clean escape", g.player.HP)
	}
}

func TestCombatInvalidTokensCostNothing(t *testing.T) {
	g := newGame(t)
	fightShambler(t, g)
	g.Submit("x")
	g.Submit("")
	if !hasMessage(g, "Invalid combat action.") || !hasMessage(g, "No action taken.") {
		t.Errorf("log = %q", g.messages)
	}
	if g.player.HP != entity.MaxStat || g.Mode() != ModeCombat {
		t.Errorf("hp=%d mode=%v", g.player.HP, g.Mode())
	}
}

func TestCombatItemPrompt(t *testing.T) {
	g := newGame(t)
	bandage, _ := g.table.LookupItem("Bandage")
	g.player.AddItem(bandage, 1)
	g.player.HP = 40
	fightShambler(t, g)

	if g.AwaitingLine() {
		t.Fatal("combat action choice should be a single key")
	}
	g.Submit("i")
	if !g.AwaitingLine() {
		t.Fatal("item choice should read a line")
	}
	s := g.Snapshot(LogLines)
	if s.Combat == nil || !s.Combat.ChoosingItem || len(s.Combat.Consumables) != 1 {
		t.Fatalf("combat view = %+v", s.Combat)
	}
	g.Submit("b")
	if !hasMessage(g, "Cancelled using item.") || g.player.HP != 40 {
		t.Fatalf("hp=%d log=%q", g.player.HP, g.messages)
	}

	g.Submit("i")
	g.Submit("Bandage")
	// +20 then the shambler's 10.
	if g.player.HP != 50 || g.player.HasItem("Bandage") {
		t.Errorf("hp=%d bandage=%v", g.player.HP, g.player.HasItem("Bandage"))
	}
	if g.Stats().ItemsUsed != 1 {
		t.Errorf("items used = %d", g.Stats().ItemsUsed)
	}
}

func TestDefeatInCombat(t *testing.T) {
	g := newGame(t)
	g.player.HP = 10
	fightShambler(t, g)
	other := g.zone.Creatures[1]
	x, y := other.X, other.Y
	g.Submit("a")
	if !g.Over() || g.Outcome() != OutcomeLost {
		t.Fatalf("over=%v outcome=%v", g.Over(), g.Outcome())
	}
	if g.FinalMessage() != "You have been defeated by the Shambler!" {
		t.Errorf("final = %q", g.FinalMessage())
	}
	if other.X != x || other.Y != y {
		t.Error("creature pass ran after defeat")
	}
	if s := g.Stats(); s.KilledBy != "Shambler" || s.Outcome != "lost" {
		t.Errorf("stats = %+v", s)
	}
	n := len(g.messages)
	g.Submit("a")
	if len(g.messages) != n {
		t.Error("input processed after game over")
	}
}
