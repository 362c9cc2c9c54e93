// Package engine is the Static Decay turn engine. A Game owns the player, the
// current zone and the message log, and advances one action token at a time.
package engine

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"static-decay/internal/content"
	"static-decay/internal/entity"
	"static-decay/internal/system"
	"static-decay/internal/zone"
)

const (
	// MoveHungerCost is the hunger spent on every successful step.
	MoveHungerCost = 1
	// SanityDrain is the per-turn sanity loss in draining zones.
	SanityDrain = 2
	// DistortionThreshold is the sanity below which the map is distorted.
	DistortionThreshold = 30
)

// Mode is what the next token will be interpreted as.
type Mode uint8

const (
	ModeExplore Mode = iota
	ModeInventory
	ModeCrafting
	ModeCombat
	ModeOver
)

func (m Mode) String() string {
	switch m {
	case ModeExplore:
		return "explore"
	case ModeInventory:
		return "inventory"
	case ModeCrafting:
		return "crafting"
	case ModeCombat:
		return "combat"
	case ModeOver:
		return "over"
	}
	return "unknown"
}

// Outcome is how a finished game ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	}
	return "playing"
}

// Game is the engine context. It is not safe for concurrent use; callers
// that share one across goroutines must serialize Submit calls.
type Game struct {
	table   *content.Table
	player  *entity.Player
	zone    *zone.Zone
	zoneIdx int

	mode    Mode
	combat  *system.Combat
	outcome Outcome
	final   string

	messages []string
	rng      system.Roller
	logger   *slog.Logger
	stats    Stats
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithRoller sets the randomness source for searches and combat.
func WithRoller(r system.Roller) Option {
	return func(g *Game) { g.rng = r }
}

// WithSeed seeds a fresh math/rand source.
func WithSeed(seed int64) Option {
	return WithRoller(rand.New(rand.NewSource(seed)))
}

// New starts a game in the first zone of t.
func New(t *content.Table, opts ...Option) (*Game, error) {
	g := &Game{
		table:  t,
		player: entity.NewPlayer(0, 0),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		stats:  newStats(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if err := g.enterZone(0); err != nil {
		return nil, err
	}
	if msg := t.StartMessage(); msg != "" {
		g.addMessage(msg)
	}
	return g, nil
}

// Submit feeds one token to the engine. Its meaning depends on Mode.
// Tokens after the game is over are ignored.
func (g *Game) Submit(token string) {
	switch g.mode {
	case ModeExplore:
		g.command(token)
	case ModeInventory:
		g.inventoryChoice(token)
	case ModeCrafting:
		g.craftChoice(token)
	case ModeCombat:
		g.combatChoice(token)
	}
}

// command dispatches a top-level token on its first letter.
func (g *Game) command(token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		g.addMessage("No command entered.")
		g.endTurn()
		return
	}
	switch strings.ToLower(token)[0] {
	case 'w':
		g.Move(North)
	case 'a':
		g.Move(West)
	case 's':
		g.Move(South)
	case 'd':
		g.Move(East)
	case 'i':
		g.openInventory()
	case 'c':
		g.openCrafting()
	case 'l':
		g.Look()
	case 'q':
		g.Quit()
	default:
		g.addMessage("Invalid command.")
		g.endTurn()
	}
}

// Quit ends the game by the player's choice.
func (g *Game) Quit() {
	if g.mode == ModeOver {
		return
	}
	g.addMessage("You give up hope.")
	g.finish(OutcomeQuit, "You give up hope.")
}

// endTurn runs the creature pass and passive decay once the player's action,
// including any combat it started, has fully resolved.
func (g *Game) endTurn() {
	if g.mode == ModeOver {
		return
	}
	g.mode = ModeExplore
	g.stats.Turns++
	if n := system.ProcessCreatures(g.zone, g.player); n > 0 {
		g.logger.Debug("creatures moved", "zone", g.zone.Name, "count", n)
	}
	g.decay()
}

func (g *Game) decay() {
	if g.player.HP <= 0 {
		msg := "Your wounds are too severe. You succumb to the darkness."
		g.addMessage(msg)
		g.finish(OutcomeLost, msg)
		return
	}
	if !g.spec().DrainsSanity || g.player.Sanity <= 0 {
		return
	}
	g.addMessage("The oppressive atmosphere wears on your mind.")
	g.player.LoseSanity(SanityDrain)
	if g.player.Sanity == 0 {
		g.addMessage("Your mind shatters under the strain!")
		g.logger.Info("sanity exhausted", "zone", g.zone.Name, "turn", g.stats.Turns)
	}
}

// enterZone replaces the current zone with a fresh build of zone idx and
// places the player on its spawn point.
func (g *Game) enterZone(idx int) error {
	zones := g.table.Zones()
	if idx < 0 || idx >= len(zones) {
		return fmt.Errorf("zone index %d out of range", idx)
	}
	spec := zones[idx]
	z, err := spec.Build()
	if err != nil {
		return fmt.Errorf("build zone %q: %w", spec.Name, err)
	}
	g.zone = z
	g.zoneIdx = idx
	g.player.X, g.player.Y = spec.Spawn.X, spec.Spawn.Y
	system.Reveal(z, g.player.X, g.player.Y)
	g.stats.Zone = spec.Name
	g.stats.ZonesReached = idx + 1
	g.logger.Info("zone entered", "zone", spec.Name, "index", idx)
	return nil
}

func (g *Game) spec() *content.ZoneSpec {
	return g.table.Zones()[g.zoneIdx]
}

// finish records the single terminal message and stops the engine.
func (g *Game) finish(o Outcome, msg string) {
	if g.mode == ModeOver {
		return
	}
	g.mode = ModeOver
	g.combat = nil
	g.outcome = o
	g.final = msg
	g.stats.Outcome = o.String()
	g.stats.Cause = msg
	g.logger.Info("game over", "outcome", o.String(), "zone", g.zone.Name, "turns", g.stats.Turns)
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
}

func (g *Game) addMessages(msgs []string) {
	g.messages = append(g.messages, msgs...)
}

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.mode == ModeOver }

func (g *Game) Mode() Mode { return g.mode }

// AwaitingLine reports whether the next token is free text (an item name or
// recipe number) rather than a single-key command.
func (g *Game) AwaitingLine() bool {
	switch g.mode {
	case ModeInventory, ModeCrafting:
		return true
	case ModeCombat:
		return g.combat.Phase() == system.PhaseChoosingItem
	}
	return false
}

func (g *Game) Outcome() Outcome { return g.outcome }

// FinalMessage is the terminal message, empty while the game is running.
func (g *Game) FinalMessage() string { return g.final }

// Player exposes the player for inspection. Callers must not mutate it.
func (g *Game) Player() *entity.Player { return g.player }

// Zone returns the current zone.
func (g *Game) Zone() *zone.Zone { return g.zone }

// Messages returns the full message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// RecentLog returns at most the last n messages.
func (g *Game) RecentLog(n int) []string {
	if n <= 0 {
		return nil
	}
	if len(g.messages) <= n {
		return g.messages
	}
	return g.messages[len(g.messages)-n:]
}

// Distorted reports whether low sanity should scramble the map.
func (g *Game) Distorted() bool { return g.player.Sanity < DistortionThreshold }
