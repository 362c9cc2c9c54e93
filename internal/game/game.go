// Package game runs Static Decay on a tcell screen: it turns key presses into
// engine tokens, draws each frame and records finished runs.
package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"static-decay/internal/content"
	"static-decay/internal/engine"
	"static-decay/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Options configures a Game.
type Options struct {
	Seed    int64  // 0 picks a time-based seed
	DataDir string // where runs.jsonl is written; empty disables the run log
	Player  string // recorded in the run log
	Logger  *slog.Logger
}

// Game is the top-level orchestrator for one terminal.
type Game struct {
	screen   tcell.Screen
	table    *content.Table
	opts     Options
	logger   *slog.Logger
	renderer *render.Renderer
	rng      *rand.Rand // seeds successive runs

	engine  *engine.Game
	seed    int64
	editor  lineEditor
	aborted bool // Ctrl-C or the screen went away
}

// New creates a Game drawing on an initialized screen.
func New(screen tcell.Screen, table *content.Table, opts Options) *Game {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	return &Game{
		screen:   screen,
		table:    table,
		opts:     opts,
		logger:   logger,
		renderer: render.NewRenderer(screen, rand.New(rand.NewSource(rng.Int63()))),
		rng:      rng,
	}
}

// NewLocal creates a Game on the process's own terminal.
func NewLocal(table *content.Table, opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen, table, opts), nil
}

// Run plays runs until the player quits, then finalizes the screen.
func (g *Game) Run() error {
	defer g.screen.Fini()

	for {
		if err := g.newRun(); err != nil {
			return err
		}
		g.play()
		g.saveRun()
		if g.aborted || g.engine.Outcome() == engine.OutcomeQuit {
			return nil
		}
		if !g.showEndScreen() {
			return nil
		}
	}
}

// newRun starts a fresh engine. The first run uses Options.Seed; retries
// draw their seed from it.
func (g *Game) newRun() error {
	if g.engine == nil {
		g.seed = g.opts.Seed
	} else {
		g.seed = g.rng.Int63()
	}
	eng, err := engine.New(g.table, engine.WithSeed(g.seed), engine.WithLogger(g.logger))
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	g.engine = eng
	g.editor.reset()
	g.logger.Info("run started", "player", g.opts.Player, "seed", g.seed)
	return nil
}

// play feeds key presses to the engine until the run ends.
func (g *Game) play() {
	for !g.engine.Over() {
		g.draw()
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			g.abort()
			return
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			g.handleKey(ev)
		}
	}
}

func (g *Game) abort() {
	g.aborted = true
	g.engine.Quit()
}

func (g *Game) draw() {
	s := g.engine.Snapshot(engine.LogLines)
	if g.engine.AwaitingLine() && len(s.Prompt) > 0 {
		s.Prompt[len(s.Prompt)-1] += " " + g.editor.String() + "_"
	}
	g.renderer.DrawFrame(s)
}

// handleKey turns one key press into at most one engine token.
func (g *Game) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.abort()
		return
	}
	if g.engine.AwaitingLine() {
		if line, done := g.editor.handle(ev); done {
			g.engine.Submit(line)
		}
		return
	}
	if tok, ok := keyToToken(ev, g.engine.Mode()); ok {
		g.engine.Submit(tok)
	}
}

func (g *Game) saveRun() {
	if g.opts.DataDir == "" {
		return
	}
	rec := newRunRecord(g.opts.Player, g.seed, g.engine.Stats())
	if err := appendRunLog(g.opts.DataDir, rec); err != nil {
		g.logger.Warn("run log: cannot save run", "error", err)
		return
	}
	g.logger.Info("run saved", "id", rec.ID, "outcome", rec.Stats.Outcome)
}

// putText writes a string to the screen at (x, y), one column per rune.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
