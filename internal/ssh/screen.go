// Package ssh adapts gliderlabs/ssh sessions to tcell screens so each
// connected client gets its own terminal.
package ssh

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when the client's TERM is missing or not allowed.
const DefaultTerm = "xterm-256color"

// ErrNoPTY is returned for sessions opened without a pseudo-terminal.
var ErrNoPTY = errors.New("session has no PTY")

// AllowedTerms lists the terminal types a client may select. Anything else
// falls back to DefaultTerm, so a client cannot point terminfo lookups at
// arbitrary names.
var AllowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// TermFromEnv picks the terminal type from a session environment.
func TermFromEnv(environ []string) string {
	for _, env := range environ {
		if term, ok := strings.CutPrefix(env, "TERM="); ok {
			if AllowedTerms[term] {
				return term
			}
			break
		}
	}
	return DefaultTerm
}

// termMu serializes the TERM swap around screen creation; terminfo lookup
// reads the process environment.
var termMu sync.Mutex

// NewScreen builds and initializes a tcell screen drawing to s.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := pty.Term
	if !AllowedTerms[term] {
		term = TermFromEnv(s.Environ())
	}

	tty := NewSessionTty(s, pty, winCh)
	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}

// SessionTty is the tcell.Tty for one SSH session. The session handler owns
// the channel, so Close leaves it open; returning from the handler ends it.
type SessionTty struct {
	io.ReadWriter

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
}

// NewSessionTty wraps rw with the initial window from pty and follows
// window changes from winCh until the session closes it.
func NewSessionTty(rw io.ReadWriter, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	t := &SessionTty{ReadWriter: rw, window: pty.Window}
	if winCh == nil {
		return t
	}
	go func() {
		for win := range winCh {
			t.resize(win)
		}
	}()
	return t
}

func (t *SessionTty) resize(win gossh.Window) {
	t.mu.Lock()
	t.window = win
	cb := t.onResize
	t.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (t *SessionTty) Start() error { return nil }

func (t *SessionTty) Stop() error { return nil }

func (t *SessionTty) Drain() error { return nil }

func (t *SessionTty) Close() error { return nil }

// NotifyResize registers the callback tcell uses to learn about resizes.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()
}

// WindowSize returns the last size reported by the client.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}
