// static-decay-server serves Static Decay over SSH. Every connection plays
// its own independent game. Build:
//
//	go build -o static-decay-server ./cmd/server
//
// Usage:
//
//	./static-decay-server [-port 2222] [-key server_host_key] [-data-dir DIR] [-log-level info]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"unicode"

	"static-decay/internal/config"
	"static-decay/internal/content"
	"static-decay/internal/game"
	internalssh "static-decay/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

// maxNameBytes bounds the player name recorded for a session.
const maxNameBytes = 16

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load("static-decay-server", args)
	if err != nil {
		return err
	}
	logger, closer, err := serverLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	table, err := content.Default()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	signer, err := loadOrCreateHostKey(cfg.KeyFile, logger)
	if err != nil {
		return err
	}

	h := &handler{cfg: cfg, table: table, logger: logger}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication; the server is meant for private hosts.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "port", cfg.Port, "data_dir", cfg.DataDir)
	return srv.ListenAndServe()
}

// serverLogger logs to the configured file, or to stderr when none is set.
func serverLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile != "" {
		return cfg.Logger()
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(h), io.NopCloser(nil), nil
}

type handler struct {
	cfg      config.Config
	table    *content.Table
	logger   *slog.Logger
	sessions atomic.Int64
}

// handleSession runs one game for the life of the connection.
func (h *handler) handleSession(s gossh.Session) {
	n := h.sessions.Add(1)
	name := sanitizeName(s.User())
	log := h.logger.With("session", n, "user", name, "remote", s.RemoteAddr().String())

	screen, err := internalssh.NewScreen(s)
	if err != nil {
		log.Warn("session rejected", "error", err)
		if errors.Is(err, internalssh.ErrNoPTY) {
			fmt.Fprintf(s, "This game requires a PTY. Connect with: ssh -t -p %d <host>\n", h.cfg.Port)
		} else {
			fmt.Fprintf(s, "%v\n", err)
		}
		return
	}

	log.Info("session started")
	g := game.New(screen, h.table, game.Options{
		Seed:    h.cfg.Seed + n,
		DataDir: h.cfg.DataDir,
		Player:  name,
		Logger:  log,
	})
	if err := g.Run(); err != nil {
		log.Error("session failed", "error", err)
		return
	}
	log.Info("session ended")
}

// sanitizeName drops control characters from an SSH user name and truncates
// it to maxNameBytes without splitting a rune.
func sanitizeName(s string) string {
	out := make([]rune, 0, len(s))
	size := 0
	for _, r := range s {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		n := len(string(r))
		if size+n > maxNameBytes {
			break
		}
		out = append(out, r)
		size += n
	}
	return string(out)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	pemBlock, err := xssh.MarshalPrivateKey(key, "static-decay server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logger.Warn("host key not saved", "path", path, "error", err)
	}
	return signer, nil
}
