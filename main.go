// static-decay is a turn-based survival game played in the terminal.
//
// Usage:
//
//	static-decay [-seed N] [-data-dir DIR] [-log-file FILE] [-log-level info]
package main

import (
	"fmt"
	"os"
	"os/user"

	"static-decay/internal/config"
	"static-decay/internal/content"
	"static-decay/internal/game"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load("static-decay", args)
	if err != nil {
		return err
	}
	logger, closer, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer closer.Close()

	table, err := content.Default()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	opts := game.Options{Seed: cfg.Seed, DataDir: cfg.DataDir, Logger: logger}
	if u, err := user.Current(); err == nil {
		opts.Player = u.Username
	}
	g, err := game.NewLocal(table, opts)
	if err != nil {
		return err
	}
	return g.Run()
}
