// Package config reads command-line flags and environment variables shared by
// the local game and the SSH server.
package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AppName names the data directory under XDG_DATA_HOME.
const AppName = "static-decay"

// LogLevelEnv overrides the default log level when --log-level is not given.
const LogLevelEnv = "STATIC_DECAY_LOG_LEVEL"

// Config holds every runtime setting.
type Config struct {
	Seed     int64 // 0 picks a time-based seed
	LogFile  string
	LogLevel slog.Level
	DataDir  string
	Port     int    // server only
	KeyFile  string // server only
}

// Load parses args (without the program name) for the named command.
func Load(name string, args []string) (Config, error) {
	var (
		cfg   Config
		level string
	)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time based)")
	fs.StringVar(&cfg.LogFile, "log-file", "", "write diagnostics to this file")
	fs.StringVar(&level, "log-level", os.Getenv(LogLevelEnv), "debug, info, warn or error")
	fs.StringVar(&cfg.DataDir, "data-dir", "", "directory for runs.jsonl (default $XDG_DATA_HOME/"+AppName+")")
	fs.IntVar(&cfg.Port, "port", 2222, "SSH server port")
	fs.StringVar(&cfg.KeyFile, "key", "server_host_key", "path to the PEM host key (generated if absent)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = lvl
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.DataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return Config{}, fmt.Errorf("data dir: %w", err)
		}
		cfg.DataDir = dir
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}
	return cfg, nil
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// DefaultDataDir follows the XDG base directory layout:
// $XDG_DATA_HOME/static-decay, defaulting to ~/.local/share/static-decay.
func DefaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}

// Logger builds the diagnostics logger. Without a log file everything is
// discarded, since the terminal belongs to the game. The returned closer
// must be closed on exit.
func (c Config) Logger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: c.LogLevel})
	return slog.New(h), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
