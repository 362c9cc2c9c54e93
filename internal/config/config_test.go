package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	t.Setenv(LogLevelEnv, "")

	cfg, err := Load("static-decay", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed == 0 {
		t.Error("expected a time-based seed, got 0")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
	if want := filepath.Join("/tmp/xdg", AppName); cfg.DataDir != want {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, want)
	}
	if cfg.Port != 2222 {
		t.Errorf("Port = %d, want 2222", cfg.Port)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load("static-decay", []string{
		"-seed", "42", "-log-level", "debug", "-data-dir", "/data", "-port", "2022",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}
	if cfg.DataDir != "/data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Port != 2022 {
		t.Errorf("Port = %d", cfg.Port)
	}
}

func TestLoadLevelFromEnv(t *testing.T) {
	t.Setenv(LogLevelEnv, "warn")
	cfg, err := Load("static-decay", []string{"-data-dir", "/data"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != slog.LevelWarn {
		t.Errorf("LogLevel = %v, want WARN", cfg.LogLevel)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"bad level", []string{"-log-level", "loud"}},
		{"bad port", []string{"-port", "0"}},
		{"port too high", []string{"-port", "70000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load("static-decay", append(tt.args, "-data-dir", "/data")); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDefaultDataDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/tester")
	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("DefaultDataDir: %v", err)
	}
	if want := "/home/tester/.local/share/static-decay"; dir != want {
		t.Errorf("got %q, want %q", dir, want)
	}
}

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	cfg := Config{LogFile: path, LogLevel: slog.LevelInfo}
	logger, closer, err := cfg.Logger()
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("zone entered", "zone", "Subway")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.Contains(got, "zone=Subway") {
		t.Errorf("log missing info line: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Errorf("debug line should be filtered: %q", got)
	}
}

func TestLoggerWithoutFileDiscards(t *testing.T) {
	logger, closer, err := Config{}.Logger()
	if err != nil {
		t.Fatalf("Logger: %v", err)
	}
	logger.Info("nothing")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
