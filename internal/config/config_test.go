package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogPath != defaultLogPath {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, defaultLogPath)
	}
	if cfg.MaxLines != defaultMaxLines {
		t.Fatalf("MaxLines = %d, want %d", cfg.MaxLines, defaultMaxLines)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("PollInterval = %v, want %v", cfg.PollInterval, defaultPollInterval)
	}
	if len(cfg.Tabs) != 1 || cfg.Tabs[0].Name != defaultTabName || cfg.Tabs[0].Contains != "" {
		t.Fatalf("Tabs = %#v, want a single unfiltered tab", cfg.Tabs)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_path = "  ~/logs/app.log  "
max_lines = 500
poll_interval = "250ms"

[[tabs]]
name = " All "

[[tabs]]
contains = "ERROR"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, "logs/app.log"); cfg.LogPath != want {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, want)
	}
	if cfg.MaxLines != 500 {
		t.Fatalf("MaxLines = %d, want 500", cfg.MaxLines)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Fatalf("PollInterval = %v, want 250ms", cfg.PollInterval)
	}
	if len(cfg.Tabs) != 2 {
		t.Fatalf("Tabs = %#v, want 2 tabs", cfg.Tabs)
	}
	if cfg.Tabs[0].Name != "All" {
		t.Fatalf("Tabs[0].Name = %q, want All", cfg.Tabs[0].Name)
	}
	if cfg.Tabs[1].Name != "ERROR" || cfg.Tabs[1].Contains != "ERROR" {
		t.Fatalf("Tabs[1] = %#v, want name and filter ERROR", cfg.Tabs[1])
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
log_path = "   "
max_lines = 0
poll_interval = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogPath != defaultLogPath {
		t.Fatalf("LogPath = %q, want %q", cfg.LogPath, defaultLogPath)
	}
	if cfg.MaxLines != defaultMaxLines {
		t.Fatalf("MaxLines = %d, want %d", cfg.MaxLines, defaultMaxLines)
	}
	if len(cfg.Tabs) != 1 {
		t.Fatalf("Tabs = %#v, want default tab", cfg.Tabs)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`log_path = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_InvalidPollIntervalFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`poll_interval = "soon"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "poll_interval") {
		t.Fatalf("Load error = %v, want poll_interval error", err)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestWithLogPath_OverridesOnlyWhenSet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Default()
	if got := cfg.WithLogPath("  ").LogPath; got != defaultLogPath {
		t.Fatalf("WithLogPath(blank) = %q, want %q", got, defaultLogPath)
	}
	if got, want := cfg.WithLogPath("~/x.log").LogPath, filepath.Join(home, "x.log"); got != want {
		t.Fatalf("WithLogPath = %q, want %q", got, want)
	}
	if cfg.LogPath != defaultLogPath {
		t.Fatalf("WithLogPath mutated receiver: %q", cfg.LogPath)
	}
}
