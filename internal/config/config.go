package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Tab is one pane of the viewer: the lines containing Contains, or every
// line when Contains is empty.
type Tab struct {
	Name     string `toml:"name"`
	Contains string `toml:"contains"`
}

// Config holds the viewer settings.
type Config struct {
	LogPath      string
	MaxLines     int
	PollInterval time.Duration
	Tabs         []Tab
}

const (
	defaultConfigPath   = "~/.config/flow/config.toml"
	defaultLogPath      = "/var/log/syslog"
	defaultMaxLines     = 10_000
	defaultPollInterval = time.Second
	defaultTabName      = "All"
)

// Load locates and parses the flow config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogPath      string `toml:"log_path"`
		MaxLines     int    `toml:"max_lines"`
		PollInterval string `toml:"poll_interval"`
		Tabs         []Tab  `toml:"tabs"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logPath := strings.TrimSpace(raw.LogPath); logPath != "" {
		cfg.LogPath = mustExpand(logPath)
	}
	if raw.MaxLines > 0 {
		cfg.MaxLines = raw.MaxLines
	}
	if interval := strings.TrimSpace(raw.PollInterval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return Config{}, fmt.Errorf("parse poll_interval: %w", err)
		}
		if d > 0 {
			cfg.PollInterval = d
		}
	}
	if tabs := normalizeTabs(raw.Tabs); len(tabs) > 0 {
		cfg.Tabs = tabs
	}

	return cfg, nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogPath:      defaultLogPath,
		MaxLines:     defaultMaxLines,
		PollInterval: defaultPollInterval,
		Tabs:         []Tab{{Name: defaultTabName}},
	}
}

// WithLogPath returns a copy of c reading from path instead, when path is set.
func (c Config) WithLogPath(path string) Config {
	if strings.TrimSpace(path) != "" {
		c.LogPath = mustExpand(path)
	}
	return c
}

func normalizeTabs(tabs []Tab) []Tab {
	out := make([]Tab, 0, len(tabs))
	for _, tab := range tabs {
		tab.Name = strings.TrimSpace(tab.Name)
		if tab.Name == "" {
			tab.Name = tab.Contains
		}
		if tab.Name == "" {
			tab.Name = defaultTabName
		}
		out = append(out, tab)
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
