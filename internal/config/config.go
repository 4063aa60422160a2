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

// Config captures the fields dial needs to reach the playout server.
type Config struct {
	Host       string
	PollActive time.Duration // foreground poll interval; 0 means built-in default
	PollIdle   time.Duration // background poll interval; 0 means built-in default
}

const (
	defaultConfigPath = "~/.config/dial/config.toml"
	defaultHost       = "127.0.0.1:8080"
)

// Load locates and parses the dial config, falling back to defaults when
// missing. A missing file is not an error; dial works out of the box
// against a server on localhost.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{Host: defaultHost}

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
		Host         string `toml:"host"`
		PollActiveMS int    `toml:"poll_active_ms"`
		PollIdleMS   int    `toml:"poll_idle_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Host = strings.TrimSpace(raw.Host)
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if raw.PollActiveMS > 0 {
		cfg.PollActive = time.Duration(raw.PollActiveMS) * time.Millisecond
	}
	if raw.PollIdleMS > 0 {
		cfg.PollIdle = time.Duration(raw.PollIdleMS) * time.Millisecond
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
