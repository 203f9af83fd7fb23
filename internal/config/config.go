// Package config loads the taskdeck configuration file.
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

// Config captures the settings taskdeck reads from its config file.
type Config struct {
	BaseURL        string
	TimeoutSeconds int
	PageSize       int
}

const (
	defaultConfigPath     = "~/.config/taskdeck/config.toml"
	defaultBaseURL        = "https://jsonplaceholder.typicode.com"
	defaultTimeoutSeconds = 10
	defaultPageSize       = 10
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:        defaultBaseURL,
		TimeoutSeconds: defaultTimeoutSeconds,
		PageSize:       defaultPageSize,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL        string `toml:"base_url"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		PageSize       int    `toml:"page_size"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.BaseURL); base != "" {
		cfg.BaseURL = base
	}
	if raw.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = raw.TimeoutSeconds
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}

	return cfg, nil
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
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
