// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/solemate/solemate-tui/internal/cloud"
	"github.com/solemate/solemate-tui/internal/util"
)

// Config is the full application configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Model   ModelConfig   `toml:"model"`
	Catalog CatalogConfig `toml:"catalog"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
}

// APIConfig locates the model provider.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	// Key is normally supplied via SOLEMATE_API_KEY or a .env file
	// rather than written into the config file.
	Key string `toml:"key"`
}

// ModelConfig sets the fixed call parameters.
type ModelConfig struct {
	Name        string  `toml:"name"`
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float64 `toml:"temperature"`
}

// CatalogConfig locates the product table.
type CatalogConfig struct {
	// Source is an HTTP(S) URL or a local file path.
	Source string `toml:"source"`
	// Watch reloads a file source when it changes.
	Watch bool `toml:"watch"`
}

// StorageConfig locates local state.
type StorageConfig struct {
	ConversationsDir string `toml:"conversations_dir"`
	HistoryDB        string `toml:"history_db"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string `toml:"theme"`
}

// Dir returns the application state directory (~/.solemate).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".solemate"), nil
}

// Default returns the built-in configuration. Paths under the home
// directory fall back to relative paths when home cannot be resolved.
func Default() Config {
	dir, err := Dir()
	if err != nil {
		dir = ".solemate"
	}
	return Config{
		API: APIConfig{
			BaseURL: "https://api.anthropic.com/v1",
		},
		Model: ModelConfig{
			Name:        cloud.DefaultModel,
			MaxTokens:   cloud.DefaultMaxTokens,
			Temperature: cloud.DefaultTemperature,
		},
		Catalog: CatalogConfig{
			Source: "catalog.txt",
			Watch:  true,
		},
		Storage: StorageConfig{
			ConversationsDir: filepath.Join(dir, "conversations"),
			HistoryDB:        filepath.Join(dir, "usage.db"),
		},
		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// Load reads the default config file location with env overrides.
func Load() (Config, error) {
	path := ""
	if dir, err := Dir(); err == nil {
		path = filepath.Join(dir, "config.toml")
	}
	return LoadFrom(path)
}

// LoadFrom reads path (skipped when empty or absent), then applies
// environment overrides and validates. A .env file in the working
// directory is folded into the environment first, best-effort.
func LoadFrom(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays SOLEMATE_* variables onto the config. The API key
// additionally honors ANTHROPIC_API_KEY.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SOLEMATE_API_KEY"); v != "" {
		cfg.API.Key = v
	} else if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" && cfg.API.Key == "" {
		cfg.API.Key = v
	}
	if v := os.Getenv("SOLEMATE_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("SOLEMATE_MODEL"); v != "" {
		cfg.Model.Name = v
	}
	if v := os.Getenv("SOLEMATE_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Model.MaxTokens = n
		}
	}
	if v := os.Getenv("SOLEMATE_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Model.Temperature = f
		}
	}
	if v := os.Getenv("SOLEMATE_CATALOG"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("SOLEMATE_CATALOG_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Catalog.Watch = b
		}
	}
	if v := os.Getenv("SOLEMATE_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// Validate checks field ranges. The API key is deliberately not
// required here: the TUI starts without one and surfaces the missing
// key as an in-conversation error on first submit.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: api.base_url must not be empty")
	}
	if c.Model.Name == "" {
		return fmt.Errorf("config: model.name must not be empty")
	}
	if c.Model.MaxTokens <= 0 {
		return fmt.Errorf("config: model.max_tokens must be positive, got %d", c.Model.MaxTokens)
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		return fmt.Errorf("config: model.temperature must be in [0, 2], got %v", c.Model.Temperature)
	}
	if c.Catalog.Source == "" {
		return fmt.Errorf("config: catalog.source must not be empty")
	}
	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		return fmt.Errorf("config: ui.theme must be auto, dark or light, got %q", c.UI.Theme)
	}
	return nil
}

// Save writes the config as TOML, atomically. The API key is blanked
// first so it never lands on disk.
func Save(cfg Config, path string) error {
	cfg.API.Key = ""

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
