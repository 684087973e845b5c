package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/agenthands/kamsam/internal/core/history"
	"github.com/agenthands/kamsam/internal/core/model"
	"github.com/agenthands/kamsam/internal/core/palette"
	"github.com/agenthands/kamsam/internal/core/segment"
)

// DefaultPath is read when CONFIG_PATH is not set.
const DefaultPath = "config/kamsam.toml"

type ServerConfig struct {
	Port string `toml:"port"`
}

type GameConfig struct {
	Policy       string   `toml:"policy"`
	HistoryLimit int      `toml:"history_limit"`
	Palette      []string `toml:"palette"`
}

type SegmenterConfig struct {
	Language   string `toml:"language"`
	Dictionary string `toml:"dictionary"`
	CacheSize  int    `toml:"cache_size"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Output string `toml:"output"` // file path; empty means stderr
}

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Game      GameConfig      `toml:"game"`
	Segmenter SegmenterConfig `toml:"segmenter"`
	Logging   LoggingConfig   `toml:"logging"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Game: GameConfig{
			Policy:       string(model.PolicyExact),
			HistoryLimit: history.DefaultLimit,
			Palette:      palette.Default(),
		},
		Segmenter: SegmenterConfig{
			Language:  "th",
			CacheSize: segment.DefaultCacheSize,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides values with environment variables when they are set.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("GAME_POLICY"); v != "" {
		c.Game.Policy = v
	}
	if v := os.Getenv("HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HISTORY_LIMIT %q: %w", v, err)
		}
		c.Game.HistoryLimit = n
	}
	if v := os.Getenv("SEGMENTER_LANGUAGE"); v != "" {
		c.Segmenter.Language = v
	}
	if v := os.Getenv("SEGMENTER_DICTIONARY"); v != "" {
		c.Segmenter.Dictionary = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

func (c *Config) Validate() error {
	if _, err := c.Policy(); err != nil {
		return err
	}
	if c.Game.HistoryLimit <= 0 {
		return fmt.Errorf("game.history_limit must be positive, got %d", c.Game.HistoryLimit)
	}
	if len(c.Game.Palette) == 0 {
		return errors.New("game.palette must list at least one color")
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) Policy() (model.Policy, error) {
	return model.ParsePolicy(c.Game.Policy)
}

func (c *Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Segmenter.Language)
	if err != nil {
		return language.Und, fmt.Errorf("invalid segmenter.language %q: %w", c.Segmenter.Language, err)
	}
	return tag, nil
}
