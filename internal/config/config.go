package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/packet"
)

const DefaultPath = "bitsctl.toml"

// Config is the bitsctl runtime configuration.
type Config struct {
	Input    string
	LogLevel string
	MaxDepth int
}

// bitsctl.toml key mapping to Config.
type fileConfig struct {
	Input    string `toml:"input"`
	LogLevel string `toml:"log_level"`
	MaxDepth int    `toml:"max_depth"`
}

func Default() Config {
	return Config{
		Input:    "inputs/day_16.in",
		LogLevel: "info",
		MaxDepth: packet.DefaultLimits().MaxDepth,
	}
}

// Limits returns the packet decode limits for cfg.
func (c Config) Limits() packet.Limits {
	return packet.Limits{MaxDepth: c.MaxDepth}
}

// Load overlays the keys defined in path onto Default. When allowMissing
// is set, a missing file yields the defaults.
func Load(path string, allowMissing bool) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if allowMissing && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load bitsctl config (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load bitsctl config (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("load bitsctl config (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Input) == "" {
		return fmt.Errorf("input path is required")
	}
	if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("unsupported log_level %q", cfg.LogLevel)
	}
	if cfg.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", cfg.MaxDepth)
	}
	return nil
}
