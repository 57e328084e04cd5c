// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// minMapSize is the smallest generated level that fits a room.
const minMapSize = 10

// Config controls the game and its logging.
type Config struct {
	FOVRadius         int    `env:"ROGUE_FOV_RADIUS"          envDefault:"8"`
	LevelFile         string `env:"ROGUE_LEVEL_FILE"`
	MapWidth          int    `env:"ROGUE_MAP_WIDTH"           envDefault:"80"`
	MapHeight         int    `env:"ROGUE_MAP_HEIGHT"          envDefault:"43"`
	MaxMonsters       int    `env:"ROGUE_MAX_MONSTERS"        envDefault:"2"`
	MaxItems          int    `env:"ROGUE_MAX_ITEMS"           envDefault:"2"`
	Seed              int64  `env:"ROGUE_SEED"`
	InventoryCapacity int    `env:"ROGUE_INVENTORY_CAPACITY"  envDefault:"26"`
	LogLevel          string `env:"LOG_LEVEL"                 envDefault:"info"`
	LogFormat         string `env:"LOG_FORMAT"                envDefault:"text"`
	LogFile           string `env:"LOG_FILE"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.FOVRadius <= 0 {
		errs = append(errs, fmt.Errorf("ROGUE_FOV_RADIUS must be positive, got %d", c.FOVRadius))
	}
	if c.MapWidth < minMapSize || c.MapHeight < minMapSize {
		errs = append(errs, fmt.Errorf("map must be at least %dx%d, got %dx%d", minMapSize, minMapSize, c.MapWidth, c.MapHeight))
	}
	if c.MaxMonsters < 0 || c.MaxItems < 0 {
		errs = append(errs, errors.New("per-room limits must not be negative"))
	}
	if c.InventoryCapacity <= 0 {
		errs = append(errs, fmt.Errorf("ROGUE_INVENTORY_CAPACITY must be positive, got %d", c.InventoryCapacity))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
