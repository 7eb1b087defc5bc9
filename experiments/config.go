package experiments

import (
	"errors"
	"fmt"
	"os"

	"warships/game"
	"warships/meta"
	"warships/strategy"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// Config describes a Monte Carlo run.
type Config struct {
	Strategy string       `yaml:"strategy"`
	Games    int          `yaml:"games"`
	Workers  int          `yaml:"workers"`
	Seed     uint64       `yaml:"seed"` // 0 picks a seed from the clock
	Fleet    FleetConfig  `yaml:"fleet"`
	Output   OutputConfig `yaml:"output"`
}

// FleetConfig names a preset or lists ships explicitly. Ships wins when both are set.
type FleetConfig struct {
	Preset string             `yaml:"preset,omitempty"`
	Ships  []game.ShipDetails `yaml:"ships,omitempty"`
}

type OutputConfig struct {
	Dir     string `yaml:"dir"`     // Empty disables file output
	Console bool   `yaml:"console"` // Print progress and the final lists
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Strategy: meta.STRATEGY,
		Games:    meta.GAMES,
		Workers:  meta.WORKERS,
		Fleet:    FleetConfig{Preset: meta.FLEET},
		Output:   OutputConfig{Dir: meta.OUTPUT_DIR, Console: true},
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := strategy.New(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.BuildFleet(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// BuildFleet returns the fleet placed on every board.
func (c *Config) BuildFleet() (game.Fleet, error) {
	if len(c.Fleet.Ships) == 0 {
		return game.NewFleet(c.Fleet.Preset)
	}

	var fleet game.Fleet
	for _, s := range c.Fleet.Ships {
		if s.Length <= 0 || s.Length > game.Size {
			return game.Fleet{}, fmt.Errorf("ship length %d outside 1-%d: %w", s.Length, game.Size, game.ErrInvalidLength)
		}
		if s.Quantity < 0 {
			return game.Fleet{}, fmt.Errorf("negative quantity %d for length %d", s.Quantity, s.Length)
		}
		fleet.AddShipDetails(s.Length, s.Quantity)
	}
	return fleet, nil
}
