package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration.
type Config struct {
	Port          int    `yaml:"port"`
	MOTD          string `yaml:"motd"`
	MaxPlayers    int    `yaml:"max_players"`
	ViewDistance  int    `yaml:"view_distance"`
	Seed          int64  `yaml:"seed"`
	GeneratorType string `yaml:"generator"`     // "default" or "flat"
	WorldRadius   int    `yaml:"world_radius"`  // chunks pre-generated around spawn
	DataDir       string `yaml:"data_dir"`      // world database directory ("" = in-memory only)
	ObserverAddr  string `yaml:"observer_addr"` // websocket event feed listen address ("" = off)

	// Packets at or above this size are zlib-compressed once login
	// negotiates compression. Negative disables compression entirely.
	CompressionThreshold int `yaml:"compression_threshold"`

	// /locatebiome search bounds when the command omits them.
	LocateRadius int `yaml:"locate_radius"`
	LocateStep   int `yaml:"locate_step"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:                 25565,
		MOTD:                 "A Minecraft Server",
		MaxPlayers:           20,
		ViewDistance:         8,
		GeneratorType:        "default",
		WorldRadius:          2,
		DataDir:              "world",
		CompressionThreshold: 256,
		LocateRadius:         6400,
		LocateStep:           8,
	}
}

// Load reads a YAML config file on top of the defaults and validates
// the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first nonsensical field value.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.MaxPlayers < 1 {
		return fmt.Errorf("max_players must be at least 1, got %d", c.MaxPlayers)
	}
	if c.ViewDistance < 1 || c.ViewDistance > 32 {
		return fmt.Errorf("view_distance %d out of range (1-32)", c.ViewDistance)
	}
	switch c.GeneratorType {
	case "default", "flat":
	default:
		return fmt.Errorf("unknown generator %q", c.GeneratorType)
	}
	if c.WorldRadius < 0 {
		return fmt.Errorf("world_radius must not be negative, got %d", c.WorldRadius)
	}
	if c.LocateRadius < 1 {
		return fmt.Errorf("locate_radius must be at least 1, got %d", c.LocateRadius)
	}
	if c.LocateStep < 1 {
		return fmt.Errorf("locate_step must be at least 1, got %d", c.LocateStep)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["port"] {
		cfg.Port = fromFile.Port
	}
	if !explicitFlags["motd"] {
		cfg.MOTD = fromFile.MOTD
	}
	if !explicitFlags["max-players"] {
		cfg.MaxPlayers = fromFile.MaxPlayers
	}
	if !explicitFlags["view-distance"] {
		cfg.ViewDistance = fromFile.ViewDistance
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.GeneratorType = fromFile.GeneratorType
	}
	if !explicitFlags["world-radius"] {
		cfg.WorldRadius = fromFile.WorldRadius
	}
	if !explicitFlags["data-dir"] {
		cfg.DataDir = fromFile.DataDir
	}
	if !explicitFlags["observer-addr"] {
		cfg.ObserverAddr = fromFile.ObserverAddr
	}
	if !explicitFlags["compression"] {
		cfg.CompressionThreshold = fromFile.CompressionThreshold
	}
	if !explicitFlags["locate-radius"] {
		cfg.LocateRadius = fromFile.LocateRadius
	}
	if !explicitFlags["locate-step"] {
		cfg.LocateStep = fromFile.LocateStep
	}
}
