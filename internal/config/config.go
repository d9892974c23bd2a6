// Package config loads fencemeasure settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/philipparndt/fencemeasure/pkg/fence"
	"github.com/philipparndt/fencemeasure/pkg/geometry"
)

// EnvConfigPath names the environment variable consulted when no config
// path is given on the command line.
const EnvConfigPath = "FENCEMEASURE_CONFIG"

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Config is the root configuration. Fields left out of the file are nil
// and fall back to defaults through the getters.
type Config struct {
	Materials MaterialsConfig `toml:"materials"`
	Drafting  DraftingConfig  `toml:"drafting"`
}

// MaterialsConfig overrides the material estimate spacing
type MaterialsConfig struct {
	PostSpacingFeet     *float64 `toml:"post_spacing_feet"`
	PicketWidthInches   *float64 `toml:"picket_width_inches"`
	PicketSpacingInches *float64 `toml:"picket_spacing_inches"`
	RailsPerSection     *int     `toml:"rails_per_section"`
}

// DraftingConfig tunes angle classification, snapping and file watching
type DraftingConfig struct {
	AngleTolerance *float64 `toml:"angle_tolerance"`
	SnapIncrement  *float64 `toml:"snap_increment"`
	GridSize       *float64 `toml:"grid_size"`      // meters
	WatchDebounce  *string  `toml:"watch_debounce"` // duration string like "300ms"
}

// Default returns a config with every field unset
func Default() *Config {
	return &Config{}
}

// Load reads a TOML config file. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".toml" {
		return nil, fmt.Errorf("config file must have .toml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Resolve loads the config named by flagPath, or by EnvConfigPath when
// flagPath is empty. With neither set it returns the defaults.
func Resolve(flagPath string) (*Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks that the configured values are usable
func (c *Config) Validate() error {
	m := c.Materials
	if m.PostSpacingFeet != nil && *m.PostSpacingFeet <= 0 {
		return fmt.Errorf("post_spacing_feet must be positive, got %f", *m.PostSpacingFeet)
	}
	if m.PicketWidthInches != nil && *m.PicketWidthInches <= 0 {
		return fmt.Errorf("picket_width_inches must be positive, got %f", *m.PicketWidthInches)
	}
	if m.PicketSpacingInches != nil && *m.PicketSpacingInches < 0 {
		return fmt.Errorf("picket_spacing_inches must be non-negative, got %f", *m.PicketSpacingInches)
	}
	if m.RailsPerSection != nil && *m.RailsPerSection < 0 {
		return fmt.Errorf("rails_per_section must be non-negative, got %d", *m.RailsPerSection)
	}

	d := c.Drafting
	if d.AngleTolerance != nil && *d.AngleTolerance < 0 {
		return fmt.Errorf("angle_tolerance must be non-negative, got %f", *d.AngleTolerance)
	}
	if d.SnapIncrement != nil && *d.SnapIncrement <= 0 {
		return fmt.Errorf("snap_increment must be positive, got %f", *d.SnapIncrement)
	}
	if d.GridSize != nil && *d.GridSize < 0 {
		return fmt.Errorf("grid_size must be non-negative, got %f", *d.GridSize)
	}
	if d.WatchDebounce != nil && *d.WatchDebounce != "" {
		if _, err := time.ParseDuration(*d.WatchDebounce); err != nil {
			return fmt.Errorf("invalid watch_debounce '%s': %w", *d.WatchDebounce, err)
		}
	}

	return nil
}

// MaterialParams returns the material spacing with defaults filled in
func (c *Config) MaterialParams() fence.MaterialParams {
	params := fence.DefaultMaterialParams()
	m := c.Materials
	if m.PostSpacingFeet != nil {
		params.PostSpacingFeet = *m.PostSpacingFeet
	}
	if m.PicketWidthInches != nil {
		params.PicketWidthInches = *m.PicketWidthInches
	}
	if m.PicketSpacingInches != nil {
		params.PicketSpacingInches = *m.PicketSpacingInches
	}
	if m.RailsPerSection != nil {
		params.RailsPerSection = *m.RailsPerSection
	}
	return params
}

// GetAngleTolerance returns the angle classification tolerance in degrees
func (c *Config) GetAngleTolerance() float64 {
	if c.Drafting.AngleTolerance == nil {
		return geometry.DefaultAngleTolerance
	}
	return *c.Drafting.AngleTolerance
}

// GetSnapIncrement returns the angle snapping increment in degrees
func (c *Config) GetSnapIncrement() float64 {
	if c.Drafting.SnapIncrement == nil {
		return geometry.DefaultSnapIncrement
	}
	return *c.Drafting.SnapIncrement
}

// GetGridSize returns the point snapping grid in meters. Zero disables
// grid snapping.
func (c *Config) GetGridSize() float64 {
	if c.Drafting.GridSize == nil {
		return 0
	}
	return *c.Drafting.GridSize
}

// GetWatchDebounce returns how long the watcher waits after the last write
func (c *Config) GetWatchDebounce() time.Duration {
	if c.Drafting.WatchDebounce == nil || *c.Drafting.WatchDebounce == "" {
		return 300 * time.Millisecond
	}
	d, err := time.ParseDuration(*c.Drafting.WatchDebounce)
	if err != nil {
		return 300 * time.Millisecond
	}
	return d
}
