package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/fencemeasure/pkg/fence"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, fence.DefaultMaterialParams(), cfg.MaterialParams())
	assert.Equal(t, 5.0, cfg.GetAngleTolerance())
	assert.Equal(t, 45.0, cfg.GetSnapIncrement())
	assert.Zero(t, cfg.GetGridSize())
	assert.Equal(t, 300*time.Millisecond, cfg.GetWatchDebounce())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "fencemeasure.toml", `
[materials]
post_spacing_feet = 6.0
rails_per_section = 2

[drafting]
angle_tolerance = 2.5
grid_size = 0.05
watch_debounce = "1s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	params := cfg.MaterialParams()
	assert.Equal(t, 6.0, params.PostSpacingFeet)
	assert.Equal(t, 2, params.RailsPerSection)
	assert.Equal(t, 6.0, params.PicketWidthInches, "unset fields keep defaults")
	assert.Equal(t, 0.5, params.PicketSpacingInches)

	assert.Equal(t, 2.5, cfg.GetAngleTolerance())
	assert.Equal(t, 45.0, cfg.GetSnapIncrement())
	assert.Equal(t, 0.05, cfg.GetGridSize())
	assert.Equal(t, time.Second, cfg.GetWatchDebounce())
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		errPart string
	}{
		{"wrong extension", "config.json", `{}`, ".toml extension"},
		{"malformed", "bad.toml", "[materials\npost_spacing_feet = ", "failed to parse"},
		{"unknown key", "typo.toml", "[materials]\npost_spacing = 6.0\n", "unknown config keys: materials.post_spacing"},
		{"non-positive spacing", "zero.toml", "[materials]\npost_spacing_feet = 0.0\n", "post_spacing_feet must be positive"},
		{"negative rails", "rails.toml", "[materials]\nrails_per_section = -1\n", "rails_per_section"},
		{"bad duration", "dur.toml", "[drafting]\nwatch_debounce = \"soon\"\n", "invalid watch_debounce"},
		{"zero snap", "snap.toml", "[drafting]\nsnap_increment = 0.0\n", "snap_increment must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	t.Run("defaults without flag or env", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		cfg, err := Resolve("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("env path", func(t *testing.T) {
		path := writeConfig(t, "env.toml", "[drafting]\nsnap_increment = 15.0\n")
		t.Setenv(EnvConfigPath, path)
		cfg, err := Resolve("")
		require.NoError(t, err)
		assert.Equal(t, 15.0, cfg.GetSnapIncrement())
	})

	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigPath, writeConfig(t, "env.toml", "[drafting]\nsnap_increment = 15.0\n"))
		flagPath := writeConfig(t, "flag.toml", "[drafting]\nsnap_increment = 90.0\n")
		cfg, err := Resolve(flagPath)
		require.NoError(t, err)
		assert.Equal(t, 90.0, cfg.GetSnapIncrement())
	})
}
