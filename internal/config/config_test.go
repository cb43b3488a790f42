package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUserConfigSeedsDefault(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 38472, cfg.App.Port)
	assert.Equal(t, 24, cfg.Cache.TTLHours)
	assert.Equal(t, []int{6, 12, 24, 48}, cfg.UI.PageSizes)

	// second run leaves the user's file alone
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 9999\n"), 0o644))
	again, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	cfg, err = Load(again)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.App.Port)
}

func TestNormalizeFillsDefaults(t *testing.T) {
	var cfg Config
	cfg.App.Port = 38472

	out, vr := NormalizeAndValidate(cfg)
	assert.True(t, vr.OK(), "errors: %v", vr.Errors)
	assert.Equal(t, 24, out.Cache.TTLHours)
	assert.Equal(t, 300, out.UI.DebounceMS)
	assert.Equal(t, 100, out.UI.SettleMS)
	assert.Equal(t, 200, out.UI.TransitionMS)
	assert.Equal(t, []int{6, 12, 24, 48}, out.UI.PageSizes)
	assert.Equal(t, "recruitment_data", out.Export.Prefix)
	assert.Equal(t, 6, out.Refresh.PerMinute)
}

func TestValidateRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.App.Port = 0 }},
		{"unrecognized page size", func(c *Config) { c.UI.PageSizes = []int{7} }},
		{"negative debounce", func(c *Config) { c.UI.DebounceMS = -1 }},
		{"bad theme default", func(c *Config) { c.Theme.SystemDefault = "sepia" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cfg Config
			cfg.App.Port = 38472
			tc.mutate(&cfg)

			_, vr := NormalizeAndValidate(cfg)
			assert.False(t, vr.OK())
		})
	}
}

func TestPageSizesDeduped(t *testing.T) {
	var cfg Config
	cfg.App.Port = 38472
	cfg.UI.PageSizes = []int{12, 12, 6}

	out, vr := NormalizeAndValidate(cfg)
	require.True(t, vr.OK())
	assert.Equal(t, []int{12, 6}, out.UI.PageSizes)
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	var cfg Config
	cfg.App.Port = 38472
	require.NoError(t, SaveAtomic(path, cfg))

	cfg.App.Port = 38473
	require.NoError(t, SaveAtomic(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 38473, loaded.App.Port)

	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err, "previous config kept as .bak")
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	var cfg Config // port 0
	err := SaveAtomic(filepath.Join(t.TempDir(), "config.yml"), cfg)
	assert.Error(t, err)
}
