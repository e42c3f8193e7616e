package gridmenu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[logging]
level = "debug"

[locale]
default = "fr"

[menus]
separator = "black_stained_glass_pane"
pageable_layout = ""
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "fr", cfg.Locale.Default)
	assert.Equal(t, 8, cfg.Locale.CacheSize)
	assert.Equal(t, "black_stained_glass_pane", cfg.Menus.Separator)
	assert.Equal(t, constants.LayoutOutline, cfg.Menus.ConfirmationLayout)
	assert.Empty(t, cfg.Menus.PageableLayout)
	require.NoError(t, cfg.Validate())
}

func TestParseConfigRejectsUnknownKeys(t *testing.T) {
	_, err := ParseConfig([]byte(`
[menus]
seperator = "stone"
`))
	require.Error(t, err)
	assert.True(t, IsIllegalArgument(err))
	assert.Contains(t, err.Error(), "menus.seperator")

	_, err = ParseConfig([]byte(`[menus`))
	assert.True(t, IsIllegalArgument(err))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad locale", func(c *Config) { c.Locale.Default = "not a tag!" }},
		{"zero cache", func(c *Config) { c.Locale.CacheSize = 0 }},
		{"air separator", func(c *Config) { c.Menus.Separator = "air" }},
		{"unknown confirmation layout", func(c *Config) { c.Menus.ConfirmationLayout = "zigzag" }},
		{"unknown pageable layout", func(c *Config) { c.Menus.PageableLayout = "zigzag" }},
	}

	require.NoError(t, DefaultConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.True(t, IsIllegalArgument(cfg.Validate()))
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gridmenu.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[locale]
default = "de"
cache_size = 2
`), 0o644))

	t.Setenv(constants.LogLevelEnvVar, "warn")
	t.Setenv(constants.ConfigPathEnvVar, path)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale.Default)
	assert.Equal(t, 2, cfg.Locale.CacheSize)
	assert.Equal(t, "warn", cfg.Logging.Level)

	t.Setenv(constants.LocaleEnvVar, "es")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Locale.Default)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(constants.ConfigPathEnvVar, "")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
