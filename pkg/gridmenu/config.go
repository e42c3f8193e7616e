package gridmenu

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/constants"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/fault"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/item"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/layout"
)

// Config is the file based configuration of a Manager.
//
//	[logging]
//	path = "logs/gridmenu.log"
//	level = "debug"
//
//	[locale]
//	default = "en"
//	messages = "lang"
//	cache_size = 8
//
//	[menus]
//	separator = "gray_stained_glass_pane"
//	confirmation_layout = "outline"
//	pageable_layout = "bottom_row"
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Locale  LocaleConfig  `toml:"locale"`
	Menus   MenusConfig   `toml:"menus"`
}

type LoggingConfig struct {
	Path  string `toml:"path"`  // Log file, in addition to stderr
	Level string `toml:"level"` // debug, info, warn or error
}

type LocaleConfig struct {
	Default   string `toml:"default"`    // Fallback language tag
	Messages  string `toml:"messages"`   // Directory of extra *.toml message files
	CacheSize int    `toml:"cache_size"` // Per-language localizers kept in memory
}

type MenusConfig struct {
	Separator          string `toml:"separator"`           // Material of decorative fill items
	ConfirmationLayout string `toml:"confirmation_layout"` // Fill pattern of confirmation menus
	PageableLayout     string `toml:"pageable_layout"`     // Fill pattern of pageable menus, empty for none
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Locale: LocaleConfig{
			Default:   "en",
			CacheSize: 8,
		},
		Menus: MenusConfig{
			Separator:          string(item.GrayStainedGlassPane),
			ConfirmationLayout: constants.LayoutOutline,
			PageableLayout:     constants.LayoutBottomRow,
		},
	}
}

// ParseConfig decodes TOML on top of the defaults. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fault.New("parse_config", fault.ErrIllegalArgument, "%w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, fault.New("parse_config", fault.ErrIllegalArgument, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// LoadConfig reads the TOML file at path and applies environment overrides.
// An empty path falls back to GRIDMENU_CONFIG, and to the defaults if that is
// unset too.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(constants.ConfigPathEnvVar)
	}

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if cfg, err = ParseConfig(data); err != nil {
			return Config{}, err
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from GRIDMENU_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(constants.LogPathEnvVar); v != "" {
		c.Logging.Path = v
	}
	if v := os.Getenv(constants.LocaleEnvVar); v != "" {
		c.Locale.Default = v
	}
	if v := os.Getenv(constants.MessagesEnvVar); v != "" {
		c.Locale.Messages = v
	}
}

// Validate checks names and values that would otherwise fail at first use.
func (c Config) Validate() error {
	if _, err := language.Parse(c.Locale.Default); err != nil {
		return fault.New("validate_config", fault.ErrIllegalArgument, "locale.default %q: %w", c.Locale.Default, err)
	}
	if c.Locale.CacheSize <= 0 {
		return fault.New("validate_config", fault.ErrIllegalArgument, "locale.cache_size must be positive, got %d", c.Locale.CacheSize)
	}
	if item.ParseMaterial(c.Menus.Separator).IsAir() {
		return fault.New("validate_config", fault.ErrIllegalArgument, "menus.separator must not be air")
	}
	if _, err := layout.Lookup(c.Menus.ConfirmationLayout); err != nil {
		return fault.New("validate_config", fault.ErrIllegalArgument, "menus.confirmation_layout: %w", err)
	}
	if c.Menus.PageableLayout != "" {
		if _, err := layout.Lookup(c.Menus.PageableLayout); err != nil {
			return fault.New("validate_config", fault.ErrIllegalArgument, "menus.pageable_layout: %w", err)
		}
	}
	return nil
}

func (c Config) fallbackLanguage() language.Tag {
	tag, err := language.Parse(c.Locale.Default)
	if err != nil {
		return language.English
	}
	return tag
}

func (c Config) separatorMaterial() item.Material {
	return item.ParseMaterial(c.Menus.Separator)
}

func (c Config) layoutNamed(name string) layout.Layout {
	l, err := layout.Lookup(name)
	if err != nil {
		return layout.Layout{}
	}
	return l
}
