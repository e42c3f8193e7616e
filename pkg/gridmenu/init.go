// Package gridmenu provides grid based menus for game servers: chest-like
// views of clickable items, navigation between them, and pageable and
// confirmation variants.
//
// A host creates a single Manager at startup with New, registers its
// Platform implementation, and forwards click, drop and close events to the
// Manager. Application code defines items and menus once and opens them for
// users as needed.
package gridmenu

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/lang"
)

// Options configures a Manager.
type Options struct {
	Config         *Config             // Defaults to LoadConfig("")
	Logger         *slog.Logger        // Defaults to the gridmenu JSON logger
	Localizer      lang.Localizer      // Defaults to a Bundle built from Config.Locale
	OnHandlerError func(*HandlerError) // Called after a handler failure has been logged
}

// New creates the Manager. It is meant to be called once at startup and the
// result passed to whatever needs it.
func New(options Options) (*Manager, error) {
	var cfg Config
	if options.Config != nil {
		cfg = *options.Config
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	} else {
		loaded, err := LoadConfig("")
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cfg.Logging.Path != "" {
		internal.SetLogPath(cfg.Logging.Path)
	}

	logger := options.Logger
	if logger == nil {
		internal.SetRawLogLevel(cfg.Logging.Level)
		logger = internal.GetLogger()
	}

	localizer := options.Localizer
	if localizer == nil {
		bundle, err := lang.NewBundle(lang.BundleOptions{
			Fallback:  cfg.fallbackLanguage(),
			CacheSize: cfg.Locale.CacheSize,
			Logger:    logger,
		})
		if err != nil {
			return nil, fmt.Errorf("create message bundle: %w", err)
		}
		if cfg.Locale.Messages != "" {
			if err := bundle.LoadDir(cfg.Locale.Messages); err != nil {
				return nil, err
			}
		}
		localizer = bundle
	}

	m := newManager(cfg, logger, localizer, options.OnHandlerError)
	m.createDefaultItems()
	return m, nil
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before New to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the gridmenu logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the gridmenu logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
