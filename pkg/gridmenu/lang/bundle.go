package lang

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/internal"
	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/text"
)

//go:embed messages/*.toml
var builtinMessages embed.FS

// BundleOptions configures a Bundle.
type BundleOptions struct {
	Fallback  language.Tag // Language used when a message is missing for the user's locale (default: English)
	Marker    rune         // Legacy formatting marker inside messages (default: '§')
	CacheSize int          // Number of per-locale localizers kept (default: 8)
	Logger    *slog.Logger // Defaults to the internal gridmenu logger
}

// Bundle is a Localizer backed by go-i18n message files in TOML format.
// The built-in gridmenu messages are always loaded.
type Bundle struct {
	mu         sync.Mutex
	bundle     *i18n.Bundle
	fallback   language.Tag
	marker     rune
	ids        map[string]struct{}
	warned     map[string]struct{}
	localizers *internal.Cache[language.Tag, *i18n.Localizer]
	logger     *slog.Logger
}

// NewBundle creates a bundle and loads the built-in messages.
func NewBundle(options BundleOptions) (*Bundle, error) {
	if options.Fallback == language.Und {
		options.Fallback = language.English
	}
	if options.Marker == 0 {
		options.Marker = text.LegacyMarker
	}
	if options.Logger == nil {
		options.Logger = internal.GetInternalLogger()
	}

	b := &Bundle{
		bundle:     i18n.NewBundle(options.Fallback),
		fallback:   options.Fallback,
		marker:     options.Marker,
		ids:        make(map[string]struct{}),
		warned:     make(map[string]struct{}),
		localizers: internal.NewCacheWithSize[language.Tag, *i18n.Localizer](options.CacheSize),
		logger:     options.Logger,
	}
	b.bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if err := b.LoadFS(builtinMessages, "messages"); err != nil {
		return nil, fmt.Errorf("load built-in messages: %w", err)
	}
	return b, nil
}

// LoadFile loads one message file. The language is taken from the file name,
// e.g. "active.fr.toml".
func (b *Bundle) LoadFile(filename string) error {
	mf, err := b.bundle.LoadMessageFile(filename)
	if err != nil {
		return fmt.Errorf("load message file %s: %w", filename, err)
	}
	b.record(mf.Tag, mf.Messages)
	return nil
}

// LoadDir loads every *.toml file in dir.
func (b *Bundle) LoadDir(dir string) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return err
	}
	sort.Strings(matches)
	for _, match := range matches {
		if err := b.LoadFile(match); err != nil {
			return err
		}
	}
	return nil
}

// LoadFS loads every *.toml file in dir of fsys.
func (b *Bundle) LoadFS(fsys fs.FS, dir string) error {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.toml"))
	if err != nil {
		return err
	}
	for _, match := range matches {
		mf, err := b.bundle.LoadMessageFileFS(fsys, match)
		if err != nil {
			return fmt.Errorf("load message file %s: %w", match, err)
		}
		b.record(mf.Tag, mf.Messages)
	}
	return nil
}

// AddMessages registers plain id -> text messages for a language.
func (b *Bundle) AddMessages(tag language.Tag, messages map[string]string) error {
	list := make([]*i18n.Message, 0, len(messages))
	for id, other := range messages {
		list = append(list, &i18n.Message{ID: id, Other: other})
	}
	if err := b.bundle.AddMessages(tag, list...); err != nil {
		return err
	}
	b.record(tag, list)
	return nil
}

// Languages lists the languages with at least one message.
func (b *Bundle) Languages() []language.Tag {
	return b.bundle.LanguageTags()
}

func (b *Bundle) record(tag language.Tag, messages []*i18n.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, m := range messages {
		b.ids[m.ID] = struct{}{}
	}
	// New messages may change what a cached localizer resolves to.
	b.localizers.Purge()
	b.logger.Debug("Loaded messages", "language", tag.String(), "count", len(messages))
}

// Translate renders t for tag. Missing messages render as their id and are
// logged once.
func (b *Bundle) Translate(tag language.Tag, t Translation) text.Component {
	if t.IsZero() {
		return text.Empty()
	}
	if t.IsLiteral() {
		return text.ParseLegacyWith(t.ID(), b.marker)
	}

	localized, err := b.localizer(tag).Localize(&i18n.LocalizeConfig{
		MessageID:    t.ID(),
		TemplateData: t.Args(),
		PluralCount:  t.PluralCount(),
	})
	if err != nil {
		b.reportMissing(tag, t.ID(), err)
		return text.Literal(t.ID())
	}

	return text.ParseLegacyWith(localized, b.marker)
}

func (b *Bundle) localizer(tag language.Tag) *i18n.Localizer {
	b.mu.Lock()
	defer b.mu.Unlock()

	if loc, ok := b.localizers.Get(tag); ok {
		return loc
	}
	loc := i18n.NewLocalizer(b.bundle, tag.String(), b.fallback.String())
	b.localizers.Set(tag, loc)
	return loc
}

func (b *Bundle) reportMissing(tag language.Tag, id string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, seen := b.warned[id]; seen {
		return
	}
	b.warned[id] = struct{}{}

	attrs := []any{"id", id, "language", tag.String()}
	var notFound *i18n.MessageNotFoundErr
	if !errors.As(err, &notFound) {
		attrs = append(attrs, "error", err)
	}
	if suggestion := b.closestID(id); suggestion != "" {
		attrs = append(attrs, "suggestion", suggestion)
	}
	b.logger.Warn("Missing translation", attrs...)
}

// closestID finds the known id nearest to id. Must be called under b.mu.
func (b *Bundle) closestID(id string) string {
	best, bestDistance := "", len(id)/2+1
	for known := range b.ids {
		if d := levenshtein.ComputeDistance(id, known); d < bestDistance || (d == bestDistance && known < best) {
			best, bestDistance = known, d
		}
	}
	return best
}
