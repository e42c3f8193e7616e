// Package lang resolves abstract message keys into styled text for a user's
// locale.
//
// Item builders and menus only ever hold Translation values. The text is
// produced late, per user, by a Localizer, so the same item definition can be
// shown to players using different languages.
package lang

import (
	"maps"

	"golang.org/x/text/language"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/text"
)

// Translation is an immutable reference to a message: a key plus template
// arguments. Methods that change it return a copy, so a Translation can be
// shared between builders and their clones.
type Translation struct {
	key     string
	literal bool
	args    map[string]any
	count   any
}

// Key creates a translation for a message id.
func Key(key string) Translation {
	return Translation{key: key}
}

// Literal creates a translation that renders s as-is, still honouring legacy
// formatting codes.
func Literal(s string) Translation {
	return Translation{key: s, literal: true}
}

// With returns a copy carrying an extra template argument.
func (t Translation) With(name string, value any) Translation {
	args := make(map[string]any, len(t.args)+1)
	maps.Copy(args, t.args)
	args[name] = value
	t.args = args
	return t
}

// Count returns a copy that selects plural forms using n.
func (t Translation) Count(n any) Translation {
	t.count = n
	return t
}

// ID returns the message id, or the literal text for literal translations.
func (t Translation) ID() string {
	return t.key
}

func (t Translation) IsLiteral() bool {
	return t.literal
}

// IsZero reports whether t refers to nothing.
func (t Translation) IsZero() bool {
	return t.key == "" && !t.literal
}

// Args returns a copy of the template arguments.
func (t Translation) Args() map[string]any {
	if len(t.args) == 0 {
		return nil
	}
	return maps.Clone(t.args)
}

// PluralCount returns the value passed to Count, or nil.
func (t Translation) PluralCount() any {
	return t.count
}

// Localizer turns a translation into text for a locale.
type Localizer interface {
	Translate(tag language.Tag, t Translation) text.Component
}

// LocalizerFunc adapts a function to the Localizer interface.
type LocalizerFunc func(tag language.Tag, t Translation) text.Component

func (f LocalizerFunc) Translate(tag language.Tag, t Translation) text.Component {
	return f(tag, t)
}

// Identity is a Localizer that renders message ids verbatim. Useful for tests
// and for hosts that translate on the client.
var Identity Localizer = LocalizerFunc(func(_ language.Tag, t Translation) text.Component {
	if t.IsZero() {
		return text.Empty()
	}
	return text.ParseLegacy(t.ID())
})
