// Package text provides the styled, composable text tree used for menu titles,
// item names and item descriptions.
//
// A Component is a value: appending or restyling returns a new Component and
// never mutates the receiver, so trees can be shared freely between builders.
package text

import (
	"encoding/json"
	"strings"
)

// Style holds the formatting of one text node. Nil booleans and an empty
// colour are unset and inherit from the parent node.
type Style struct {
	Color         string
	Bold          *bool
	Italic        *bool
	Underlined    *bool
	Strikethrough *bool
	Obfuscated    *bool
}

// Bool returns a pointer to v, for filling Style fields.
func Bool(v bool) *bool {
	return &v
}

// IsZero reports whether no formatting is set.
func (s Style) IsZero() bool {
	return s.Color == "" && s.Bold == nil && s.Italic == nil && s.Underlined == nil &&
		s.Strikethrough == nil && s.Obfuscated == nil
}

// Inherit fills every unset field of s from parent.
func (s Style) Inherit(parent Style) Style {
	if s.Color == "" {
		s.Color = parent.Color
	}
	if s.Bold == nil {
		s.Bold = parent.Bold
	}
	if s.Italic == nil {
		s.Italic = parent.Italic
	}
	if s.Underlined == nil {
		s.Underlined = parent.Underlined
	}
	if s.Strikethrough == nil {
		s.Strikethrough = parent.Strikethrough
	}
	if s.Obfuscated == nil {
		s.Obfuscated = parent.Obfuscated
	}
	return s
}

// Component is one node of a text tree.
type Component struct {
	Text     string
	Style    Style
	Children []Component
}

// Literal creates an unstyled text node.
func Literal(s string) Component {
	return Component{Text: s}
}

// Styled creates a text node with the given style.
func Styled(s string, style Style) Component {
	return Component{Text: s, Style: style}
}

// Empty creates a node with no text, used as a container for children.
func Empty() Component {
	return Component{}
}

// Append returns a copy of c with children added after the existing ones.
func (c Component) Append(children ...Component) Component {
	merged := make([]Component, 0, len(c.Children)+len(children))
	merged = append(merged, c.Children...)
	merged = append(merged, children...)
	c.Children = merged
	return c
}

// WithStyle returns a copy of c using style.
func (c Component) WithStyle(style Style) Component {
	c.Style = style
	return c
}

// Plain concatenates the text of the whole tree, dropping formatting.
func (c Component) Plain() string {
	var sb strings.Builder
	c.writePlain(&sb)
	return sb.String()
}

func (c Component) writePlain(sb *strings.Builder) {
	sb.WriteString(c.Text)
	for _, child := range c.Children {
		child.writePlain(sb)
	}
}

// NonItalic wraps c so that the client does not apply its default italic
// style to item names and lore.
func NonItalic(c Component) Component {
	return Component{Style: Style{Italic: Bool(false)}, Children: []Component{c}}
}

// SplitLines breaks a tree at every line break. Each returned line carries
// the effective style of the segments it contains. A tree with N line breaks
// always yields N+1 lines; a trailing break yields a final empty line.
func SplitLines(c Component) []Component {
	var (
		lines []Component
		cur   *Component
	)

	flush := func() {
		if cur == nil {
			lines = append(lines, Empty())
			return
		}
		lines = append(lines, *cur)
		cur = nil
	}

	var walk func(n Component, inherited Style)
	walk = func(n Component, inherited Style) {
		style := n.Style.Inherit(inherited)

		for i, part := range strings.Split(n.Text, "\n") {
			if i > 0 {
				flush()
			}
			if part == "" {
				continue
			}
			if cur == nil {
				cur = &Component{}
			}
			cur.Children = append(cur.Children, Component{Text: part, Style: style})
		}

		for _, child := range n.Children {
			walk(child, style)
		}
	}

	walk(c, Style{})
	flush()

	return lines
}

type jsonComponent struct {
	Text          string      `json:"text"`
	Color         string      `json:"color,omitempty"`
	Bold          *bool       `json:"bold,omitempty"`
	Italic        *bool       `json:"italic,omitempty"`
	Underlined    *bool       `json:"underlined,omitempty"`
	Strikethrough *bool       `json:"strikethrough,omitempty"`
	Obfuscated    *bool       `json:"obfuscated,omitempty"`
	Extra         []Component `json:"extra,omitempty"`
}

// MarshalJSON encodes the tree in the chat component JSON form hosts store
// in item names and lore.
func (c Component) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonComponent{
		Text:          c.Text,
		Color:         c.Style.Color,
		Bold:          c.Style.Bold,
		Italic:        c.Style.Italic,
		Underlined:    c.Style.Underlined,
		Strikethrough: c.Style.Strikethrough,
		Obfuscated:    c.Style.Obfuscated,
		Extra:         c.Children,
	})
}

// UnmarshalJSON decodes the chat component JSON form.
func (c *Component) UnmarshalJSON(data []byte) error {
	var raw jsonComponent
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = Component{
		Text: raw.Text,
		Style: Style{
			Color:         raw.Color,
			Bold:          raw.Bold,
			Italic:        raw.Italic,
			Underlined:    raw.Underlined,
			Strikethrough: raw.Strikethrough,
			Obfuscated:    raw.Obfuscated,
		},
		Children: raw.Extra,
	}
	return nil
}

// Serialize encodes c as a JSON string. Encoding a Component cannot fail.
func Serialize(c Component) string {
	data, _ := json.Marshal(c)
	return string(data)
}
