package text

import "strings"

// LegacyMarker introduces a formatting code in legacy strings ("§cRed").
const LegacyMarker = '§'

var legacyColors = map[rune]string{
	'0': "black",
	'1': "dark_blue",
	'2': "dark_green",
	'3': "dark_aqua",
	'4': "dark_red",
	'5': "dark_purple",
	'6': "gold",
	'7': "gray",
	'8': "dark_gray",
	'9': "blue",
	'a': "green",
	'b': "aqua",
	'c': "red",
	'd': "light_purple",
	'e': "yellow",
	'f': "white",
}

// ParseLegacy converts a string containing legacy formatting codes into a
// tree. A colour code resets any active decoration, matching client
// behaviour. Unknown codes are kept as literal text.
func ParseLegacy(s string) Component {
	return ParseLegacyWith(s, LegacyMarker)
}

// ParseLegacyWith is ParseLegacy with a custom marker, e.g. '&' for message
// files edited by hand.
func ParseLegacyWith(s string, marker rune) Component {
	if !strings.ContainsRune(s, marker) {
		return Literal(s)
	}

	root := Empty()
	var (
		style Style
		sb    strings.Builder
	)

	emit := func() {
		if sb.Len() == 0 {
			return
		}
		root.Children = append(root.Children, Component{Text: sb.String(), Style: style})
		sb.Reset()
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != marker || i+1 >= len(runes) {
			sb.WriteRune(r)
			continue
		}

		code := toLowerASCII(runes[i+1])
		if color, ok := legacyColors[code]; ok {
			emit()
			style = Style{Color: color}
			i++
			continue
		}

		switch code {
		case 'k':
			emit()
			style.Obfuscated = Bool(true)
		case 'l':
			emit()
			style.Bold = Bool(true)
		case 'm':
			emit()
			style.Strikethrough = Bool(true)
		case 'n':
			emit()
			style.Underlined = Bool(true)
		case 'o':
			emit()
			style.Italic = Bool(true)
		case 'r':
			emit()
			style = Style{}
		default:
			sb.WriteRune(r)
			continue
		}
		i++
	}
	emit()

	if len(root.Children) == 1 && root.Children[0].Style.IsZero() {
		return root.Children[0]
	}
	return root
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
