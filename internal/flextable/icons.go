package flextable

import "strings"

// menuAnchorGlyph marks a cell that opens a dropdown.
const menuAnchorGlyph = "⋮"

// Icon names follow the Material Design Icons naming used by callers.
var iconGlyphs = map[string]string{
	"account":               "☺",
	"account-alert":         "!",
	"account-alert-outline": "¡",
	"alert":                 "⚠",
	"check":                 "✓",
	"close":                 "✕",
	"content-copy":          "⧉",
	"delete":                "✗",
	"dots-vertical":         menuAnchorGlyph,
	"information":           "ℹ",
	"lock":                  "⊘",
	"lock-open":             "○",
	"pencil":                "✎",
	"play":                  "▶",
	"refresh":               "↻",
	"star":                  "★",
	"star-outline":          "☆",
	"stop":                  "■",
}

// IconGlyph maps an icon name to a single terminal glyph. Unknown names
// fall back to their first letter.
func IconGlyph(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "•"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}
