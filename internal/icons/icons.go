// Package icons selects the glyph set used across the UI.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs for one style.
type Icons struct {
	Trash    string
	Close    string
	Playlist string
	Warning  string
	Cursor   string
}

var (
	nerdIcons = Icons{
		Trash:    "", // nf-fa-trash
		Close:    "", // nf-fa-times
		Playlist: "󰲸 ",     // nf-md-playlist_music
		Warning:  "", // nf-fa-warning
		Cursor:   "", // nf-fa-chevron_right
	}

	unicodeIcons = Icons{
		Trash:    "🗑",
		Close:    "✕",
		Playlist: "📋 ",
		Warning:  "⚠",
		Cursor:   "›",
	}

	noneIcons = Icons{
		Trash:    "",
		Close:    "x",
		Playlist: "",
		Warning:  "!",
		Cursor:   ">",
	}

	current = noneIcons
)

// Init selects the icon set. Call this once at startup with the config value.
// Unknown values fall back to plain ASCII.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Trash returns the delete glyph. Empty for the "none" style.
func Trash() string { return current.Trash }

// Close returns the dismiss glyph.
func Close() string { return current.Close }

// Warning returns the warning glyph.
func Warning() string { return current.Warning }

// Cursor returns the list cursor glyph.
func Cursor() string { return current.Cursor }

// FormatPlaylist prefixes a playlist name with its icon.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}

// WithIcon joins an icon and a label, skipping the icon when empty.
func WithIcon(icon, label string) string {
	if icon == "" {
		return label
	}
	return icon + " " + label
}
