// Package styles provides the lipgloss styles used for terminal list output.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary: lipgloss.Color("#7aa2f7"),
		Muted:   lipgloss.Color("#565f89"),
		Warning: lipgloss.Color("#e0af68"),
		Error:   lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary: lipgloss.Color("#83a598"),
		Muted:   lipgloss.Color("#665c54"),
		Warning: lipgloss.Color("#fabd2f"),
		Error:   lipgloss.Color("#fb4934"),
	},
	"plain": {},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

var (
	// PositionStyle renders the "<n>." prefix of a list line.
	PositionStyle lipgloss.Style
	// NoticeStyle renders advisory messages such as the home directory fallback.
	NoticeStyle lipgloss.Style
	// ErrorStyle renders the final error message.
	ErrorStyle lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme rebuilds the exported styles from p.
func SetTheme(p Palette) {
	PositionStyle = foreground(p.Primary).Bold(true)
	NoticeStyle = foreground(p.Warning)
	ErrorStyle = foreground(p.Error)
}

func foreground(c lipgloss.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c != "" {
		s = s.Foreground(c)
	}
	return s
}
