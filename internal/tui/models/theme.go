// Package models/theme.go - Theme Renderer
//
// Maps the persisted theme enum to the lipgloss style sets used by every
// screen. "system" stays close to the terminal's own palette; "classic" is
// the retro look: silver surfaces, gray desktop, navy title bars. Unknown
// theme values render as "system".

package models

import (
	"github.com/charmbracelet/lipgloss"

	"progman/internal/core"
)

// Styles is the full style set for one theme.
type Styles struct {
	Theme core.Theme

	TopBar  lipgloss.Style
	Desktop lipgloss.Style

	Window        lipgloss.Style
	WindowFocused lipgloss.Style
	TitleBar      lipgloss.Style
	TitleBarFocus lipgloss.Style
	Item          lipgloss.Style
	ItemSelected  lipgloss.Style
	Glyph         lipgloss.Style
	MinimizedTab  lipgloss.Style

	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style

	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
	DialogError lipgloss.Style
	FieldLabel  lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme core.Theme) Styles {
	if theme == core.ThemeClassic {
		return classicStyles()
	}
	return systemStyles()
}

func systemStyles() Styles {
	return Styles{
		Theme: core.ThemeSystem,

		TopBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("211")).
			Bold(true),
		Desktop: lipgloss.NewStyle(),

		Window: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		WindowFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("212")),
		TitleBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		TitleBarFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		Item: lipgloss.NewStyle(),
		ItemSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Reverse(true),
		Glyph: lipgloss.NewStyle().
			Foreground(lipgloss.Color("79")),
		MinimizedTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Reverse(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("79")),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("211")).
			Bold(true),
		DialogError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		FieldLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// classicStyles is the Win 3.x-ish palette: silver chrome, navy highlights.
func classicStyles() Styles {
	var (
		silver = lipgloss.Color("#C0C0C0")
		gray   = lipgloss.Color("#808080")
		navy   = lipgloss.Color("#000080")
		black  = lipgloss.Color("#000000")
		white  = lipgloss.Color("#FFFFFF")
	)

	return Styles{
		Theme: core.ThemeClassic,

		TopBar: lipgloss.NewStyle().
			Background(silver).
			Foreground(black).
			Bold(true),
		Desktop: lipgloss.NewStyle().
			Background(gray),

		Window: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(black).
			BorderBackground(silver).
			Background(silver).
			Foreground(black),
		WindowFocused: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(navy).
			BorderBackground(silver).
			Background(silver).
			Foreground(black),
		TitleBar: lipgloss.NewStyle().
			Background(silver).
			Foreground(black),
		TitleBarFocus: lipgloss.NewStyle().
			Background(navy).
			Foreground(white).
			Bold(true),
		Item: lipgloss.NewStyle().
			Background(silver).
			Foreground(black),
		ItemSelected: lipgloss.NewStyle().
			Background(navy).
			Foreground(white),
		Glyph: lipgloss.NewStyle().
			Background(silver).
			Foreground(navy).
			Bold(true),
		MinimizedTab: lipgloss.NewStyle().
			Background(silver).
			Foreground(black),

		StatusBar: lipgloss.NewStyle().
			Background(silver).
			Foreground(black),
		StatusError: lipgloss.NewStyle().
			Background(silver).
			Foreground(lipgloss.Color("#800000")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Background(silver).
			Foreground(gray),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(black).
			BorderBackground(silver).
			Background(silver).
			Foreground(black).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Background(navy).
			Foreground(white).
			Bold(true),
		DialogError: lipgloss.NewStyle().
			Background(silver).
			Foreground(lipgloss.Color("#800000")),
		FieldLabel: lipgloss.NewStyle().
			Background(silver).
			Foreground(navy),
	}
}
