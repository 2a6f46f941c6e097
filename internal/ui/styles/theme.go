// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary lipgloss.Color // focused items, cursor accents

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color
	BgButton lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color // destructive actions, failures
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Dialog buttons
	Button              lipgloss.Style
	ButtonFocused       lipgloss.Style
	ButtonDanger        lipgloss.Style
	ButtonDangerFocused lipgloss.Style
	ButtonDisabled      lipgloss.Style
}

var defaultTheme = Theme{
	Primary: lipgloss.Color("#a78bfa"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),
	BgButton: lipgloss.Color("#262626"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	button := lipgloss.NewStyle().
		Foreground(t.FgBase).
		Background(t.BgButton).
		Padding(0, 1)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),

		Button: button,
		ButtonFocused: button.
			Foreground(t.Primary).
			Bold(true),
		ButtonDanger: button.
			Foreground(t.Error).
			Bold(true),
		ButtonDangerFocused: button.
			Foreground(t.BgButton).
			Background(t.Error).
			Bold(true),
		ButtonDisabled: button.
			Foreground(t.FgSubtle),
	}
}
