package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/osintui/internal/config"
	"github.com/gravitrone/osintui/internal/ui/components"
)

// --- Theme Colors ---

var (
	ColorAccent   lipgloss.Color
	ColorBorder   lipgloss.Color
	ColorText     lipgloss.Color
	ColorMuted    lipgloss.Color
	ColorError    lipgloss.Color
	ColorSuccess  lipgloss.Color
	ColorSelected lipgloss.Color
)

// --- Reusable Styles ---

var (
	BannerStyle   lipgloss.Style
	SubtitleStyle lipgloss.Style
	NormalStyle   lipgloss.Style
	MutedStyle    lipgloss.Style
	AccentStyle   lipgloss.Style
	SuccessStyle  lipgloss.Style
	ErrorStyle    lipgloss.Style
	CursorStyle   lipgloss.Style
	SelectedStyle lipgloss.Style
	PromptStyle   lipgloss.Style
)

func init() {
	ApplyTheme(config.DefaultTheme())
}

// ApplyTheme restyles the dashboard from the configured colors.
func ApplyTheme(th config.Theme) {
	ColorAccent = lipgloss.Color(th.Accent)
	ColorBorder = lipgloss.Color(th.Border)
	ColorText = lipgloss.Color(th.Text)
	ColorMuted = lipgloss.Color(th.Muted)
	ColorError = lipgloss.Color(th.Error)
	ColorSuccess = lipgloss.Color(th.Success)
	ColorSelected = lipgloss.Color(th.Selected)

	components.ApplyPalette(components.Palette{
		Accent:   ColorAccent,
		Border:   ColorBorder,
		Text:     ColorText,
		Muted:    ColorMuted,
		Error:    ColorError,
		Success:  ColorSuccess,
		Selected: ColorSelected,
	})

	BannerStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	AccentStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	CursorStyle = lipgloss.NewStyle().
		Reverse(true)

	SelectedStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorSelected).
		Bold(true)

	PromptStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)
}
