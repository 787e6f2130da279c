package components

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors every component draws with.
type Palette struct {
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Selected lipgloss.Color
}

// DefaultPalette matches the stock config theme.
func DefaultPalette() Palette {
	return Palette{
		Accent:   lipgloss.Color("#7f57b4"),
		Border:   lipgloss.Color("#273540"),
		Text:     lipgloss.Color("#d7d9da"),
		Muted:    lipgloss.Color("#9ba0bf"),
		Error:    lipgloss.Color("#e06c75"),
		Success:  lipgloss.Color("#98c379"),
		Selected: lipgloss.Color("#1f2530"),
	}
}

var palette = DefaultPalette()

// ApplyPalette restyles every component. Call it before the program starts.
func ApplyPalette(p Palette) {
	palette = p
	buildStyles()
}

// CurrentPalette returns the active palette.
func CurrentPalette() Palette {
	return palette
}

var (
	paneStyle        lipgloss.Style
	paneFocusedStyle lipgloss.Style
	paneTitleStyle   lipgloss.Style
	errorPaneStyle   lipgloss.Style
	errorTitleStyle  lipgloss.Style
	errorBodyStyle   lipgloss.Style
	labelStyle       lipgloss.Style
	valueStyle       lipgloss.Style
	mutedStyle       lipgloss.Style

	gridLineStyle      lipgloss.Style
	gridHeaderStyle    lipgloss.Style
	gridActiveRowStyle lipgloss.Style
	gridActiveSepStyle lipgloss.Style

	menuItemStyle     lipgloss.Style
	menuSelectedStyle lipgloss.Style
	menuFocusedStyle  lipgloss.Style

	hintDescStyle lipgloss.Style
	keyCapStyle   lipgloss.Style
	segmentStyle  lipgloss.Style
)

func init() {
	buildStyles()
}

func buildStyles() {
	p := palette

	paneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	paneFocusedStyle = paneStyle.BorderForeground(p.Accent)
	paneTitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	errorPaneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Error).
		Padding(1, 2)
	errorTitleStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)
	errorBodyStyle = lipgloss.NewStyle().
		Foreground(p.Text)

	labelStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	valueStyle = lipgloss.NewStyle().
		Foreground(p.Text)
	mutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	gridLineStyle = lipgloss.NewStyle().
		Foreground(p.Border)
	gridHeaderStyle = labelStyle
	gridActiveRowStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Selected).
		Bold(true)
	gridActiveSepStyle = lipgloss.NewStyle().
		Foreground(p.Border).
		Background(p.Selected)

	menuItemStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	menuSelectedStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true)
	menuFocusedStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Accent).
		Bold(true)

	hintDescStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	keyCapStyle = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Border).
		Bold(true).
		Padding(0, 1)
	segmentStyle = lipgloss.NewStyle().
		MarginRight(2)
}
