package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
 ██████╗ ███████╗██╗███╗   ██╗████████╗██╗   ██╗██╗
██╔═══██╗██╔════╝██║████╗  ██║╚══██╔══╝██║   ██║██║
██║   ██║███████╗██║██╔██╗ ██║   ██║   ██║   ██║██║
██║   ██║╚════██║██║██║╚██╗██║   ██║   ██║   ██║██║
╚██████╔╝███████║██║██║ ╚████║   ██║   ╚██████╔╝██║
 ╚═════╝ ╚══════╝╚═╝╚═╝  ╚═══╝   ╚═╝    ╚═════╝ ╚═╝`

const bannerSubtitle = "IP intelligence from Censys, Shodan and VirusTotal"

// RenderBanner returns the styled ASCII banner with its subtitle centered
// underneath.
func RenderBanner() string {
	lines := strings.Split(strings.Trim(bannerArt, "\n"), "\n")

	blockWidth := lipgloss.Width(bannerSubtitle)
	for _, line := range lines {
		blockWidth = max(blockWidth, lipgloss.Width(line))
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(BannerStyle.Render(line))
		b.WriteString("\n")
	}

	subtitle := SubtitleStyle.
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(bannerSubtitle)
	underline := lipgloss.NewStyle().
		Foreground(ColorBorder).
		Width(blockWidth).
		Align(lipgloss.Center).
		Render(strings.Repeat("─", lipgloss.Width(bannerSubtitle)))

	return b.String() + "\n" + subtitle + "\n" + underline
}
