package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the bottom hint bar, wrapping hints onto extra rows
// when they do not fit width.
func StatusBar(hints []string, width int) string {
	segments := make([]string, 0, len(hints))
	for _, h := range hints {
		segments = append(segments, segmentStyle.Render(h))
	}

	rows := wrapSegments(segments, width)
	if len(rows) == 0 {
		return ""
	}
	block := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if width <= 0 {
		return block
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(block)
}

// Hint formats a single keybind hint like "scroll ↑/↓".
func Hint(key, desc string) string {
	return hintDescStyle.Render(desc+" ") + keyCapStyle.Render(key)
}

// BindingHint formats the help text of a key binding.
func BindingHint(b key.Binding) string {
	h := b.Help()
	return Hint(h.Key, h.Desc)
}

func wrapSegments(segments []string, width int) []string {
	if len(segments) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{lipgloss.JoinHorizontal(lipgloss.Top, segments...)}
	}
	rows := make([]string, 0, 2)
	var current []string
	currentWidth := 0
	for _, seg := range segments {
		segWidth := lipgloss.Width(seg)
		if currentWidth > 0 && currentWidth+segWidth > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = []string{seg}
			currentWidth = segWidth
			continue
		}
		current = append(current, seg)
		currentWidth += segWidth
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return rows
}
