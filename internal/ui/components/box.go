package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PaneContentWidth returns the inner width of a pane drawn at width,
// excluding border and padding.
func PaneContentWidth(width int) int {
	return max(width-4, 0)
}

// Pane renders content in a rounded box exactly width columns wide with the
// title set into the top border. A focused pane uses the accent border.
// height pads or cuts the content to that many lines when positive.
func Pane(title, content string, width, height int, focused bool) string {
	style, borderColor := paneStyle, palette.Border
	if focused {
		style, borderColor = paneFocusedStyle, palette.Accent
	}
	return titledBox(title, FitHeight(content, height), width, style, paneTitleStyle, borderColor)
}

// ErrorBox renders a red bordered box for errors.
func ErrorBox(title, message string, width int) string {
	header := ""
	if title != "" {
		header = errorTitleStyle.Render(SanitizeOneLine(title)) + "\n\n"
	}
	body := errorBodyStyle.Render(SanitizeText(message))
	if width <= 4 {
		return errorPaneStyle.Render(header + body)
	}
	return errorPaneStyle.Width(width - 2).Render(header + body)
}

func titledBox(title, content string, width int, boxStyle, headerStyle lipgloss.Style, borderColor lipgloss.Color) string {
	if width > 2 {
		boxStyle = boxStyle.Width(width - 2)
	}
	boxed := boxStyle.Render(content)
	if title == "" {
		return boxed
	}

	lines := strings.Split(boxed, "\n")
	lineWidth := lipgloss.Width(lines[0])
	if lineWidth < 4 {
		return boxed
	}

	border := lipgloss.RoundedBorder()
	middleLen := lineWidth - 2
	titleText := fmt.Sprintf(" %s ", SanitizeOneLine(title))
	if lipgloss.Width(titleText) > middleLen-1 {
		titleText = ansi.Truncate(titleText, middleLen-1, "")
	}

	right := max(middleLen-1-lipgloss.Width(titleText), 0)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	lines[0] = borderStyle.Render(border.TopLeft+border.Top) +
		headerStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat(border.Top, right)+border.TopRight)
	return strings.Join(lines, "\n")
}

// FitHeight pads or cuts s to exactly height lines. A height of zero or less
// leaves s alone.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// ClampTextWidth sanitizes text to one line and truncates it to width
// columns with an ellipsis.
func ClampTextWidth(text string, width int) string {
	cleaned := SanitizeOneLine(text)
	if width <= 0 {
		return cleaned
	}
	if lipgloss.Width(cleaned) <= width {
		return cleaned
	}
	return ansi.Truncate(cleaned, width, "…")
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// TableRow is a single row in a key-value table.
type TableRow struct {
	Label string
	Value string
}

// Table renders label/value rows with the labels aligned, fitting width.
func Table(rows []TableRow, width int) string {
	if len(rows) == 0 {
		return ""
	}

	maxLabel := 0
	for _, r := range rows {
		maxLabel = max(maxLabel, lipgloss.Width(SanitizeOneLine(r.Label)))
	}

	labelWidth := maxLabel
	if width > 0 {
		labelWidth = min(labelWidth, max(width/2, 4))
	}
	valueWidth := 0
	if width > 0 {
		valueWidth = max(width-labelWidth-2, 4)
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		label := labelStyle.Render(padRight(ClampTextWidth(r.Label, labelWidth), labelWidth))
		lines = append(lines, label+"  "+valueStyle.Render(ClampTextWidth(r.Value, valueWidth)))
	}
	return strings.Join(lines, "\n")
}

// Muted renders s in the muted color.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// CenterLine centers a single line within width.
func CenterLine(s string, width int) string {
	lineWidth := lipgloss.Width(s)
	if width <= 0 || lineWidth >= width {
		return s
	}
	return strings.Repeat(" ", (width-lineWidth)/2) + s
}
