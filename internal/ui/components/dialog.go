package components

import "strings"

// MessageBox renders a titled pane with a message and an optional hint
// line, used for screens that only explain why there is nothing to show.
func MessageBox(title, message, hint string, width int) string {
	body := valueStyle.Render(SanitizeText(message))
	if hint != "" {
		body += "\n\n" + mutedStyle.Render(hint)
	}
	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = CenterLine(lines[i], PaneContentWidth(width))
	}
	return Pane(title, "\n"+strings.Join(lines, "\n")+"\n", width, 0, true)
}
