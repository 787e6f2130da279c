package components

import "strings"

// Menu renders a vertical list with the selected item marked. The marker is
// highlighted only while the menu has focus.
func Menu(items []string, selected int, focused bool, width int) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		text := ClampTextWidth(item, max(width-2, 0))
		switch {
		case i == selected && focused:
			lines = append(lines, menuFocusedStyle.Render(padRight("› "+text, width)))
		case i == selected:
			lines = append(lines, menuSelectedStyle.Render("› "+text))
		default:
			lines = append(lines, menuItemStyle.Render("  "+text))
		}
	}
	return strings.Join(lines, "\n")
}
