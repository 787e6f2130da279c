package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/ui/components"
)

const searchPrompt = "› "

func (a App) renderHeader(st *app.State, width int) string {
	searchWidth := max(width*45/100, 30)
	stripWidth := width - searchWidth - 1

	focused := st.Nav.Current().Active == app.BlockInput
	title := "Search"
	if st.InputError {
		title = "Search (not a valid IP)"
	}
	field := components.PaneContentWidth(searchWidth) - lipgloss.Width(searchPrompt)
	search := components.Pane(title, PromptStyle.Render(searchPrompt)+renderInput(st.Input.Runes(), st.Input.Index(), field, focused), searchWidth, 1, focused)

	strip := components.Pane("Providers", a.renderProviderStrip(st), stripWidth, 1, false)
	return lipgloss.JoinHorizontal(lipgloss.Top, search, " ", strip)
}

// inputWindow returns the first rune to draw so the cursor cell at index
// stays inside width columns.
func inputWindow(runes []rune, index, width int) int {
	if width <= 0 {
		return index
	}
	col := 0
	for _, r := range runes[:index] {
		col += max(runewidth.RuneWidth(r), 0)
	}
	cursor := 1
	if index < len(runes) {
		cursor = max(runewidth.RuneWidth(runes[index]), 1)
	}
	start := 0
	for start < index && col+cursor > width {
		col -= max(runewidth.RuneWidth(runes[start]), 0)
		start++
	}
	return start
}

// renderInput draws the visible slice of the search buffer with the cursor
// cell highlighted while the box has focus.
func renderInput(runes []rune, index, width int, focused bool) string {
	start := inputWindow(runes, index, width)

	var b strings.Builder
	used := 0
	for i := start; i <= len(runes); i++ {
		cell := " "
		w := 1
		if i < len(runes) {
			cell = string(runes[i])
			w = max(runewidth.RuneWidth(runes[i]), 0)
		}
		if used+w > width && i != index {
			break
		}
		if i == index && focused {
			b.WriteString(CursorStyle.Render(cell))
		} else if i < len(runes) {
			b.WriteString(NormalStyle.Render(cell))
		}
		used += w
	}
	return b.String()
}

func (a App) renderProviderStrip(st *app.State) string {
	parts := make([]string, 0, len(app.Providers)+1)
	for _, p := range app.Providers {
		parts = append(parts, providerBadge(st, p))
	}
	line := strings.Join(parts, MutedStyle.Render("  │  "))
	if st.Loading() {
		line += "  " + a.spinner.View() + MutedStyle.Render(" loading")
	}
	return line
}

func providerBadge(st *app.State, p app.Provider) string {
	if !st.Enabled(p) {
		return MutedStyle.Render("○ " + p.Title())
	}
	switch st.Status(p) {
	case app.StatusFound:
		return SuccessStyle.Render("● " + p.Title())
	case app.StatusNotFound:
		return ErrorStyle.Render("● " + p.Title())
	}
	return NormalStyle.Render("● " + p.Title())
}
