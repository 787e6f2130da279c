package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a single column for TableGrid.
//
// Width is the visual width of the column content (excluding separators).
// Align controls how cell text is aligned within the column.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

// TableGrid renders a header, a rule and the data rows, highlighting
// activeRow (pass -1 for none). When maxRows is positive only that many rows
// are drawn, scrolled so the active row stays visible.
//
// The returned lines have a visual width equal to tableWidth.
func TableGrid(columns []TableColumn, rows [][]string, tableWidth, activeRow, maxRows int) string {
	if tableWidth <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", tableWidth)
	}

	border := lipgloss.RoundedBorder()
	cols := fitGridColumns(columns, border.Left, tableWidth)

	out := []string{
		renderGridRow(cols, headerCells(cols), border.Left, tableWidth, true, false),
		renderGridRule(cols, border.Middle, border.Top, tableWidth),
	}

	start, end := gridWindow(len(rows), activeRow, maxRows)
	for i := start; i < end; i++ {
		out = append(out, renderGridRow(cols, rows[i], border.Left, tableWidth, false, i == activeRow))
	}
	return strings.Join(out, "\n")
}

// gridWindow returns the [start, end) range of rows to draw.
func gridWindow(n, active, maxRows int) (int, int) {
	if maxRows <= 0 || n <= maxRows {
		return 0, n
	}
	start := 0
	if active >= maxRows {
		start = active - maxRows + 1
	}
	return start, min(start+maxRows, n)
}

func headerCells(columns []TableColumn) []string {
	hdr := make([]string, len(columns))
	for i, c := range columns {
		hdr[i] = c.Header
	}
	return hdr
}

// fitGridColumns stretches or shrinks the last column so the row fills
// tableWidth exactly.
func fitGridColumns(columns []TableColumn, sep string, tableWidth int) []TableColumn {
	fitted := make([]TableColumn, len(columns))
	copy(fitted, columns)

	sepW := max(lipgloss.Width(sep), 1)
	contentWidth := max(tableWidth, len(fitted))

	sum := 0
	for i := range fitted {
		fitted[i].Width = max(fitted[i].Width, 1)
		sum += fitted[i].Width
	}
	expected := sum + (len(fitted)-1)*sepW
	last := &fitted[len(fitted)-1]
	last.Width = max(last.Width+contentWidth-expected, 1)
	return fitted
}

func renderGridRow(columns []TableColumn, cells []string, sep string, tableWidth int, header, active bool) string {
	sepStyle := gridLineStyle
	if active {
		sepStyle = gridActiveSepStyle
	}
	sepStyled := sepStyle.Inline(true).Render(sep)

	var b strings.Builder
	for i, col := range columns {
		if i > 0 {
			b.WriteString(sepStyled)
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}

		rendered := renderGridCell(text, col.Width, col.Align)
		switch {
		case header:
			rendered = gridHeaderStyle.Inline(true).Render(rendered)
		case active:
			rendered = gridActiveRowStyle.Inline(true).Render(rendered)
		default:
			rendered = valueStyle.Inline(true).Render(rendered)
		}
		b.WriteString(rendered)
	}

	return padRight(b.String(), tableWidth)
}

func renderGridRule(columns []TableColumn, cross, horiz string, tableWidth int) string {
	var b strings.Builder
	for i, col := range columns {
		b.WriteString(strings.Repeat(horiz, max(col.Width, 1)))
		if i < len(columns)-1 {
			b.WriteString(cross)
		}
	}
	return gridLineStyle.Inline(true).Render(padRight(b.String(), tableWidth))
}

func renderGridCell(text string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}

	clamped := ClampTextWidth(text, width)
	pad := width - lipgloss.Width(clamped)
	if pad <= 0 {
		return clamped
	}

	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
