package ui

import (
	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/handlers"
	"github.com/gravitrone/osintui/internal/ui/components"
)

var resultColumns = []components.TableColumn{
	{Header: "Provider", Width: 14},
	{Header: "Status", Width: 16},
	{Header: "Open", Width: 8},
}

// resultStatus is the label shown for p on the search result screen.
func resultStatus(st *app.State, p app.Provider) string {
	if !st.Enabled(p) {
		return "Not configured"
	}
	switch st.Status(p) {
	case app.StatusFound:
		return "Found"
	case app.StatusNotFound:
		return "Not found"
	}
	if st.Loading() {
		return "Loading"
	}
	return "Not queried"
}

func renderSearchResult(st *app.State, keys handlers.KeyBindings, width int) string {
	paneWidth := min(width, 72)
	contentWidth := components.PaneContentWidth(paneWidth)

	rows := make([][]string, 0, len(app.Providers))
	for _, p := range app.Providers {
		rows = append(rows, []string{p.Title(), resultStatus(st, p), keys.ProviderBinding(p).Help().Key})
	}

	query := st.LastQuery
	if query == "" {
		query = components.SanitizeOneLine(st.Input.String())
	}
	header := components.Table([]components.TableRow{{Label: "Query", Value: query}}, contentWidth)
	if st.InputError {
		header += "\n" + ErrorStyle.Render("Not a valid IP address; providers may reject it.")
	}

	content := header + "\n\n" + components.TableGrid(resultColumns, rows, contentWidth, -1, 0)
	return centerBlockUniform(components.Pane("Results", content, paneWidth, 0, true), width)
}
