package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/handlers"
	"github.com/gravitrone/osintui/internal/ui/components"
)

var integrationColumns = []components.TableColumn{
	{Header: "Provider", Width: 14},
	{Header: "Status", Width: 16},
	{Header: "Shortcut", Width: 10, Align: lipgloss.Center},
}

func renderHome(st *app.State, current app.Route, keys handlers.KeyBindings, width, height int) string {
	paneWidth := min(width, 72)

	rows := make([][]string, 0, len(app.Providers))
	for _, p := range app.Providers {
		status := "Not configured"
		if st.Enabled(p) {
			status = "Configured"
		}
		rows = append(rows, []string{p.Title(), status, keys.ProviderBinding(p).Help().Key})
	}
	table := components.TableGrid(integrationColumns, rows, components.PaneContentWidth(paneWidth), -1, 0)

	tips := []string{
		"",
		"Type " + bindingKey(keys.Search) + " to search, enter an IPv4 or IPv6 address and press " + bindingKey(keys.Submit) + ".",
		"Defanged input such as 1[.]1[.]1[.]1 is accepted.",
		"Missing keys go in " + MutedStyle.Render("config.toml") + " under [keys].",
	}
	content := table + "\n" + MutedStyle.Render(strings.Join(tips, "\n"))

	body := RenderBanner() + "\n\n" + components.Pane("Integrations", content, paneWidth, 0, current.Active == app.BlockHome)
	lines := strings.Split(centerBlockUniform(body, width), "\n")

	scroll := min(st.HomeScroll, max(len(lines)-height, 0))
	return strings.Join(lines[scroll:], "\n")
}

func bindingKey(b key.Binding) string {
	return AccentStyle.Render(b.Help().Key)
}
