package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/osintui/internal/api"
	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/ui/components"
)

var (
	censysServiceColumns = []components.TableColumn{
		{Header: "Port", Width: 6, Align: lipgloss.Right},
		{Header: "Service", Width: 14},
		{Header: "Transport", Width: 10},
		{Header: "Extended", Width: 14},
	}
	shodanServiceColumns = []components.TableColumn{
		{Header: "Port", Width: 6, Align: lipgloss.Right},
		{Header: "Transport", Width: 10},
		{Header: "Product", Width: 18},
		{Header: "Version", Width: 10},
	}
)

func tableRows(rows []api.Row) []components.TableRow {
	out := make([]components.TableRow, len(rows))
	for i, r := range rows {
		out[i] = components.TableRow{Label: r.Label, Value: r.Value}
	}
	return out
}

// providerScreen lays out the menu on the left and the route's panes on
// the right.
type providerScreen struct {
	title       string
	menu        app.Menu
	menuIndex   int
	menuFocused bool
	right       string
}

func (p providerScreen) render(width, height int) string {
	menuContent := components.Menu(p.menu.Items, p.menuIndex, p.menuFocused, components.PaneContentWidth(menuWidth))
	menu := components.Pane(p.title, menuContent, menuWidth, max(height-2, 1), p.menuFocused)
	return lipgloss.JoinHorizontal(lipgloss.Top, menu, " ", p.right)
}

// summaryAndServices stacks a summary table over a services grid that gets
// the remaining height.
func summaryAndServices(summary []api.Row, columns []components.TableColumn, services [][]string, active int, focused bool, width, height int) string {
	contentWidth := components.PaneContentWidth(width)
	top := components.Pane("Summary", components.Table(tableRows(summary), contentWidth), width, 0, false)

	servicesHeight := max(height-lipgloss.Height(top)-2, 3)
	var grid string
	if len(services) == 0 {
		grid = components.Muted("No services reported.")
	} else {
		grid = components.TableGrid(columns, services, contentWidth, active, servicesHeight-2)
	}
	bottom := components.Pane("Services", grid, width, servicesHeight, focused)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func geoPane(rows []api.Row, width, height int) string {
	return components.Pane("Geo-Lookup", components.Table(tableRows(rows), components.PaneContentWidth(width)), width, max(height-2, 1), false)
}

func renderCensys(st *app.State, current app.Route, width, height int) string {
	rightWidth := width - menuWidth - 1
	host := st.Censys.Host

	var right string
	if current.ID == app.RouteCensysGeoLookup {
		right = geoPane(host.GeoRows(), rightWidth, height)
	} else {
		right = summaryAndServices(host.SummaryRows(), censysServiceColumns, host.ServiceRows(),
			st.Censys.ServiceIndex, current.Active == app.BlockCensysServices, rightWidth, height)
	}

	return providerScreen{
		title:       "Censys",
		menu:        app.CensysMenu,
		menuIndex:   st.Censys.MenuIndex,
		menuFocused: current.Active == app.BlockCensysMenu,
		right:       right,
	}.render(width, height)
}

func renderShodan(st *app.State, current app.Route, width, height int) string {
	rightWidth := width - menuWidth - 1
	host := st.Shodan.Host

	var right string
	if current.ID == app.RouteShodanGeoLookup {
		right = geoPane(host.GeoRows(), rightWidth, height)
	} else {
		right = summaryAndServices(host.SummaryRows(), shodanServiceColumns, host.ServiceRows(),
			st.Shodan.ServiceIndex, current.Active == app.BlockShodanServices, rightWidth, height)
	}

	return providerScreen{
		title:       "Shodan",
		menu:        app.ShodanMenu,
		menuIndex:   st.Shodan.MenuIndex,
		menuFocused: current.Active == app.BlockShodanMenu,
		right:       right,
	}.render(width, height)
}
