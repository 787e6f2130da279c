package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/osintui/internal/app"
)

// panes lists the blocks Left/Right walk through on each route, left first.
var panes = map[app.RouteID][]app.Block{
	app.RouteCensys:              {app.BlockCensysMenu, app.BlockCensysServices},
	app.RouteCensysGeoLookup:     {app.BlockCensysMenu},
	app.RouteShodan:              {app.BlockShodanMenu, app.BlockShodanServices},
	app.RouteShodanGeoLookup:     {app.BlockShodanMenu},
	app.RouteVirusTotalDetection: {app.BlockVirusTotalMenu, app.BlockVirusTotalSummary, app.BlockVirusTotalResults},
	app.RouteVirusTotalDetails:   {app.BlockVirusTotalMenu, app.BlockVirusTotalWhois},
	app.RouteVirusTotalCommunity: {app.BlockVirusTotalMenu, app.BlockVirusTotalComments},
}

// Panes returns the horizontal pane order of id, or nil.
func Panes(id app.RouteID) []app.Block {
	return panes[id]
}

// NextIndex is i+1 wrapping at n. It returns 0 for an empty list.
func NextIndex(n, i int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

// PrevIndex is i-1 wrapping at 0. It returns 0 for an empty list.
func PrevIndex(n, i int) int {
	if n <= 0 {
		return 0
	}
	if i <= 0 {
		return n - 1
	}
	return (i - 1) % n
}

// handleMenu moves a provider submenu. Every index change opens the
// matching route.
func handleMenu(st *app.State, kb KeyBindings, msg tea.KeyMsg, current app.Route, menu app.Menu, index *int) {
	n := len(menu.Items)
	switch {
	case key.Matches(msg, kb.Down):
		*index = NextIndex(n, *index)
	case key.Matches(msg, kb.Up):
		*index = PrevIndex(n, *index)
	default:
		movePane(st, kb, msg, current)
		return
	}
	st.Nav.Push(menu.Routes[*index], menu.Block)
}

// handleDetail cycles the selected row of a detail pane holding n rows.
func handleDetail(st *app.State, kb KeyBindings, msg tea.KeyMsg, current app.Route, n int, index *int) {
	switch {
	case key.Matches(msg, kb.Down):
		*index = NextIndex(n, *index)
	case key.Matches(msg, kb.Up):
		*index = PrevIndex(n, *index)
	default:
		movePane(st, kb, msg, current)
	}
}

// movePane shifts focus one pane left or right, clamped to the route's pane
// list. The route itself never changes.
func movePane(st *app.State, kb KeyBindings, msg tea.KeyMsg, current app.Route) {
	var delta int
	switch {
	case key.Matches(msg, kb.Left):
		delta = -1
	case key.Matches(msg, kb.Right):
		delta = 1
	default:
		return
	}

	list := panes[current.ID]
	pos := -1
	for i, b := range list {
		if b == current.Active {
			pos = i
			break
		}
	}
	if pos < 0 {
		return
	}

	next := min(max(pos+delta, 0), len(list)-1)
	st.Nav.SetRouteState(list[next], list[next])
}
