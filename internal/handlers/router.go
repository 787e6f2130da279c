// Package handlers turns key presses into state transitions. Nothing here
// renders or blocks: every handler mutates app.State, which the caller has
// already locked.
package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/osintui/internal/app"
)

// providerRoutes maps a provider to the screens its shortcut can open.
type providerRoutes struct {
	main       app.RouteID
	menu       app.Block
	unloaded   app.Block
	notFound   app.Block
	notQueried app.Block
}

var shortcutRoutes = map[app.Provider]providerRoutes{
	app.ProviderCensys: {
		main:       app.RouteCensys,
		menu:       app.BlockCensysMenu,
		unloaded:   app.BlockCensysUnloaded,
		notFound:   app.BlockCensysNotFound,
		notQueried: app.BlockCensysNotQueried,
	},
	app.ProviderShodan: {
		main:       app.RouteShodan,
		menu:       app.BlockShodanMenu,
		unloaded:   app.BlockShodanUnloaded,
		notFound:   app.BlockShodanNotFound,
		notQueried: app.BlockShodanNotQueried,
	},
	app.ProviderVirusTotal: {
		main:       app.RouteVirusTotalDetection,
		menu:       app.BlockVirusTotalMenu,
		unloaded:   app.BlockVirusTotalUnloaded,
		notFound:   app.BlockVirusTotalNotFound,
		notQueried: app.BlockVirusTotalNotQueried,
	},
}

// Handle applies one key press to st. The caller must hold the state lock.
func Handle(st *app.State, kb KeyBindings, msg tea.KeyMsg) {
	current := st.Nav.Current()

	if isEscape(msg, kb) {
		if current.Active.Informational() {
			st.Nav.Pop()
			return
		}
		st.Nav.SetRouteState(app.BlockEmpty, app.BlockUnchanged)
		return
	}

	if current.Active == app.BlockInput {
		handleInput(st, kb, msg)
		return
	}

	for _, p := range app.Providers {
		if key.Matches(msg, kb.ProviderBinding(p)) {
			openProvider(st, p)
			return
		}
	}

	switch {
	case key.Matches(msg, kb.Home):
		if !st.Nav.Push(app.RouteHome, app.BlockInput) {
			st.Nav.SetRouteState(app.BlockInput, app.BlockInput)
		}
		return
	case key.Matches(msg, kb.Search):
		st.Nav.SetRouteState(app.BlockInput, app.BlockInput)
		return
	}

	handleBlock(st, kb, msg, current)
}

// openProvider runs a provider shortcut.
func openProvider(st *app.State, p app.Provider) {
	routes := shortcutRoutes[p]
	switch {
	case !st.Enabled(p):
		st.Nav.Push(app.RouteUnloaded, routes.unloaded)
	case st.Status(p) == app.StatusNotFound:
		st.Nav.Push(app.RouteNotFound, routes.notFound)
	case st.Status(p) == app.StatusNotQueried:
		st.Nav.Push(app.RouteNotQueried, routes.notQueried)
	default:
		switch p {
		case app.ProviderCensys:
			st.Censys.MenuIndex = 0
		case app.ProviderShodan:
			st.Shodan.MenuIndex = 0
		case app.ProviderVirusTotal:
			st.VirusTotal.MenuIndex = 0
		}
		st.Nav.Push(routes.main, routes.menu)
	}
}

func handleBlock(st *app.State, kb KeyBindings, msg tea.KeyMsg, current app.Route) {
	switch current.Active {
	case app.BlockEmpty:
		switch {
		case key.Matches(msg, kb.Submit):
			st.Nav.SetRouteState(current.Hovered, app.BlockUnchanged)
		case key.Matches(msg, kb.Right) && current.ID == app.RouteHome:
			st.Nav.SetRouteState(app.BlockHome, app.BlockHome)
		}

	case app.BlockHome:
		switch {
		case key.Matches(msg, kb.Down):
			st.HomeScroll++
		case key.Matches(msg, kb.Up):
			if st.HomeScroll > 0 {
				st.HomeScroll--
			}
		}

	case app.BlockCensysMenu:
		handleMenu(st, kb, msg, current, app.CensysMenu, &st.Censys.MenuIndex)
	case app.BlockShodanMenu:
		handleMenu(st, kb, msg, current, app.ShodanMenu, &st.Shodan.MenuIndex)
	case app.BlockVirusTotalMenu:
		handleMenu(st, kb, msg, current, app.VirusTotalMenu, &st.VirusTotal.MenuIndex)

	case app.BlockCensysServices:
		handleDetail(st, kb, msg, current, len(st.Censys.Host.ServiceRows()), &st.Censys.ServiceIndex)
	case app.BlockShodanServices:
		handleDetail(st, kb, msg, current, len(st.Shodan.Host.ServiceRows()), &st.Shodan.ServiceIndex)
	case app.BlockVirusTotalResults:
		handleDetail(st, kb, msg, current, len(st.VirusTotal.Report.EngineResults()), &st.VirusTotal.ResultIndex)
	case app.BlockVirusTotalWhois:
		handleDetail(st, kb, msg, current, len(st.VirusTotal.Report.WhoisLines()), &st.VirusTotal.WhoisIndex)
	case app.BlockVirusTotalSummary:
		movePane(st, kb, msg, current)

	case app.BlockVirusTotalComments:
		switch {
		case key.Matches(msg, kb.Down):
			st.VirusTotal.CommentScroll++
		case key.Matches(msg, kb.Up):
			if st.VirusTotal.CommentScroll > 0 {
				st.VirusTotal.CommentScroll--
			}
		default:
			movePane(st, kb, msg, current)
		}
	}
}
