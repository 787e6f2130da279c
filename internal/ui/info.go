package ui

import (
	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/handlers"
	"github.com/gravitrone/osintui/internal/ui/components"
)

// blockProvider maps an informational block back to its provider.
var blockProvider = map[app.Block]app.Provider{
	app.BlockCensysUnloaded:       app.ProviderCensys,
	app.BlockCensysNotFound:       app.ProviderCensys,
	app.BlockCensysNotQueried:     app.ProviderCensys,
	app.BlockShodanUnloaded:       app.ProviderShodan,
	app.BlockShodanNotFound:       app.ProviderShodan,
	app.BlockShodanNotQueried:     app.ProviderShodan,
	app.BlockVirusTotalUnloaded:   app.ProviderVirusTotal,
	app.BlockVirusTotalNotFound:   app.ProviderVirusTotal,
	app.BlockVirusTotalNotQueried: app.ProviderVirusTotal,
}

func infoMessage(id app.RouteID, p app.Provider, keys handlers.KeyBindings) string {
	switch id {
	case app.RouteUnloaded:
		return "No " + p.Title() + " API credentials are configured.\nAdd them to config.toml under [keys] and restart."
	case app.RouteNotFound:
		return p.Title() + " has no data for this address."
	}
	return p.Title() + " has not been queried yet.\nPress " + keys.Search.Help().Key + " to search for an address."
}

func renderInfo(current app.Route, keys handlers.KeyBindings, width int) string {
	title, message := "Notice", "Nothing to show here."
	if p, ok := blockProvider[current.Active]; ok {
		title, message = p.Title(), infoMessage(current.ID, p, keys)
	}
	box := components.MessageBox(title, message, "esc to go back", min(width, 64))
	return centerBlockUniform(box, width)
}
