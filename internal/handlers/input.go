package handlers

import (
	"net/netip"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/osintui/internal/app"
)

// handleInput applies an editing key to the search box. Enter (the submit
// binding) runs the lookup.
func handleInput(st *app.State, kb KeyBindings, msg tea.KeyMsg) {
	ed := st.Input

	if key.Matches(msg, kb.Submit) {
		Submit(st)
		return
	}

	switch msg.String() {
	case "ctrl+k":
		ed.DeleteToEnd()
	case "ctrl+u":
		ed.DeleteToStart()
	case "ctrl+l":
		ed.Clear()
	case "ctrl+w":
		ed.DeleteWordBackward()
	case "end", "ctrl+e":
		ed.MoveToEnd()
	case "home", "ctrl+a":
		ed.MoveToStart()
	case "left", "ctrl+b":
		ed.MoveLeft()
	case "right", "ctrl+f":
		ed.MoveRight()
	case "backspace", "ctrl+h":
		ed.DeleteBackward()
	case "delete", "ctrl+d":
		ed.DeleteForward()
	default:
		switch msg.Type {
		case tea.KeySpace:
			ed.Insert(' ')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				ed.Insert(r)
			}
		}
	}
}

// Refang strips the brackets analysts use to defang indicators
// ("1[.]1[.]1[.]1") and surrounding whitespace.
func Refang(raw string) string {
	return strings.TrimSpace(strings.NewReplacer("[", "", "]", "").Replace(raw))
}

// Submit processes the search box: it validates the address, dispatches one
// lookup per configured provider and opens the search result screen. Invalid
// input is flagged but still dispatched.
func Submit(st *app.State) {
	raw := st.Input.String()
	if raw == "" {
		return
	}

	ip := Refang(raw)
	if addr, err := netip.ParseAddr(ip); err != nil {
		st.InputError = true
	} else {
		st.InputError = false
		ip = addr.String()
	}
	st.LastQuery = ip

	for _, p := range app.Providers {
		if st.Enabled(p) {
			st.Dispatch(app.Request{Provider: p, IP: ip})
		}
	}

	if !st.Nav.Push(app.RouteSearchResult, app.BlockSearchResult) {
		// Searching again from the result screen refocuses it.
		st.Nav.SetRouteState(app.BlockSearchResult, app.BlockSearchResult)
	}
}
