package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/osintui/internal/api"
	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/config"
	"github.com/gravitrone/osintui/internal/ui/components"
)

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func TestHomeViewListsIntegrations(t *testing.T) {
	a, _, _ := newTestApp(app.ProviderShodan)
	view := a.View()

	assert.Contains(t, view, "IP intelligence from Censys, Shodan and VirusTotal")
	assert.Contains(t, view, "Integrations")
	assert.Contains(t, view, "Not configured")
	assert.Contains(t, view, "Configured")
	assert.Contains(t, view, "Search")
	assert.Contains(t, view, "Providers")

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100)
	}
}

func TestHomeScrollHidesTopLines(t *testing.T) {
	a, st, _ := newTestApp()
	a, _ = send(t, a, tea.WindowSizeMsg{Width: 100, Height: 20})
	before := a.View()

	st.Update(func(s *app.State) { s.HomeScroll = 3 })
	after := a.View()
	assert.NotEqual(t, before, after)
}

func TestInvalidInputShownInSearchTitle(t *testing.T) {
	a, st, _ := newTestApp(app.ProviderShodan)
	a, _ = send(t, a, runes("/"))
	a = typeInto(t, a, "nope")
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, st.InputError)
	view := a.View()
	assert.Contains(t, view, "not a valid IP")
	assert.Contains(t, view, "Not a valid IP address")
}

func TestCensysViewShowsSummaryAndServices(t *testing.T) {
	a, st, _ := newTestApp(app.ProviderCensys)
	st.Update(func(s *app.State) {
		s.Censys.SetHost(&api.CensysHost{
			IP: "1.2.3.4",
			Services: []api.CensysService{
				{Port: intPtr(22), ServiceName: strPtr("SSH"), TransportProtocol: strPtr("TCP")},
				{Port: intPtr(443), ServiceName: strPtr("HTTP"), TransportProtocol: strPtr("TCP")},
			},
		})
	})
	a, _ = send(t, a, runes("c"))
	require.Equal(t, app.RouteCensys, st.Nav.Current().ID)

	view := a.View()
	assert.Contains(t, view, "Summary")
	assert.Contains(t, view, "Geo-Lookup")
	assert.Contains(t, view, "1.2.3.4")
	assert.Contains(t, view, "SSH")
	assert.Contains(t, view, "443")
	assert.Contains(t, view, api.NA)

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, app.RouteCensysGeoLookup, st.Nav.Current().ID)
	assert.Contains(t, a.View(), "Geo-Lookup")
}

func TestShodanViewShowsServices(t *testing.T) {
	a, st, _ := newTestApp(app.ProviderShodan)
	st.Update(func(s *app.State) {
		s.Shodan.SetHost(&api.ShodanHost{
			IPStr: strPtr("9.9.9.9"),
			Data:  []api.ShodanService{{Port: 53, Transport: strPtr("udp"), Product: strPtr("Unbound")}},
		})
	})
	a, _ = send(t, a, runes("s"))

	view := a.View()
	assert.Contains(t, view, "Shodan")
	assert.Contains(t, view, "9.9.9.9")
	assert.Contains(t, view, "Unbound")
}

func virusTotalApp(t *testing.T) (App, *app.State) {
	t.Helper()
	a, st, _ := newTestApp(app.ProviderVirusTotal)
	analysed := time.Now().Add(-48 * time.Hour).Unix()
	st.Update(func(s *app.State) {
		s.VirusTotal.SetReport(&api.VirusTotalIP{
			ID: "8.8.8.8",
			Attributes: api.VirusTotalIPAttributes{
				ASOwner:          strPtr("GOOGLE"),
				Whois:            strPtr("NetRange: 8.0.0.0 - 8.255.255.255\nOrgName: Level 3 Parent, LLC"),
				LastAnalysisDate: &analysed,
				LastAnalysisResults: map[string]api.VirusTotalAnalysisResult{
					"Kaspersky":        {Category: "harmless", Result: "clean"},
					"alphaMountain.ai": {Category: "suspicious", Result: "suspicious"},
				},
			},
		}, []api.VirusTotalComment{{
			ID: "c1",
			Attributes: api.VirusTotalCommentAttributes{
				Date: time.Now().Add(-3 * time.Hour).Unix(),
				Text: "Public resolver, seen in phishing kits.",
				Tags: []string{"dns"},
			},
		}})
	})
	a, _ = send(t, a, runes("v"))
	return a, st
}

func TestVirusTotalDetectionView(t *testing.T) {
	a, st := virusTotalApp(t)
	require.Equal(t, app.RouteVirusTotalDetection, st.Nav.Current().ID)

	view := a.View()
	assert.Contains(t, view, "GOOGLE")
	assert.Contains(t, view, "Engine Results")
	assert.Contains(t, view, "alphaMountain.ai")
	assert.Contains(t, view, "Kaspersky")
	assert.Contains(t, view, "2 days ago")
}

func TestVirusTotalDetailsView(t *testing.T) {
	a, st := virusTotalApp(t)
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, app.RouteVirusTotalDetails, st.Nav.Current().ID)

	view := a.View()
	assert.Contains(t, view, "Whois")
	assert.Contains(t, view, "OrgName: Level 3")
}

func TestVirusTotalCommunityView(t *testing.T) {
	a, st := virusTotalApp(t)
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, app.RouteVirusTotalCommunity, st.Nav.Current().ID)

	view := a.View()
	assert.Contains(t, view, "Community (1)")
	assert.Contains(t, view, "3 hours ago")
	assert.Contains(t, view, "#dns")
	assert.Contains(t, view, "phishing")
}

func TestInfoScreens(t *testing.T) {
	a, st, _ := newTestApp(app.ProviderCensys)
	a, _ = send(t, a, runes("s"))
	assert.Contains(t, a.View(), "No Shodan API credentials")

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEsc}, runes("c"))
	require.Equal(t, app.RouteNotQueried, st.Nav.Current().ID)
	assert.Contains(t, a.View(), "Censys has not been queried yet")

	st.Update(func(s *app.State) { s.SetStatus(app.ProviderCensys, app.StatusNotFound) })
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEsc}, runes("c"))
	assert.Contains(t, a.View(), "Censys has no data for this address")
}

func TestErrorScreen(t *testing.T) {
	a, st, _ := newTestApp()
	st.Update(func(s *app.State) { s.Fail("HTTP 500: InternalError: backend down") })

	view := a.View()
	assert.Contains(t, view, "Error")
	assert.Contains(t, view, "backend down")

	_, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, app.RouteHome, st.Nav.Current().ID)
}

func TestStatusHintsFollowFocus(t *testing.T) {
	a, _, _ := newTestApp()
	assert.Contains(t, a.View(), "search")

	a, _ = send(t, a, runes("/"))
	view := a.View()
	assert.Contains(t, view, "cancel")
	assert.Contains(t, view, "select")
}

func TestInputWindowKeepsCursorVisible(t *testing.T) {
	buf := []rune("0123456789")
	assert.Equal(t, 0, inputWindow(buf, 3, 5))
	assert.Equal(t, 6, inputWindow(buf, 10, 5))
	assert.Equal(t, 4, inputWindow(buf, 8, 5))

	wide := []rune("日本語テキスト")
	start := inputWindow(wide, len(wide), 6)
	assert.Equal(t, 5, start)
}

func TestRenderInputShowsTail(t *testing.T) {
	out := renderInput([]rune("2001:db8:85a3::8a2e:370:7334"), 28, 10, false)
	assert.Equal(t, ":370:7334", components.SanitizeText(out))
}

func TestApplyThemeUpdatesPalette(t *testing.T) {
	t.Cleanup(func() { ApplyTheme(config.DefaultTheme()) })

	th := config.DefaultTheme()
	th.Accent = "#00ff00"
	ApplyTheme(th)
	assert.Equal(t, lipgloss.Color("#00ff00"), ColorAccent)
	assert.Equal(t, lipgloss.Color("#00ff00"), components.CurrentPalette().Accent)
}
