package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/handlers"
	"github.com/gravitrone/osintui/internal/ui/components"
)

const (
	tickInterval  = 100 * time.Millisecond
	defaultWidth  = 100
	defaultHeight = 30
	menuWidth     = 22
)

// --- Messages ---

// tickMsg wakes the UI so results written by the worker get drawn.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// --- App Model ---

// App is the root TUI model. It renders the shared state and forwards key
// presses to the router; results arrive through the state, not messages.
type App struct {
	state   *app.State
	keys    handlers.KeyBindings
	spinner spinner.Model
	width   int
	height  int
}

// NewApp creates the root application model.
func NewApp(st *app.State, keys handlers.KeyBindings) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = AccentStyle
	return App{
		state:   st,
		keys:    keys,
		spinner: sp,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(tick(), a.spinner.Tick)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tickMsg:
		return a, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if a.handleKey(msg) {
			return a, tea.Quit
		}
		return a, nil
	}
	return a, nil
}

// handleKey applies msg under the state lock and reports whether the
// program should exit.
func (a App) handleKey(msg tea.KeyMsg) bool {
	st := a.state
	st.Lock()
	defer st.Unlock()

	if st.Nav.Current().Active != app.BlockInput && key.Matches(msg, a.keys.Back) {
		return goBack(st)
	}
	handlers.Handle(st, a.keys, msg)
	return false
}

// goBack pops the current screen, skipping a Search entry underneath. It
// reports true when only the home screen is left to leave.
func goBack(st *app.State) bool {
	popped, ok := st.Nav.Pop()
	if !ok {
		return true
	}
	if popped.ID == app.RouteSearch {
		st.Nav.Pop()
	}
	return false
}

func (a App) View() string {
	st := a.state
	st.Lock()
	defer st.Unlock()

	width := max(a.width, 40)
	header := a.renderHeader(st, width)
	hints := components.StatusBar(a.statusHints(st), width)
	bodyHeight := max(a.height-lipgloss.Height(header)-lipgloss.Height(hints)-1, 6)

	body := a.renderBody(st, width, bodyHeight)
	body = components.FitHeight(body, bodyHeight)

	return strings.Join([]string{header, body, hints}, "\n")
}

func (a App) renderBody(st *app.State, width, height int) string {
	current := st.Nav.Current()
	switch current.ID {
	case app.RouteHome, app.RouteSearch:
		return renderHome(st, current, a.keys, width, height)
	case app.RouteSearchResult:
		return renderSearchResult(st, a.keys, width)
	case app.RouteCensys, app.RouteCensysGeoLookup:
		return renderCensys(st, current, width, height)
	case app.RouteShodan, app.RouteShodanGeoLookup:
		return renderShodan(st, current, width, height)
	case app.RouteVirusTotalDetection, app.RouteVirusTotalDetails, app.RouteVirusTotalCommunity:
		return renderVirusTotal(st, current, width, height)
	case app.RouteUnloaded, app.RouteNotFound, app.RouteNotQueried:
		return renderInfo(current, a.keys, width)
	case app.RouteError:
		return centerBlockUniform(components.ErrorBox("Error", st.APIError+"\n\nPress esc to go back.", min(width, 80)), width)
	}
	return ""
}

func (a App) statusHints(st *app.State) []string {
	current := st.Nav.Current()
	if current.Active == app.BlockInput {
		return []string{
			components.BindingHint(a.keys.Submit),
			components.Hint("esc", "cancel"),
			components.BindingHint(a.keys.Quit),
		}
	}

	hints := []string{
		components.BindingHint(a.keys.Search),
		components.BindingHint(a.keys.Home),
		components.BindingHint(a.keys.Censys),
		components.BindingHint(a.keys.Shodan),
		components.BindingHint(a.keys.VirusTotal),
	}
	if len(handlers.Panes(current.ID)) > 0 {
		hints = append(hints, components.Hint("↑/↓", "move"), components.Hint("←/→", "pane"))
	}
	if current.Active != app.BlockEmpty {
		hints = append(hints, components.BindingHint(a.keys.Escape))
	}
	return append(hints, components.BindingHint(a.keys.Back))
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	prefix := strings.Repeat(" ", (width-maxWidth)/2)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
