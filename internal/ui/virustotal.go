package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/gravitrone/osintui/internal/api"
	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/ui/components"
)

var engineColumns = []components.TableColumn{
	{Header: "Engine", Width: 20},
	{Header: "Category", Width: 12},
	{Header: "Result", Width: 14},
}

// unixAgo renders a unix timestamp as "3 days ago", or N/A when unset.
func unixAgo(ts *int64) string {
	if ts == nil || *ts <= 0 {
		return api.NA
	}
	return humanize.Time(time.Unix(*ts, 0))
}

func renderVirusTotal(st *app.State, current app.Route, width, height int) string {
	rightWidth := width - menuWidth - 1
	vt := &st.VirusTotal

	var right string
	switch current.ID {
	case app.RouteVirusTotalDetails:
		right = whoisPane(vt, current.Active == app.BlockVirusTotalWhois, rightWidth, height)
	case app.RouteVirusTotalCommunity:
		right = commentsPane(vt, current.Active == app.BlockVirusTotalComments, rightWidth, height)
	default:
		right = detectionPanes(vt, current.Active, rightWidth, height)
	}

	return providerScreen{
		title:       "VirusTotal",
		menu:        app.VirusTotalMenu,
		menuIndex:   vt.MenuIndex,
		menuFocused: current.Active == app.BlockVirusTotalMenu,
		right:       right,
	}.render(width, height)
}

func detectionPanes(vt *app.VirusTotalState, active app.Block, width, height int) string {
	contentWidth := components.PaneContentWidth(width)

	rows := tableRows(vt.Report.SummaryRows())
	if vt.Report != nil {
		rows = append(rows, components.TableRow{Label: "Last Analysis", Value: unixAgo(vt.Report.Attributes.LastAnalysisDate)})
	}
	top := components.Pane("Summary", components.Table(rows, contentWidth), width, 0, active == app.BlockVirusTotalSummary)

	results := vt.Report.EngineResults()
	resultsHeight := max(height-lipgloss.Height(top)-2, 3)
	var grid string
	if len(results) == 0 {
		grid = components.Muted("No engine results.")
	} else {
		cells := make([][]string, len(results))
		for i, r := range results {
			verdict := r.Result
			if verdict == "" {
				verdict = api.NA
			}
			cells[i] = []string{r.EngineName, r.Category, verdict}
		}
		grid = components.TableGrid(engineColumns, cells, contentWidth, vt.ResultIndex, resultsHeight-2)
	}
	bottom := components.Pane("Engine Results", grid, width, resultsHeight, active == app.BlockVirusTotalResults)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

func whoisPane(vt *app.VirusTotalState, focused bool, width, height int) string {
	contentWidth := components.PaneContentWidth(width)
	lines := vt.Report.WhoisLines()
	visible := max(height-4, 1)

	start := 0
	if vt.WhoisIndex >= visible {
		start = vt.WhoisIndex - visible + 1
	}
	end := min(start+visible, len(lines))

	out := make([]string, 0, end-start+1)
	var whoisDate *int64
	if vt.Report != nil {
		whoisDate = vt.Report.Attributes.WhoisDate
	}
	out = append(out, components.Muted("Updated "+unixAgo(whoisDate)))
	for i := start; i < end; i++ {
		line := components.ClampTextWidth(lines[i], contentWidth)
		if i == vt.WhoisIndex {
			out = append(out, SelectedStyle.Render(line))
			continue
		}
		out = append(out, NormalStyle.Render(line))
	}
	return components.Pane("Whois", strings.Join(out, "\n"), width, max(height-2, 1), focused)
}

// renderComments formats every comment as a header line and its wrapped
// text, separated by blank lines.
func renderComments(comments []api.VirusTotalComment, width int) string {
	if len(comments) == 0 {
		return components.Muted("No community comments.")
	}
	wrap := lipgloss.NewStyle().Width(width)

	blocks := make([]string, 0, len(comments))
	for _, c := range comments {
		attrs := c.Attributes
		header := fmt.Sprintf("%s  +%d / -%d", humanize.Time(time.Unix(attrs.Date, 0)), attrs.Votes.Positive, attrs.Votes.Negative)
		if len(attrs.Tags) > 0 {
			header += "  #" + strings.Join(attrs.Tags, " #")
		}
		blocks = append(blocks, AccentStyle.Render(components.ClampTextWidth(header, width))+"\n"+
			NormalStyle.Render(wrap.Render(components.SanitizeText(attrs.Text))))
	}
	return strings.Join(blocks, "\n\n")
}

func commentsPane(vt *app.VirusTotalState, focused bool, width, height int) string {
	contentWidth := components.PaneContentWidth(width)
	innerHeight := max(height-2, 1)

	vp := viewport.New(contentWidth, innerHeight)
	vp.SetContent(renderComments(vt.Comments, contentWidth))
	vp.SetYOffset(vt.CommentScroll)

	title := fmt.Sprintf("Community (%d)", len(vt.Comments))
	return components.Pane(title, vp.View(), width, innerHeight, focused)
}
