package app

// RouteID identifies a screen.
type RouteID int

const (
	RouteHome RouteID = iota
	RouteSearch
	RouteSearchResult
	RouteCensys
	RouteCensysGeoLookup
	RouteShodan
	RouteShodanGeoLookup
	RouteVirusTotalDetection
	RouteVirusTotalDetails
	RouteVirusTotalCommunity
	RouteUnloaded
	RouteNotQueried
	RouteNotFound
	RouteError
)

var routeNames = map[RouteID]string{
	RouteHome:                "home",
	RouteSearch:              "search",
	RouteSearchResult:        "search-result",
	RouteCensys:              "censys",
	RouteCensysGeoLookup:     "censys-geo",
	RouteShodan:              "shodan",
	RouteShodanGeoLookup:     "shodan-geo",
	RouteVirusTotalDetection: "virustotal-detection",
	RouteVirusTotalDetails:   "virustotal-details",
	RouteVirusTotalCommunity: "virustotal-community",
	RouteUnloaded:            "unloaded",
	RouteNotQueried:          "not-queried",
	RouteNotFound:            "not-found",
	RouteError:               "error",
}

func (r RouteID) String() string {
	if name, ok := routeNames[r]; ok {
		return name
	}
	return "unknown"
}

// Block identifies a focusable pane.
type Block int

const (
	// BlockUnchanged is accepted by SetRouteState to leave a field as is.
	// It is never stored in a Route.
	BlockUnchanged Block = iota - 1
	BlockEmpty
	BlockHome
	BlockInput
	BlockSearchResult
	BlockError

	BlockCensysMenu
	BlockCensysServices
	BlockCensysUnloaded
	BlockCensysNotFound
	BlockCensysNotQueried

	BlockShodanMenu
	BlockShodanServices
	BlockShodanUnloaded
	BlockShodanNotFound
	BlockShodanNotQueried

	BlockVirusTotalMenu
	BlockVirusTotalSummary
	BlockVirusTotalResults
	BlockVirusTotalWhois
	BlockVirusTotalComments
	BlockVirusTotalUnloaded
	BlockVirusTotalNotFound
	BlockVirusTotalNotQueried
)

var blockNames = map[Block]string{
	BlockUnchanged:            "unchanged",
	BlockEmpty:                "empty",
	BlockHome:                 "home",
	BlockInput:                "input",
	BlockSearchResult:         "search-result",
	BlockError:                "error",
	BlockCensysMenu:           "censys-menu",
	BlockCensysServices:       "censys-services",
	BlockCensysUnloaded:       "censys-unloaded",
	BlockCensysNotFound:       "censys-not-found",
	BlockCensysNotQueried:     "censys-not-queried",
	BlockShodanMenu:           "shodan-menu",
	BlockShodanServices:       "shodan-services",
	BlockShodanUnloaded:       "shodan-unloaded",
	BlockShodanNotFound:       "shodan-not-found",
	BlockShodanNotQueried:     "shodan-not-queried",
	BlockVirusTotalMenu:       "virustotal-menu",
	BlockVirusTotalSummary:    "virustotal-summary",
	BlockVirusTotalResults:    "virustotal-results",
	BlockVirusTotalWhois:      "virustotal-whois",
	BlockVirusTotalComments:   "virustotal-comments",
	BlockVirusTotalUnloaded:   "virustotal-unloaded",
	BlockVirusTotalNotFound:   "virustotal-not-found",
	BlockVirusTotalNotQueried: "virustotal-not-queried",
}

func (b Block) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return "unknown"
}

// Informational reports whether b is a terminal message pane that Escape
// dismisses by popping the route.
func (b Block) Informational() bool {
	switch b {
	case BlockError,
		BlockCensysUnloaded, BlockCensysNotFound, BlockCensysNotQueried,
		BlockShodanUnloaded, BlockShodanNotFound, BlockShodanNotQueried,
		BlockVirusTotalUnloaded, BlockVirusTotalNotFound, BlockVirusTotalNotQueried:
		return true
	}
	return false
}

// Route is one entry of the navigation stack.
type Route struct {
	ID      RouteID
	Active  Block
	Hovered Block
}

// DefaultRoute is the bottom of every stack.
var DefaultRoute = Route{ID: RouteHome, Active: BlockEmpty, Hovered: BlockHome}

// Stack is the navigation history. It always holds at least one route.
type Stack struct {
	routes []Route
}

// NewStack returns a stack holding only DefaultRoute.
func NewStack() *Stack {
	return &Stack{routes: []Route{DefaultRoute}}
}

// Push appends a route focused on block. Pushing the id already on top does
// nothing and returns false.
func (s *Stack) Push(id RouteID, block Block) bool {
	if n := len(s.routes); n > 0 && s.routes[n-1].ID == id {
		return false
	}
	s.routes = append(s.routes, Route{ID: id, Active: block, Hovered: block})
	return true
}

// Pop removes and returns the top route. The last route is never removed.
func (s *Stack) Pop() (Route, bool) {
	n := len(s.routes)
	if n <= 1 {
		return Route{}, false
	}
	top := s.routes[n-1]
	s.routes = s.routes[:n-1]
	return top, true
}

// SetRouteState updates the focus of the top route. Pass BlockUnchanged to
// keep a field.
func (s *Stack) SetRouteState(active, hovered Block) {
	n := len(s.routes)
	if n == 0 {
		s.routes = append(s.routes, DefaultRoute)
		n = 1
	}
	top := &s.routes[n-1]
	if active != BlockUnchanged {
		top.Active = active
	}
	if hovered != BlockUnchanged {
		top.Hovered = hovered
	}
}

// Current returns the top route.
func (s *Stack) Current() Route {
	if len(s.routes) == 0 {
		return DefaultRoute
	}
	return s.routes[len(s.routes)-1]
}

// Len returns the stack depth.
func (s *Stack) Len() int {
	return len(s.routes)
}

// Routes returns a copy of the stack, bottom first.
func (s *Stack) Routes() []Route {
	out := make([]Route, len(s.routes))
	copy(out, s.routes)
	return out
}
