package app

import "github.com/gravitrone/osintui/internal/api"

// Provider names one OSINT data source.
type Provider int

const (
	ProviderCensys Provider = iota
	ProviderShodan
	ProviderVirusTotal
)

// Providers lists every provider in dispatch order.
var Providers = []Provider{ProviderCensys, ProviderShodan, ProviderVirusTotal}

func (p Provider) String() string {
	switch p {
	case ProviderCensys:
		return "censys"
	case ProviderShodan:
		return "shodan"
	case ProviderVirusTotal:
		return "virustotal"
	}
	return "unknown"
}

// Title is the display name of the provider.
func (p Provider) Title() string {
	switch p {
	case ProviderCensys:
		return "Censys"
	case ProviderShodan:
		return "Shodan"
	case ProviderVirusTotal:
		return "VirusTotal"
	}
	return "Unknown"
}

// Status is the outcome of the last lookup for a provider.
type Status int

const (
	StatusNotQueried Status = iota
	StatusNotFound
	StatusFound
)

func (s Status) String() string {
	switch s {
	case StatusNotFound:
		return "not found"
	case StatusFound:
		return "found"
	}
	return "not queried"
}

// Menu is a fixed provider submenu. Entry i opens Routes[i].
type Menu struct {
	Items  []string
	Routes []RouteID
	Block  Block
}

// Provider submenus.
var (
	CensysMenu = Menu{
		Items:  []string{"Summary", "Geo-Lookup"},
		Routes: []RouteID{RouteCensys, RouteCensysGeoLookup},
		Block:  BlockCensysMenu,
	}
	ShodanMenu = Menu{
		Items:  []string{"General", "Geo-Lookup"},
		Routes: []RouteID{RouteShodan, RouteShodanGeoLookup},
		Block:  BlockShodanMenu,
	}
	VirusTotalMenu = Menu{
		Items:  []string{"Detection", "Details", "Community"},
		Routes: []RouteID{RouteVirusTotalDetection, RouteVirusTotalDetails, RouteVirusTotalCommunity},
		Block:  BlockVirusTotalMenu,
	}
)

// CensysState holds the last Censys lookup.
type CensysState struct {
	Status       Status
	Host         *api.CensysHost
	MenuIndex    int
	ServiceIndex int
}

// ShodanState holds the last Shodan lookup.
type ShodanState struct {
	Status       Status
	Host         *api.ShodanHost
	MenuIndex    int
	ServiceIndex int
}

// VirusTotalState holds the last VirusTotal lookup.
type VirusTotalState struct {
	Status        Status
	Report        *api.VirusTotalIP
	Comments      []api.VirusTotalComment
	MenuIndex     int
	ResultIndex   int
	WhoisIndex    int
	CommentScroll int
}

// SetHost stores a fresh Censys payload and resets the selection.
func (c *CensysState) SetHost(host *api.CensysHost) {
	c.Host = host
	c.Status = StatusFound
	c.ServiceIndex = 0
}

// SetHost stores a fresh Shodan payload and resets the selection.
func (s *ShodanState) SetHost(host *api.ShodanHost) {
	s.Host = host
	s.Status = StatusFound
	s.ServiceIndex = 0
}

// SetReport stores a fresh VirusTotal report and its comments.
func (v *VirusTotalState) SetReport(report *api.VirusTotalIP, comments []api.VirusTotalComment) {
	v.Report = report
	v.Comments = comments
	v.Status = StatusFound
	v.ResultIndex = 0
	v.WhoisIndex = 0
	v.CommentScroll = 0
}
