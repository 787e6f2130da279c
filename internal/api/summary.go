package api

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NA is rendered for every field a provider left out.
const NA = "N/A"

// NoWhois is the single line shown when VirusTotal has no whois record.
const NoWhois = "No Whois data found."

// Row is one label/value pair of a summary table.
type Row struct {
	Label string
	Value string
}

func str(p *string) string {
	if p == nil || strings.TrimSpace(*p) == "" {
		return NA
	}
	return *p
}

func intStr(p *int) string {
	if p == nil {
		return NA
	}
	return strconv.Itoa(*p)
}

func list(items []string) string {
	if len(items) == 0 {
		return NA
	}
	return strings.Join(items, ", ")
}

func coords(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return NA
	}
	return fmt.Sprintf("%.4f, %.4f", *lat, *lon)
}

// --- Censys ---

// SummaryRows renders the host overview.
func (h *CensysHost) SummaryRows() []Row {
	if h == nil {
		return nil
	}
	osName := NA
	if h.OperatingSystem != nil && h.OperatingSystem.Product != "" {
		osName = h.OperatingSystem.Product
	}
	var rdns []string
	if h.DNS != nil && h.DNS.ReverseDNS != nil {
		rdns = h.DNS.ReverseDNS.Names
	}
	ip := h.IP
	if ip == "" {
		ip = NA
	}
	return []Row{
		{Label: "IP", Value: ip},
		{Label: "Network", Value: str(h.AutonomousSystem.Name)},
		{Label: "ASN", Value: intStr(h.AutonomousSystem.ASN)},
		{Label: "Routing", Value: str(h.AutonomousSystem.BGPPrefix)},
		{Label: "Operating System", Value: osName},
		{Label: "Reverse DNS", Value: list(rdns)},
		{Label: "Services", Value: strconv.Itoa(len(h.Services))},
		{Label: "Last Updated", Value: str(h.LastUpdatedAt)},
	}
}

// ServiceRows renders one row per service: port, name, transport, extended name.
func (h *CensysHost) ServiceRows() [][]string {
	if h == nil {
		return nil
	}
	rows := make([][]string, 0, len(h.Services))
	for _, s := range h.Services {
		rows = append(rows, []string{
			intStr(s.Port),
			str(s.ServiceName),
			str(s.TransportProtocol),
			str(s.ExtendedServiceName),
		})
	}
	return rows
}

// GeoRows renders the location block.
func (h *CensysHost) GeoRows() []Row {
	if h == nil {
		return nil
	}
	loc := h.Location
	var lat, lon *float64
	if loc.Coordinates != nil {
		lat, lon = &loc.Coordinates.Latitude, &loc.Coordinates.Longitude
	}
	return []Row{
		{Label: "Continent", Value: str(loc.Continent)},
		{Label: "Country", Value: str(loc.Country)},
		{Label: "Country Code", Value: str(loc.CountryCode)},
		{Label: "City", Value: str(loc.City)},
		{Label: "Postal Code", Value: str(loc.PostalCode)},
		{Label: "Timezone", Value: str(loc.Timezone)},
		{Label: "Coordinates", Value: coords(lat, lon)},
		{Label: "Registered Country", Value: str(loc.RegisteredCountry)},
	}
}

// --- Shodan ---

// SummaryRows renders the host overview.
func (h *ShodanHost) SummaryRows() []Row {
	if h == nil {
		return nil
	}
	ports := make([]string, 0, len(h.Ports))
	for _, p := range h.Ports {
		ports = append(ports, strconv.Itoa(p))
	}
	return []Row{
		{Label: "IP", Value: str(h.IPStr)},
		{Label: "Hostnames", Value: list(h.Hostnames)},
		{Label: "Domains", Value: list(h.Domains)},
		{Label: "City", Value: str(h.City)},
		{Label: "Organization", Value: str(h.Org)},
		{Label: "ISP", Value: str(h.ISP)},
		{Label: "ASN", Value: str(h.ASN)},
		{Label: "Operating System", Value: str(h.OS)},
		{Label: "Ports", Value: list(ports)},
		{Label: "Tags", Value: list(h.Tags)},
		{Label: "Last Update", Value: str(h.LastUpdate)},
	}
}

// ServiceRows renders one row per banner: port, transport, product, version.
func (h *ShodanHost) ServiceRows() [][]string {
	if h == nil {
		return nil
	}
	rows := make([][]string, 0, len(h.Data))
	for _, s := range h.Data {
		rows = append(rows, []string{
			strconv.Itoa(s.Port),
			str(s.Transport),
			str(s.Product),
			str(s.Version),
		})
	}
	return rows
}

// GeoRows renders the location fields.
func (h *ShodanHost) GeoRows() []Row {
	if h == nil {
		return nil
	}
	return []Row{
		{Label: "City", Value: str(h.City)},
		{Label: "Region", Value: str(h.RegionCode)},
		{Label: "Country", Value: str(h.CountryName)},
		{Label: "Country Code", Value: str(h.CountryCode)},
		{Label: "Coordinates", Value: coords(h.Latitude, h.Longitude)},
	}
}

// --- VirusTotal ---

// SummaryRows renders the report overview.
func (v *VirusTotalIP) SummaryRows() []Row {
	if v == nil {
		return nil
	}
	a := v.Attributes
	s := a.LastAnalysisStats
	total := s.Harmless + s.Malicious + s.Suspicious + s.Timeout + s.Undetected
	ip := v.ID
	if ip == "" {
		ip = NA
	}
	return []Row{
		{Label: "IP", Value: ip},
		{Label: "AS Owner", Value: str(a.ASOwner)},
		{Label: "ASN", Value: intStr(a.ASN)},
		{Label: "Network", Value: str(a.Network)},
		{Label: "Continent", Value: str(a.Continent)},
		{Label: "Country", Value: str(a.Country)},
		{Label: "Registry", Value: str(a.RegionalRegistry)},
		{Label: "Reputation", Value: intStr(a.Reputation)},
		{Label: "Detections", Value: fmt.Sprintf("%d/%d", s.Malicious+s.Suspicious, total)},
		{Label: "Community Votes", Value: fmt.Sprintf("%d harmless, %d malicious", a.TotalVotes.Harmless, a.TotalVotes.Malicious)},
	}
}

// EngineResults returns every engine verdict ordered by engine name.
func (v *VirusTotalIP) EngineResults() []VirusTotalAnalysisResult {
	if v == nil || len(v.Attributes.LastAnalysisResults) == 0 {
		return nil
	}
	out := make([]VirusTotalAnalysisResult, 0, len(v.Attributes.LastAnalysisResults))
	for name, r := range v.Attributes.LastAnalysisResults {
		if r.EngineName == "" {
			r.EngineName = name
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].EngineName) < strings.ToLower(out[j].EngineName)
	})
	return out
}

// WhoisLines splits the whois record into lines. It never returns an empty slice.
func (v *VirusTotalIP) WhoisLines() []string {
	if v == nil || v.Attributes.Whois == nil || strings.TrimSpace(*v.Attributes.Whois) == "" {
		return []string{NoWhois}
	}
	return strings.Split(strings.TrimRight(*v.Attributes.Whois, "\n"), "\n")
}
