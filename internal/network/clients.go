package network

import (
	"context"
	"os"
	"time"

	"github.com/gravitrone/osintui/internal/api"
	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/config"
)

// Environment overrides for the provider roots.
const (
	CensysURLEnvVar     = "OSINTUI_CENSYS_URL"
	ShodanURLEnvVar     = "OSINTUI_SHODAN_URL"
	VirusTotalURLEnvVar = "OSINTUI_VIRUSTOTAL_URL"
)

// CensysLookup fetches Censys host records.
type CensysLookup interface {
	Host(ctx context.Context, ip string) (*api.CensysHost, error)
}

// ShodanLookup fetches Shodan host records.
type ShodanLookup interface {
	Host(ctx context.Context, ip string) (*api.ShodanHost, error)
}

// VirusTotalLookup fetches VirusTotal reports and comments.
type VirusTotalLookup interface {
	IPReport(ctx context.Context, ip string) (*api.VirusTotalIP, error)
	IPComments(ctx context.Context, ip string) (*api.VirusTotalComments, error)
}

// Endpoints holds the provider roots and the per-request timeout.
type Endpoints struct {
	Censys     string
	Shodan     string
	VirusTotal string
	Timeout    time.Duration
}

// EndpointsFromEnv returns the public roots, replaced by any OSINTUI_*_URL
// variable that is set.
func EndpointsFromEnv() Endpoints {
	ep := Endpoints{
		Censys:     api.DefaultCensysURL,
		Shodan:     api.DefaultShodanURL,
		VirusTotal: api.DefaultVirusTotalURL,
		Timeout:    30 * time.Second,
	}
	if v := os.Getenv(CensysURLEnvVar); v != "" {
		ep.Censys = v
	}
	if v := os.Getenv(ShodanURLEnvVar); v != "" {
		ep.Shodan = v
	}
	if v := os.Getenv(VirusTotalURLEnvVar); v != "" {
		ep.VirusTotal = v
	}
	return ep
}

// Clients bundles one lookup per provider. A nil field means the provider
// has no credentials.
type Clients struct {
	Censys     CensysLookup
	Shodan     ShodanLookup
	VirusTotal VirusTotalLookup
}

// NewClients builds HTTP clients for every provider configured in keys.
func NewClients(keys config.Keys, ep Endpoints) Clients {
	var c Clients
	if keys.CensysConfigured() {
		c.Censys = api.NewCensysClient(ep.Censys, keys.CensysID, keys.CensysSecret, ep.Timeout)
	}
	if keys.ShodanConfigured() {
		c.Shodan = api.NewShodanClient(ep.Shodan, keys.Shodan, ep.Timeout)
	}
	if keys.VirusTotalConfigured() {
		c.VirusTotal = api.NewVirusTotalClient(ep.VirusTotal, keys.VirusTotal, ep.Timeout)
	}
	return c
}

// Enabled lists the providers with a client, in dispatch order.
func (c Clients) Enabled() []app.Provider {
	var out []app.Provider
	if c.Censys != nil {
		out = append(out, app.ProviderCensys)
	}
	if c.Shodan != nil {
		out = append(out, app.ProviderShodan)
	}
	if c.VirusTotal != nil {
		out = append(out, app.ProviderVirusTotal)
	}
	return out
}

// VirusTotalReport fetches the report for ip and then its comments. The
// comments are only requested when the report succeeded.
func VirusTotalReport(ctx context.Context, vt VirusTotalLookup, ip string) (*api.VirusTotalIP, []api.VirusTotalComment, error) {
	report, err := vt.IPReport(ctx, ip)
	if err != nil {
		return nil, nil, err
	}
	comments, err := vt.IPComments(ctx, ip)
	if err != nil {
		return nil, nil, err
	}
	if comments == nil {
		return report, nil, nil
	}
	return report, comments.Data, nil
}
