package api

// --- Censys ---

// censysEnvelope wraps every Censys v2 response.
type censysEnvelope struct {
	Code   int        `json:"code"`
	Status string     `json:"status"`
	Result CensysHost `json:"result"`
}

// CensysHost is the result of a Censys host lookup.
type CensysHost struct {
	IP                        string          `json:"ip"`
	Services                  []CensysService `json:"services"`
	Location                  CensysLocation  `json:"location"`
	AutonomousSystem          CensysAS        `json:"autonomous_system"`
	OperatingSystem           *CensysOS       `json:"operating_system,omitempty"`
	LocationUpdatedAt         *string         `json:"location_updated_at,omitempty"`
	AutonomousSystemUpdatedAt *string         `json:"autonomous_system_updated_at,omitempty"`
	LastUpdatedAt             *string         `json:"last_updated_at,omitempty"`
	DNS                       *CensysDNS      `json:"dns,omitempty"`
}

// CensysService is one open service on a host.
type CensysService struct {
	Port                *int    `json:"port,omitempty"`
	ServiceName         *string `json:"service_name,omitempty"`
	TransportProtocol   *string `json:"transport_protocol,omitempty"`
	ExtendedServiceName *string `json:"extended_service_name,omitempty"`
	Certificate         *string `json:"certificate,omitempty"`
}

// CensysLocation is the geolocation block of a host.
type CensysLocation struct {
	Continent             *string            `json:"continent,omitempty"`
	Country               *string            `json:"country,omitempty"`
	CountryCode           *string            `json:"country_code,omitempty"`
	City                  *string            `json:"city,omitempty"`
	PostalCode            *string            `json:"postal_code,omitempty"`
	Timezone              *string            `json:"timezone,omitempty"`
	Coordinates           *CensysCoordinates `json:"coordinates,omitempty"`
	RegisteredCountry     *string            `json:"registered_country,omitempty"`
	RegisteredCountryCode *string            `json:"registered_country_code,omitempty"`
}

// CensysCoordinates is a latitude/longitude pair.
type CensysCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CensysAS describes the announcing autonomous system.
type CensysAS struct {
	ASN         *int    `json:"asn,omitempty"`
	Description *string `json:"description,omitempty"`
	BGPPrefix   *string `json:"bgp_prefix,omitempty"`
	Name        *string `json:"name,omitempty"`
	CountryCode *string `json:"country_code,omitempty"`
}

// CensysOS is the detected operating system.
type CensysOS struct {
	Product string  `json:"product"`
	Vendor  *string `json:"vendor,omitempty"`
	Version *string `json:"version,omitempty"`
	Edition *string `json:"edition,omitempty"`
}

// CensysDNS carries reverse DNS names when Censys has them.
type CensysDNS struct {
	ReverseDNS *struct {
		Names []string `json:"names"`
	} `json:"reverse_dns,omitempty"`
}

// --- Shodan ---

// ShodanHost is the result of a Shodan host lookup.
type ShodanHost struct {
	IPStr       *string         `json:"ip_str,omitempty"`
	Org         *string         `json:"org,omitempty"`
	ISP         *string         `json:"isp,omitempty"`
	ASN         *string         `json:"asn,omitempty"`
	OS          *string         `json:"os,omitempty"`
	Domains     []string        `json:"domains,omitempty"`
	Hostnames   []string        `json:"hostnames,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Ports       []int           `json:"ports,omitempty"`
	Vulns       []string        `json:"vulns,omitempty"`
	Data        []ShodanService `json:"data,omitempty"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	City        *string         `json:"city,omitempty"`
	RegionCode  *string         `json:"region_code,omitempty"`
	CountryCode *string         `json:"country_code,omitempty"`
	CountryName *string         `json:"country_name,omitempty"`
	LastUpdate  *string         `json:"last_update,omitempty"`
}

// ShodanService is one banner collected by Shodan.
type ShodanService struct {
	Port      int     `json:"port"`
	Transport *string `json:"transport,omitempty"`
	Product   *string `json:"product,omitempty"`
	Version   *string `json:"version,omitempty"`
	Banner    *string `json:"data,omitempty"`
	Timestamp *string `json:"timestamp,omitempty"`
}

// --- VirusTotal ---

type virusTotalEnvelope struct {
	Data VirusTotalIP `json:"data"`
}

// VirusTotalIP is the IP address report object.
type VirusTotalIP struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Attributes VirusTotalIPAttributes `json:"attributes"`
}

// VirusTotalIPAttributes holds the report fields the dashboard shows.
type VirusTotalIPAttributes struct {
	ASOwner             *string                             `json:"as_owner,omitempty"`
	ASN                 *int                                `json:"asn,omitempty"`
	Continent           *string                             `json:"continent,omitempty"`
	Country             *string                             `json:"country,omitempty"`
	Network             *string                             `json:"network,omitempty"`
	RegionalRegistry    *string                             `json:"regional_internet_registry,omitempty"`
	Reputation          *int                                `json:"reputation,omitempty"`
	Whois               *string                             `json:"whois,omitempty"`
	WhoisDate           *int64                              `json:"whois_date,omitempty"`
	LastAnalysisDate    *int64                              `json:"last_analysis_date,omitempty"`
	TotalVotes          VirusTotalVotes                     `json:"total_votes"`
	LastAnalysisStats   VirusTotalAnalysisStats             `json:"last_analysis_stats"`
	LastAnalysisResults map[string]VirusTotalAnalysisResult `json:"last_analysis_results,omitempty"`
}

// VirusTotalVotes counts community verdicts.
type VirusTotalVotes struct {
	Harmless  int `json:"harmless"`
	Malicious int `json:"malicious"`
}

// VirusTotalAnalysisStats counts engine verdicts by category.
type VirusTotalAnalysisStats struct {
	Harmless   int `json:"harmless"`
	Malicious  int `json:"malicious"`
	Suspicious int `json:"suspicious"`
	Timeout    int `json:"timeout"`
	Undetected int `json:"undetected"`
}

// VirusTotalAnalysisResult is one engine's verdict.
type VirusTotalAnalysisResult struct {
	EngineName string `json:"engine_name"`
	Category   string `json:"category"`
	Method     string `json:"method,omitempty"`
	Result     string `json:"result"`
}

// VirusTotalComments is a page of community comments.
type VirusTotalComments struct {
	Data []VirusTotalComment `json:"data"`
	Meta *struct {
		Cursor string `json:"cursor,omitempty"`
	} `json:"meta,omitempty"`
}

// VirusTotalComment is a single community comment.
type VirusTotalComment struct {
	ID         string                      `json:"id"`
	Attributes VirusTotalCommentAttributes `json:"attributes"`
}

// VirusTotalCommentAttributes holds comment content and votes.
type VirusTotalCommentAttributes struct {
	Date  int64    `json:"date"`
	Text  string   `json:"text"`
	Tags  []string `json:"tags,omitempty"`
	Votes struct {
		Positive int `json:"positive"`
		Negative int `json:"negative"`
		Abuse    int `json:"abuse"`
	} `json:"votes"`
}
