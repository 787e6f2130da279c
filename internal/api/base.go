package api

// Default provider roots.
const (
	DefaultCensysURL     = "https://search.censys.io/api/v2"
	DefaultShodanURL     = "https://api.shodan.io"
	DefaultVirusTotalURL = "https://www.virustotal.com/api/v3"
)
