package api

import (
	"context"
	"net/http"
	"time"
)

// VirusTotalClient queries the VirusTotal v3 IP address endpoints.
type VirusTotalClient struct {
	*Client
}

// NewVirusTotalClient creates a client that sends the x-apikey header.
func NewVirusTotalClient(baseURL, apiKey string, timeout ...time.Duration) *VirusTotalClient {
	return &VirusTotalClient{
		Client: NewClient(baseURL, func(r *http.Request) {
			r.Header.Set("x-apikey", apiKey)
		}, timeout...),
	}
}

// IPReport returns the analysis report for ip.
func (c *VirusTotalClient) IPReport(ctx context.Context, ip string) (*VirusTotalIP, error) {
	var resp virusTotalEnvelope
	if err := c.get(ctx, hostPath("/ip_addresses/", ip), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// IPComments returns the first page of community comments for ip.
func (c *VirusTotalClient) IPComments(ctx context.Context, ip string) (*VirusTotalComments, error) {
	var resp VirusTotalComments
	if err := c.get(ctx, hostPath("/ip_addresses/", ip)+"/comments", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
