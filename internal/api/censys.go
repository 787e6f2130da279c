package api

import (
	"context"
	"net/http"
	"time"
)

// CensysClient queries the Censys Search v2 hosts endpoint.
type CensysClient struct {
	*Client
}

// NewCensysClient creates a client that authenticates with HTTP basic auth.
func NewCensysClient(baseURL, apiID, apiSecret string, timeout ...time.Duration) *CensysClient {
	return &CensysClient{
		Client: NewClient(baseURL, func(r *http.Request) {
			r.SetBasicAuth(apiID, apiSecret)
		}, timeout...),
	}
}

// Host returns everything Censys knows about ip.
func (c *CensysClient) Host(ctx context.Context, ip string) (*CensysHost, error) {
	var resp censysEnvelope
	if err := c.get(ctx, hostPath("/hosts/", ip), &resp); err != nil {
		return nil, err
	}
	return &resp.Result, nil
}
