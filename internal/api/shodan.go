package api

import (
	"context"
	"net/http"
	"time"
)

// ShodanClient queries the Shodan host endpoint.
type ShodanClient struct {
	*Client
}

// NewShodanClient creates a client that passes the API key as a query parameter.
func NewShodanClient(baseURL, apiKey string, timeout ...time.Duration) *ShodanClient {
	return &ShodanClient{
		Client: NewClient(baseURL, func(r *http.Request) {
			q := r.URL.Query()
			q.Set("key", apiKey)
			r.URL.RawQuery = q.Encode()
		}, timeout...),
	}
}

// Host returns the Shodan host record for ip.
func (c *ShodanClient) Host(ctx context.Context, ip string) (*ShodanHost, error) {
	var host ShodanHost
	if err := c.get(ctx, hostPath("/shodan/host/", ip), &host); err != nil {
		return nil, err
	}
	return &host, nil
}
