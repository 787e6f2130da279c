package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/osintui/internal/api"
	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/config"
)

func TestEndpointsFromEnv(t *testing.T) {
	t.Setenv(CensysURLEnvVar, "")
	t.Setenv(ShodanURLEnvVar, "http://127.0.0.1:9/shodan")
	t.Setenv(VirusTotalURLEnvVar, "")

	ep := EndpointsFromEnv()
	assert.Equal(t, api.DefaultCensysURL, ep.Censys)
	assert.Equal(t, "http://127.0.0.1:9/shodan", ep.Shodan)
	assert.Equal(t, api.DefaultVirusTotalURL, ep.VirusTotal)
	assert.Positive(t, ep.Timeout)
}

func TestNewClientsOnlyConfigured(t *testing.T) {
	c := NewClients(config.Keys{Shodan: "key", CensysID: "id"}, EndpointsFromEnv())
	assert.Nil(t, c.Censys)
	assert.NotNil(t, c.Shodan)
	assert.Nil(t, c.VirusTotal)
	assert.Equal(t, []app.Provider{app.ProviderShodan}, c.Enabled())
}

func TestNewClientsUseEndpoints(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		assert.Equal(t, "/shodan/host/1.2.3.4", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip_str":"1.2.3.4","ports":[22]}`))
	}))
	t.Cleanup(srv.Close)

	t.Setenv(ShodanURLEnvVar, srv.URL)
	c := NewClients(config.Keys{Shodan: "secret"}, EndpointsFromEnv())

	host, err := c.Shodan.Host(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, []int{22}, host.Ports)
}

func TestVirusTotalReportNilComments(t *testing.T) {
	vt := &fakeVirusTotal{report: &api.VirusTotalIP{ID: "x"}}
	report, comments, err := VirusTotalReport(context.Background(), vt, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", report.ID)
	assert.Nil(t, comments)
}
