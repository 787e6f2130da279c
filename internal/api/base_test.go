package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClientsUseProviderRoots(t *testing.T) {
	var got []string
	transport := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		got = append(got, r.URL.String())
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
			Header:     make(http.Header),
		}, nil
	})

	censys := NewCensysClient(DefaultCensysURL, "id", "secret")
	censys.httpClient.Transport = transport
	shodan := NewShodanClient(DefaultShodanURL, "key")
	shodan.httpClient.Transport = transport
	vt := NewVirusTotalClient(DefaultVirusTotalURL, "key")
	vt.httpClient.Transport = transport

	ctx := context.Background()
	_, err := censys.Host(ctx, "1.2.3.4")
	require.NoError(t, err)
	_, err = shodan.Host(ctx, "1.2.3.4")
	require.NoError(t, err)
	_, err = vt.IPReport(ctx, "1.2.3.4")
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, DefaultCensysURL+"/hosts/1.2.3.4", got[0])
	assert.Equal(t, DefaultShodanURL+"/shodan/host/1.2.3.4?key=key", got[1])
	assert.Equal(t, DefaultVirusTotalURL+"/ip_addresses/1.2.3.4", got[2])
}
