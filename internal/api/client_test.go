package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func testServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientSendsAuthorizationHook(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "token", r.Header.Get("X-Test"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = io.WriteString(w, `{"ok":true}`)
	})
	client := NewClient(srv.URL, func(r *http.Request) { r.Header.Set("X-Test", "token") })

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, client.get(context.Background(), "/anything", &out))
	assert.True(t, out.OK)
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	client := NewClient("https://example.test/api/", nil)
	assert.Equal(t, "https://example.test/api", client.BaseURL())
}

func TestClientNotFoundMatchesSentinel(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"No information available for that IP."}`)
	})
	client := NewClient(srv.URL, nil)

	err := client.get(context.Background(), "/missing", &struct{}{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Equal(t, "No information available for that IP.", statusErr.Message)
}

func TestClientServerErrorIsNotNotFound(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"code":"InternalError","message":"backend down"}}`)
	})
	client := NewClient(srv.URL, nil)

	err := client.get(context.Background(), "/boom", &struct{}{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "HTTP 500: InternalError: backend down", err.Error())
}

func TestClientErrorBodyFallsBackToRawText(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream exploded\n")
	})
	client := NewClient(srv.URL, nil)

	err := client.get(context.Background(), "/", &struct{}{})
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: upstream exploded", err.Error())
}

func TestClientEmptyErrorBody(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	client := NewClient(srv.URL, nil)

	err := client.get(context.Background(), "/", &struct{}{})
	require.Error(t, err)
	assert.Equal(t, "HTTP 401", err.Error())
}

func TestClientHandlesMalformedJSON(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"ip":`)
	})
	client := NewClient(srv.URL, nil)

	err := client.get(context.Background(), "/", &struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClientTransportError(t *testing.T) {
	client := NewClient("http://provider.invalid", nil)
	client.httpClient.Transport = roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial refused")
	})

	err := client.get(context.Background(), "/", &struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.Contains(t, err.Error(), "dial refused")
}

func TestClientTimeoutOverride(t *testing.T) {
	client := NewClient("http://x", nil, 5*time.Second)
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)

	client = NewClient("http://x", nil)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestExtractAPIErrorBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
		ok   bool
	}{
		{name: "string error", body: `{"error":"bad key"}`, want: "bad key", ok: true},
		{name: "nested error", body: `{"error":{"code":"NotFoundError","message":"gone"}}`, want: "NotFoundError: gone", ok: true},
		{name: "detail", body: `{"detail":"Unauthorized"}`, want: "Unauthorized", ok: true},
		{name: "censys style", body: `{"code":403,"status":"Forbidden","error_type":"forbidden","message":"quota"}`, want: "forbidden: quota", ok: true},
		{name: "blank", body: `{"error":"   "}`, ok: false},
		{name: "not json", body: `<html>`, ok: false},
		{name: "empty", body: ``, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractAPIErrorBody([]byte(tt.body))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHostPathKeepsIPv6Readable(t *testing.T) {
	assert.Equal(t, "/hosts/2001:db8::1", hostPath("/hosts/", "2001:db8::1"))
	assert.True(t, strings.HasSuffix(hostPath("/x/", "a/b"), "a%2Fb"))
}
