package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_HeadersAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "stalewatch-test/0.1", r.Header.Get("User-Agent"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithUserAgent("stalewatch-test/0.1").
		Build()
	require.NoError(t, err)

	resp, err := client.Do(&HTTPRequest{
		Method:  "GET",
		URL:     server.URL,
		Headers: map[string]string{"Authorization": "Bearer token-123"},
	})
	require.NoError(t, err)

	assert.True(t, resp.IsSuccess())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestHTTPClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = client.Do(&HTTPRequest{Method: "GET", URL: server.URL, Context: ctx})
	assert.Error(t, err)
}

func TestHTTPClient_NetworkErrorIsTyped(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).WithTimeout(100 * time.Millisecond).Build()
	require.NoError(t, err)

	_, err = client.Do(&HTTPRequest{Method: "GET", URL: "http://127.0.0.1:1"})
	assert.Error(t, err)
}
