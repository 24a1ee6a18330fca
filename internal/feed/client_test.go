package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/aleister1102/stalewatch/internal/httpclient"
	"github.com/aleister1102/stalewatch/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sofaBody = `{
	"OSVersions": [
		{"OSVersion": "Sonoma 14", "Latest": {"ProductVersion": "14.5", "Build": "23F79"}},
		{"OSVersion": "Ventura 13", "Latest": {"ProductVersion": "13.7.1", "Build": "22H221"}}
	]
}`

func newTestClient(t *testing.T, cfg config.FeedConfig) *Client {
	t.Helper()
	httpClient, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)
	return NewClient(cfg, httpClient, zerolog.Nop())
}

func TestFetchLatestVersions_SOFAFormat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sofaBody))
	}))
	defer server.Close()

	client := newTestClient(t, config.FeedConfig{
		Endpoints: []config.FeedEndpointConfig{
			{Platform: "macos", URL: server.URL, Format: "sofa"},
		},
	})

	latest, err := client.FetchLatestVersions(context.Background())
	require.NoError(t, err)

	assert.True(t, latest.Contains(models.PlatformMacOS, "14.5"))
	assert.True(t, latest.Contains(models.PlatformMacOS, "13.7.1"))
	assert.False(t, latest.Contains(models.PlatformMacOS, "14.4"))
}

func TestFetchLatestVersions_SimpleFormatAndMerge(t *testing.T) {
	macServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"platform": "macos", "versions": ["14.5"]}`))
	}))
	defer macServer.Close()
	chromeServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"platform": "chromeos", "versions": ["126.0.6478.132"]}`))
	}))
	defer chromeServer.Close()

	client := newTestClient(t, config.FeedConfig{
		Endpoints: []config.FeedEndpointConfig{
			{Platform: "macos", URL: macServer.URL},
			{Platform: "chromeos", URL: chromeServer.URL},
		},
	})

	latest, err := client.FetchLatestVersions(context.Background())
	require.NoError(t, err)

	assert.True(t, latest.HasPlatform(models.PlatformMacOS))
	assert.True(t, latest.Contains(models.PlatformChromeOS, "126.0.6478.132"))
}

func TestFetchLatestVersions_UnreachableFeed(t *testing.T) {
	client := newTestClient(t, config.FeedConfig{
		Endpoints: []config.FeedEndpointConfig{
			{Platform: "macos", URL: "http://127.0.0.1:1/feed.json"},
		},
	})

	_, err := client.FetchLatestVersions(context.Background())
	require.Error(t, err)

	var unavailable *FeedUnavailableError
	assert.ErrorAs(t, err, &unavailable)
	assert.Equal(t, models.PlatformMacOS, unavailable.Platform)
}

func TestFetchLatestVersions_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, config.FeedConfig{
		Endpoints: []config.FeedEndpointConfig{{Platform: "macos", URL: server.URL}},
	})

	_, err := client.FetchLatestVersions(context.Background())

	var unavailable *FeedUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestFetchLatestVersions_ParseErrors(t *testing.T) {
	cases := []struct {
		name   string
		format string
		body   string
	}{
		{"not json", "simple", "<html>oops</html>"},
		{"missing versions", "simple", `{"platform": "macos"}`},
		{"empty versions", "simple", `{"platform": "macos", "versions": []}`},
		{"sofa missing tracks", "sofa", `{}`},
		{"sofa missing product version", "sofa", `{"OSVersions": [{"OSVersion": "Sonoma 14", "Latest": {"Build": "23F79"}}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := newTestClient(t, config.FeedConfig{
				Endpoints: []config.FeedEndpointConfig{{Platform: "macos", URL: server.URL, Format: tc.format}},
			})

			_, err := client.FetchLatestVersions(context.Background())
			require.Error(t, err)

			var parseErr *FeedParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestFetchPlatformVersions_NoFeedConfigured(t *testing.T) {
	client := newTestClient(t, config.FeedConfig{})

	_, err := client.FetchPlatformVersions(context.Background(), models.PlatformWindows)

	var unavailable *FeedUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}
