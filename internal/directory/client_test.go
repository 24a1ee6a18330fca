package directory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/aleister1102/stalewatch/internal/httpclient"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	httpClient, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)
	return NewClient(config.DirectoryConfig{
		BaseURL:      baseURL,
		ClientID:     "stalewatch",
		ClientSecret: "dir-secret",
	}, httpClient, zerolog.Nop())
}

func directoryHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/oauth/token":
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req["client_secret"] != "dir-secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"access_token": "tok-xyz", "expires_in": 3600}`))
		case "/api/v1/devices/C02ABC":
			assert.Equal(t, "Bearer tok-xyz", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"device": {"hardware_serial": "C02ABC", "assigned_to": {"email": "sully@example.com"}}}`))
		case "/api/v1/devices/ORPHAN":
			_, _ = w.Write([]byte(`{"device": {"hardware_serial": "ORPHAN", "assigned_to": {}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestAcquireTokenAndResolveContact(t *testing.T) {
	server := httptest.NewServer(directoryHandler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)

	token, err := client.AcquireToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz", token.AccessToken)

	contact, err := client.ResolveContact(context.Background(), token, "C02ABC")
	require.NoError(t, err)
	assert.Equal(t, "sully@example.com", contact.Email)
	assert.Equal(t, "C02ABC", contact.HardwareSerial)
}

func TestAcquireToken_BadCredentials(t *testing.T) {
	server := httptest.NewServer(directoryHandler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)
	client.cfg.ClientSecret = "wrong"

	_, err := client.AcquireToken(context.Background())
	require.Error(t, err)

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestAcquireToken_MissingAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"expires_in": 3600}`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).AcquireToken(context.Background())

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestResolveContact_NoAssignedContact(t *testing.T) {
	server := httptest.NewServer(directoryHandler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)
	token := Token{AccessToken: "tok-xyz"}

	_, err := client.ResolveContact(context.Background(), token, "ORPHAN")
	require.Error(t, err)

	var notFound *ContactNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "ORPHAN", notFound.HardwareSerial)
}

func TestResolveContact_DeviceNotEnrolled(t *testing.T) {
	server := httptest.NewServer(directoryHandler(t))
	defer server.Close()

	client := newTestClient(t, server.URL)
	token := Token{AccessToken: "tok-xyz"}

	_, err := client.ResolveContact(context.Background(), token, "UNKNOWN-SERIAL")

	var notFound *ContactNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestResolveContact_ServerErrorIsLookupError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).ResolveContact(context.Background(), Token{AccessToken: "tok-xyz"}, "C02ABC")
	require.Error(t, err)

	// A flaky directory backend is a per-host problem, not a credential one
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "C02ABC", lookupErr.HardwareSerial)

	var authErr *AuthError
	assert.False(t, errors.As(err, &authErr))
}

func TestResolveContact_TokenRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(t, server.URL).ResolveContact(context.Background(), Token{AccessToken: "stale"}, "C02ABC")

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}
