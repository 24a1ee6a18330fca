package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/aleister1102/stalewatch/internal/httpclient"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatClient(t *testing.T, baseURL string) *ChatClient {
	t.Helper()
	httpClient, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)
	return NewChatClient(config.NotificationConfig{
		ChatBaseURL: baseURL,
		BotToken:    "chat-token",
	}, httpClient, zerolog.Nop())
}

func chatHandler(t *testing.T, posted *[]postMessageRequest) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer chat-token", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/users.lookupByEmail":
			if r.URL.Query().Get("email") == "sully@example.com" {
				_, _ = w.Write([]byte(`{"ok": true, "user": {"id": "U123"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"ok": false, "error": "users_not_found"}`))
		case "/chat.postMessage":
			var req postMessageRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if posted != nil {
				*posted = append(*posted, req)
			}
			_, _ = w.Write([]byte(`{"ok": true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestLookupUserByEmail(t *testing.T) {
	server := httptest.NewServer(chatHandler(t, nil))
	defer server.Close()

	userID, err := newTestChatClient(t, server.URL).LookupUserByEmail(context.Background(), "sully@example.com")
	require.NoError(t, err)
	assert.Equal(t, "U123", userID)
}

func TestLookupUserByEmail_NotOnPlatform(t *testing.T) {
	server := httptest.NewServer(chatHandler(t, nil))
	defer server.Close()

	_, err := newTestChatClient(t, server.URL).LookupUserByEmail(context.Background(), "ghost@example.com")
	require.Error(t, err)

	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Contains(t, deliveryErr.Reason, "users_not_found")
}

func TestPostDirectMessage(t *testing.T) {
	var posted []postMessageRequest
	server := httptest.NewServer(chatHandler(t, &posted))
	defer server.Close()

	err := newTestChatClient(t, server.URL).PostDirectMessage(context.Background(), "U123", "sully@example.com", "update your laptop")
	require.NoError(t, err)

	require.Len(t, posted, 1)
	assert.Equal(t, "U123", posted[0].Channel)
	assert.Equal(t, "update your laptop", posted[0].Text)
}

func TestPostDirectMessage_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok": false, "error": "ratelimited"}`))
	}))
	defer server.Close()

	err := newTestChatClient(t, server.URL).PostDirectMessage(context.Background(), "U123", "sully@example.com", "hi")

	var deliveryErr *DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	assert.Contains(t, deliveryErr.Reason, "ratelimited")
}
