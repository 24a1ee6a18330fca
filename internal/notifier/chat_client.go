package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/aleister1102/stalewatch/internal/httpclient"
	"github.com/rs/zerolog"
)

// ChatClient talks to the chat platform's web API. The directory hands us an
// email address, which is a directory identity, not a chat identity: the
// client first maps the email to a chat user ID, then posts a direct message
// to that user.
type ChatClient struct {
	cfg        config.NotificationConfig
	httpClient *httpclient.HTTPClient
	logger     zerolog.Logger
}

// NewChatClient creates a new chat client
func NewChatClient(cfg config.NotificationConfig, httpClient *httpclient.HTTPClient, logger zerolog.Logger) *ChatClient {
	return &ChatClient{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "ChatClient").Logger(),
	}
}

// apiEnvelope is the chat API's response wrapper: HTTP 200 with ok=false and
// a machine-readable error string on semantic failures.
type apiEnvelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type lookupResponse struct {
	apiEnvelope
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

// LookupUserByEmail maps a directory email to the chat platform's user ID
func (c *ChatClient) LookupUserByEmail(ctx context.Context, email string) (string, error) {
	reqURL := fmt.Sprintf("%s/users.lookupByEmail?email=%s", c.cfg.ChatBaseURL, url.QueryEscape(email))

	resp, err := c.doGet(ctx, reqURL)
	if err != nil {
		return "", &DeliveryError{Email: email, Reason: "user lookup transport failure", Err: err}
	}

	var doc lookupResponse
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return "", &DeliveryError{Email: email, Reason: "user lookup response is not valid JSON", Err: err}
	}
	if !doc.OK {
		return "", &DeliveryError{Email: email, Reason: fmt.Sprintf("user lookup rejected: %s", doc.Error)}
	}
	if doc.User.ID == "" {
		return "", &DeliveryError{Email: email, Reason: "user lookup response missing user id"}
	}

	return doc.User.ID, nil
}

type postMessageRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// PostDirectMessage sends a text message to the given chat user
func (c *ChatClient) PostDirectMessage(ctx context.Context, userID, email, text string) error {
	reqURL := c.cfg.ChatBaseURL + "/chat.postMessage"

	body, err := json.Marshal(postMessageRequest{Channel: userID, Text: text})
	if err != nil {
		return &DeliveryError{Email: email, Reason: "failed to encode message", Err: err}
	}

	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	resp, err := c.httpClient.Do(&httpclient.HTTPRequest{
		Method: "POST",
		URL:    reqURL,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.cfg.BotToken,
			"Content-Type":  "application/json",
		},
		Body:    body,
		Context: reqCtx,
	})
	if err != nil {
		return &DeliveryError{Email: email, Reason: "message post transport failure", Err: err}
	}
	if !resp.IsSuccess() {
		return &DeliveryError{Email: email, Reason: fmt.Sprintf("message post returned status %d", resp.StatusCode)}
	}

	var doc apiEnvelope
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return &DeliveryError{Email: email, Reason: "message post response is not valid JSON", Err: err}
	}
	if !doc.OK {
		return &DeliveryError{Email: email, Reason: fmt.Sprintf("message post rejected: %s", doc.Error)}
	}

	return nil
}

func (c *ChatClient) doGet(ctx context.Context, reqURL string) (*httpclient.HTTPResponse, error) {
	reqCtx, cancel := c.requestContext(ctx)
	defer cancel()

	resp, err := c.httpClient.Do(&httpclient.HTTPRequest{
		Method: "GET",
		URL:    reqURL,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.cfg.BotToken,
		},
		Context: reqCtx,
	})
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("chat API returned status %d", resp.StatusCode)
	}
	return resp, nil
}

func (c *ChatClient) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.TimeoutSecs <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutSecs)*time.Second)
}
