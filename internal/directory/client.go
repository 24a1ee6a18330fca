package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/aleister1102/stalewatch/internal/httpclient"
	"github.com/aleister1102/stalewatch/internal/models"
	"github.com/rs/zerolog"
)

// Token is a short-lived directory credential. It is acquired once per run,
// shared read-only across concurrent resolver calls, and never cached across
// runs; expiry is the directory's concern.
type Token struct {
	AccessToken string
	ExpiresIn   int
}

// Client resolves a hardware serial to the responsible contact through the
// device-management directory.
type Client struct {
	cfg        config.DirectoryConfig
	httpClient *httpclient.HTTPClient
	logger     zerolog.Logger
}

// NewClient creates a new directory client
func NewClient(cfg config.DirectoryConfig, httpClient *httpclient.HTTPClient, logger zerolog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "DirectoryClient").Logger(),
	}
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	GrantType    string `json:"grant_type"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// AcquireToken exchanges the configured service credentials for a short-lived
// bearer token.
func (c *Client) AcquireToken(ctx context.Context) (Token, error) {
	url := c.cfg.BaseURL + "/api/v1/oauth/token"

	body, err := json.Marshal(tokenRequest{
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		GrantType:    "client_credentials",
	})
	if err != nil {
		return Token{}, &AuthError{URL: url, Reason: "failed to encode token request", Err: err}
	}

	reqCtx := ctx
	if c.cfg.TimeoutSecs > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutSecs)*time.Second)
		defer cancel()
	}

	resp, err := c.httpClient.Do(&httpclient.HTTPRequest{
		Method:  "POST",
		URL:     url,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
		Context: reqCtx,
	})
	if err != nil {
		return Token{}, &AuthError{URL: url, Reason: "transport failure", Err: err}
	}
	if !resp.IsSuccess() {
		return Token{}, &AuthError{URL: url, Reason: fmt.Sprintf("token endpoint returned status %d", resp.StatusCode)}
	}

	var doc tokenResponse
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return Token{}, &AuthError{URL: url, Reason: "token response is not valid JSON", Err: err}
	}
	if doc.AccessToken == "" {
		return Token{}, &AuthError{URL: url, Reason: "token response missing 'access_token'"}
	}

	c.logger.Debug().Int("expires_in", doc.ExpiresIn).Msg("Acquired directory token")
	return Token{AccessToken: doc.AccessToken, ExpiresIn: doc.ExpiresIn}, nil
}

type deviceResponse struct {
	Device struct {
		HardwareSerial string `json:"hardware_serial"`
		AssignedTo     struct {
			Email string `json:"email"`
		} `json:"assigned_to"`
	} `json:"device"`
}

// ResolveContact looks up the device record keyed by hardware serial and
// extracts the assigned contact's email address.
func (c *Client) ResolveContact(ctx context.Context, token Token, hardwareSerial string) (models.Contact, error) {
	url := fmt.Sprintf("%s/api/v1/devices/%s", c.cfg.BaseURL, hardwareSerial)

	reqCtx := ctx
	if c.cfg.TimeoutSecs > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutSecs)*time.Second)
		defer cancel()
	}

	resp, err := c.httpClient.Do(&httpclient.HTTPRequest{
		Method:  "GET",
		URL:     url,
		Headers: map[string]string{"Authorization": "Bearer " + token.AccessToken},
		Context: reqCtx,
	})
	if err != nil {
		return models.Contact{}, &LookupError{HardwareSerial: hardwareSerial, URL: url, Reason: "transport failure", Err: err}
	}
	if resp.StatusCode == 401 || resp.StatusCode == 403 {
		return models.Contact{}, &AuthError{URL: url, Reason: fmt.Sprintf("token rejected (status %d)", resp.StatusCode)}
	}
	if resp.StatusCode == 404 {
		return models.Contact{}, &ContactNotFoundError{HardwareSerial: hardwareSerial, Reason: "device not enrolled in directory"}
	}
	if !resp.IsSuccess() {
		return models.Contact{}, &LookupError{HardwareSerial: hardwareSerial, URL: url, Reason: fmt.Sprintf("device lookup returned status %d", resp.StatusCode)}
	}

	var doc deviceResponse
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return models.Contact{}, &ContactNotFoundError{HardwareSerial: hardwareSerial, Reason: "device record is not valid JSON"}
	}
	if doc.Device.AssignedTo.Email == "" {
		return models.Contact{}, &ContactNotFoundError{HardwareSerial: hardwareSerial, Reason: "device has no assigned contact"}
	}

	return models.Contact{
		Email:          doc.Device.AssignedTo.Email,
		HardwareSerial: hardwareSerial,
	}, nil
}
