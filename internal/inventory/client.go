package inventory

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

// Client queries the remote reporting backend for the fleet's observed OS
// versions, one row per host that has reported in.
type Client struct {
	cfg        config.InventoryConfig
	httpClient *httpclient.HTTPClient
	logger     zerolog.Logger
}

// NewClient creates a new inventory client
func NewClient(cfg config.InventoryConfig, httpClient *httpclient.HTTPClient, logger zerolog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "InventoryClient").Logger(),
	}
}

// hostRow is one row of the stored query's result set
type hostRow struct {
	HardwareSerial string `json:"hardware_serial"`
	OSVersion      string `json:"os_version"`
	Platform       string `json:"platform"`
}

type queryResultDocument struct {
	Results []hostRow `json:"results"`
}

// FetchHostReports returns one HostRecord per host, plus the count of rows
// dropped for missing fields.
//
// Partial-result policy: a row missing hardware_serial or os_version is a
// parse defect in that row, never a host that is "up to date" or "stale".
// Such rows are dropped individually with a WARN diagnostic and the run
// continues; only a transport/auth/decoding failure of the whole response
// aborts.
func (c *Client) FetchHostReports(ctx context.Context) ([]models.HostRecord, int, error) {
	url := fmt.Sprintf("%s/api/v1/queries/%s/results", c.cfg.BaseURL, c.cfg.QueryName)

	reqCtx := ctx
	if c.cfg.TimeoutSecs > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutSecs)*time.Second)
		defer cancel()
	}

	resp, err := c.httpClient.Do(&httpclient.HTTPRequest{
		Method: "GET",
		URL:    url,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.cfg.APIToken,
		},
		Context: reqCtx,
	})
	if err != nil {
		return nil, 0, &InventoryUnavailableError{URL: url, Reason: "transport failure", Err: err}
	}
	if resp.StatusCode == 401 || resp.StatusCode == 403 {
		return nil, 0, &InventoryUnavailableError{URL: url, Reason: fmt.Sprintf("authentication rejected (status %d)", resp.StatusCode)}
	}
	if !resp.IsSuccess() {
		return nil, 0, &InventoryUnavailableError{URL: url, Reason: fmt.Sprintf("non-success status %d", resp.StatusCode)}
	}

	var doc queryResultDocument
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return nil, 0, &InventoryUnavailableError{URL: url, Reason: "response is not valid JSON", Err: err}
	}

	records := make([]models.HostRecord, 0, len(doc.Results))
	dropped := 0
	for _, row := range doc.Results {
		if row.HardwareSerial == "" || row.OSVersion == "" {
			dropped++
			c.logger.Warn().
				Str("hardware_serial", row.HardwareSerial).
				Str("os_version", row.OSVersion).
				Str("platform", row.Platform).
				Msg("Dropping inventory row with missing fields")
			continue
		}
		records = append(records, models.HostRecord{
			HardwareSerial:  row.HardwareSerial,
			ObservedVersion: row.OSVersion,
			Platform:        models.ParsePlatform(row.Platform),
		})
	}

	c.logger.Info().
		Int("hosts", len(records)).
		Int("dropped_rows", dropped).
		Msg("Fetched host reports")

	return records, dropped, nil
}
