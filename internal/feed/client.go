package feed

import (
	"context"
	"strings"
	"time"

	"github.com/aleister1102/stalewatch/internal/common"
	"github.com/aleister1102/stalewatch/internal/config"
	"github.com/aleister1102/stalewatch/internal/httpclient"
	"github.com/aleister1102/stalewatch/internal/models"
	"github.com/rs/zerolog"
)

// Client normalizes one or more upstream "latest known-good version" feeds
// into a platform-keyed set of current versions.
type Client struct {
	cfg        config.FeedConfig
	httpClient *httpclient.HTTPClient
	logger     zerolog.Logger
}

// NewClient creates a new feed client
func NewClient(cfg config.FeedConfig, httpClient *httpclient.HTTPClient, logger zerolog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger.With().Str("component", "FeedClient").Logger(),
	}
}

// FetchLatestVersions fetches every configured feed and merges the results
// into one LatestVersionSet. Any endpoint failing fails the whole fetch: a
// partially-populated set would silently turn "cannot evaluate platform X"
// into "no hosts on X are stale".
func (c *Client) FetchLatestVersions(ctx context.Context) (models.LatestVersionSet, error) {
	latest := make(models.LatestVersionSet)

	for _, endpoint := range c.cfg.Endpoints {
		platform := models.ParsePlatform(endpoint.Platform)
		set, err := c.fetchEndpoint(ctx, endpoint, platform)
		if err != nil {
			return nil, err
		}
		latest.Merge(platform, set)

		c.logger.Info().
			Str("platform", platform.String()).
			Strs("versions", set.Versions()).
			Msg("Fetched current versions")
	}

	return latest, nil
}

// FetchPlatformVersions fetches only the feeds configured for one platform
func (c *Client) FetchPlatformVersions(ctx context.Context, platform models.Platform) (models.VersionSet, error) {
	merged := make(models.VersionSet)
	found := false

	for _, endpoint := range c.cfg.Endpoints {
		if models.ParsePlatform(endpoint.Platform) != platform {
			continue
		}
		found = true
		set, err := c.fetchEndpoint(ctx, endpoint, platform)
		if err != nil {
			return nil, err
		}
		for v := range set {
			merged[v] = struct{}{}
		}
	}

	if !found {
		return nil, &FeedUnavailableError{
			Platform: platform,
			Err:      common.NewError("no feed configured for platform '%s'", platform),
		}
	}
	return merged, nil
}

func (c *Client) fetchEndpoint(ctx context.Context, endpoint config.FeedEndpointConfig, platform models.Platform) (models.VersionSet, error) {
	reqCtx := ctx
	if c.cfg.TimeoutSecs > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutSecs)*time.Second)
		defer cancel()
	}

	resp, err := c.httpClient.Do(&httpclient.HTTPRequest{
		Method:  "GET",
		URL:     endpoint.URL,
		Context: reqCtx,
	})
	if err != nil {
		return nil, &FeedUnavailableError{Platform: platform, URL: endpoint.URL, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &FeedUnavailableError{
			Platform: platform,
			URL:      endpoint.URL,
			Err:      common.NewHTTPErrorWithURL(resp.StatusCode, "non-success status from feed", endpoint.URL),
		}
	}

	set, reason, decodeErr := c.decode(endpoint.Format, resp.Body)
	if reason != "" || decodeErr != nil {
		return nil, &FeedParseError{Platform: platform, URL: endpoint.URL, Reason: reason, Err: decodeErr}
	}
	return set, nil
}

func (c *Client) decode(format string, body []byte) (models.VersionSet, string, error) {
	switch strings.ToLower(format) {
	case "sofa":
		return decodeSOFA(body)
	default:
		return decodeSimple(body)
	}
}
