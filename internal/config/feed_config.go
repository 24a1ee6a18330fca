package config

// FeedEndpointConfig describes one upstream "latest known-good version" feed.
// Format selects the decoder used to normalize the upstream document into a
// set of version strings: "simple" expects {"platform": ..., "versions":
// [...]}, "sofa" expects the macOS SOFA-style {"OSVersions": [{"Latest":
// {"ProductVersion": ...}}]} shape.
type FeedEndpointConfig struct {
	Format   string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,feedformat"`
	Platform string `json:"platform" yaml:"platform" validate:"required,platform"`
	URL      string `json:"url" yaml:"url" validate:"required,url"`
}

// FeedConfig defines configuration for the version feed adapter
type FeedConfig struct {
	Endpoints   []FeedEndpointConfig `json:"endpoints,omitempty" yaml:"endpoints,omitempty" validate:"omitempty,dive"`
	TimeoutSecs int                  `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultFeedConfig creates default feed configuration
func NewDefaultFeedConfig() FeedConfig {
	return FeedConfig{
		Endpoints:   []FeedEndpointConfig{},
		TimeoutSecs: DefaultFeedTimeoutSecs,
	}
}
