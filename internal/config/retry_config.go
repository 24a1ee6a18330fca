package config

// RetryConfig defines bounded retry behavior for transient transport errors.
// Semantic failures (missing contact, unknown platform) are never retried.
type RetryConfig struct {
	BaseDelaySecs int `json:"base_delay_secs,omitempty" yaml:"base_delay_secs,omitempty" validate:"omitempty,min=0"`
	MaxDelaySecs  int `json:"max_delay_secs,omitempty" yaml:"max_delay_secs,omitempty" validate:"omitempty,min=0"`
	MaxRetries    int `json:"max_retries,omitempty" yaml:"max_retries,omitempty" validate:"omitempty,min=0"`
}

// NewDefaultRetryConfig creates default retry configuration
func NewDefaultRetryConfig() RetryConfig {
	return RetryConfig{
		BaseDelaySecs: DefaultRetryBaseDelaySec,
		MaxDelaySecs:  DefaultRetryMaxDelaySec,
		MaxRetries:    DefaultRetryMaxRetries,
	}
}
