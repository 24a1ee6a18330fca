package config

// GlobalConfig aggregates all component configurations
type GlobalConfig struct {
	DirectoryConfig    DirectoryConfig    `json:"directory_config,omitempty" yaml:"directory_config,omitempty"`
	FeedConfig         FeedConfig         `json:"feed_config,omitempty" yaml:"feed_config,omitempty"`
	InventoryConfig    InventoryConfig    `json:"inventory_config,omitempty" yaml:"inventory_config,omitempty"`
	LogConfig          LogConfig          `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	NotificationConfig NotificationConfig `json:"notification_config,omitempty" yaml:"notification_config,omitempty"`
	RetryConfig        RetryConfig        `json:"retry_config,omitempty" yaml:"retry_config,omitempty"`
	RunnerConfig       RunnerConfig       `json:"runner_config,omitempty" yaml:"runner_config,omitempty"`
}

// NewDefaultGlobalConfig creates a GlobalConfig populated with defaults
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DirectoryConfig:    NewDefaultDirectoryConfig(),
		FeedConfig:         NewDefaultFeedConfig(),
		InventoryConfig:    NewDefaultInventoryConfig(),
		LogConfig:          NewDefaultLogConfig(),
		NotificationConfig: NewDefaultNotificationConfig(),
		RetryConfig:        NewDefaultRetryConfig(),
		RunnerConfig:       NewDefaultRunnerConfig(),
	}
}
