package config

// DedupeConfig defines the optional notification dedupe store. When enabled,
// a delivered reminder is recorded with a TTL and identical reminders are
// suppressed until the TTL expires. Disabled by default: the pipeline itself
// is stateless and two identical runs send two identical messages.
type DedupeConfig struct {
	DBPath   string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	TTLHours int    `json:"ttl_hours,omitempty" yaml:"ttl_hours,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultDedupeConfig creates default dedupe configuration
func NewDefaultDedupeConfig() DedupeConfig {
	return DedupeConfig{
		DBPath:   DefaultDedupeDBPath,
		Enabled:  false,
		TTLHours: DefaultDedupeTTLHours,
	}
}

// NotificationConfig defines configuration for chat delivery.
// BotToken is populated from STALEWATCH_CHAT_BOT_TOKEN, never from file.
type NotificationConfig struct {
	BotToken    string       `json:"-" yaml:"-"`
	ChatBaseURL string       `json:"chat_base_url,omitempty" yaml:"chat_base_url,omitempty" validate:"omitempty,url"`
	Dedupe      DedupeConfig `json:"dedupe,omitempty" yaml:"dedupe,omitempty"`
	TimeoutSecs int          `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		Dedupe:      NewDefaultDedupeConfig(),
		TimeoutSecs: DefaultChatTimeoutSecs,
	}
}
