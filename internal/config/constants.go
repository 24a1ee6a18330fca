package config

const (
	// Feed Defaults
	DefaultFeedTimeoutSecs = 15
	DefaultFeedFormat      = "simple"

	// Inventory Defaults
	DefaultInventoryTimeoutSecs = 30

	// Directory Defaults
	DefaultDirectoryTimeoutSecs = 15

	// Notification Defaults
	DefaultChatTimeoutSecs = 20
	DefaultDedupeTTLHours  = 24
	DefaultDedupeDBPath    = "database/stalewatch/notified.db"

	// Runner Defaults
	DefaultRunnerWorkerCount    = 8
	DefaultRunnerRunTimeoutSecs = 300

	// Retry Defaults
	DefaultRetryMaxRetries   = 2
	DefaultRetryBaseDelaySec = 1
	DefaultRetryMaxDelaySec  = 10

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)

// Environment variable names for secrets. Credentials are never read from the
// config file on disk.
const (
	EnvInventoryAPIToken     = "STALEWATCH_INVENTORY_API_TOKEN"
	EnvDirectoryClientSecret = "STALEWATCH_DIRECTORY_CLIENT_SECRET"
	EnvChatBotToken          = "STALEWATCH_CHAT_BOT_TOKEN"
)
