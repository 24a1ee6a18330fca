package config

// DirectoryConfig defines configuration for the device directory used to
// resolve a hardware serial to its assigned owner. ClientSecret is populated
// from STALEWATCH_DIRECTORY_CLIENT_SECRET, never from file.
type DirectoryConfig struct {
	BaseURL      string `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"omitempty,url"`
	ClientID     string `json:"client_id,omitempty" yaml:"client_id,omitempty"`
	ClientSecret string `json:"-" yaml:"-"`
	TimeoutSecs  int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultDirectoryConfig creates default directory configuration
func NewDefaultDirectoryConfig() DirectoryConfig {
	return DirectoryConfig{
		TimeoutSecs: DefaultDirectoryTimeoutSecs,
	}
}
