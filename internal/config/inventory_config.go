package config

// InventoryConfig defines configuration for the fleet inventory adapter.
// APIToken is populated from STALEWATCH_INVENTORY_API_TOKEN, never from file.
type InventoryConfig struct {
	APIToken    string `json:"-" yaml:"-"`
	BaseURL     string `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"omitempty,url"`
	QueryName   string `json:"query_name,omitempty" yaml:"query_name,omitempty"`
	TimeoutSecs int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultInventoryConfig creates default inventory configuration
func NewDefaultInventoryConfig() InventoryConfig {
	return InventoryConfig{
		TimeoutSecs: DefaultInventoryTimeoutSecs,
	}
}
