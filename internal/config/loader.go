package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/stalewatch/internal/common"
	"gopkg.in/yaml.v3"
)

const maxConfigFileSize = 1 * 1024 * 1024 // 1MB

// LoadGlobalConfig loads configuration from a YAML or JSON file, then overlays
// credentials from the environment. An empty path returns defaults plus the
// environment overlay.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	if providedPath != "" {
		data, err := readConfigFile(providedPath)
		if err != nil {
			return nil, err
		}
		if err := parseConfigContent(data, providedPath, cfg); err != nil {
			return nil, common.WrapError(err, "failed to parse config content")
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func readConfigFile(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, common.NewValidationError("config_file", filePath, "config file does not exist")
	}
	if info.Size() > maxConfigFileSize {
		return nil, common.NewValidationError("config_file", filePath, "config file exceeds 1MB")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to read config file")
	}
	return data, nil
}

func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}

func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// applyEnvOverrides pulls credentials from the environment. Secrets carry no
// yaml/json tags, so the environment is their only source.
func applyEnvOverrides(cfg *GlobalConfig) {
	if token := os.Getenv(EnvInventoryAPIToken); token != "" {
		cfg.InventoryConfig.APIToken = token
	}
	if secret := os.Getenv(EnvDirectoryClientSecret); secret != "" {
		cfg.DirectoryConfig.ClientSecret = secret
	}
	if token := os.Getenv(EnvChatBotToken); token != "" {
		cfg.NotificationConfig.BotToken = token
	}
}
