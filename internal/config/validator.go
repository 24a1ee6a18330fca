package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := strings.ToLower(fl.Field().String())
		switch level {
		case "", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	// Register custom validation for feed platforms
	_ = validate.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		platform := strings.ToLower(fl.Field().String())
		switch platform {
		case "macos", "chromeos", "windows", "linux":
			return true
		default:
			return false
		}
	})

	// Register custom validation for feed document formats
	_ = validate.RegisterValidation("feedformat", func(fl validator.FieldLevel) bool {
		format := strings.ToLower(fl.Field().String())
		switch format {
		case "", "simple", "sofa":
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var messages []string
			for _, e := range errs {
				msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				if e.Value() != nil && e.Value() != "" {
					msg += fmt.Sprintf(", actual: '%v'", e.Value())
				}
				messages = append(messages, msg)
			}
			return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
		}
		return fmt.Errorf("configuration validation error: %w", err)
	}

	return validateRequiredEndpoints(cfg)
}

// validateRequiredEndpoints enforces the presence of every external interface
// a run needs. These are required at runtime but optional in the struct tags
// so that partial configs remain loadable for tooling.
func validateRequiredEndpoints(cfg *GlobalConfig) error {
	var missing []string

	if len(cfg.FeedConfig.Endpoints) == 0 {
		missing = append(missing, "feed_config.endpoints")
	}
	if cfg.InventoryConfig.BaseURL == "" {
		missing = append(missing, "inventory_config.base_url")
	}
	if cfg.InventoryConfig.APIToken == "" {
		missing = append(missing, EnvInventoryAPIToken)
	}
	if cfg.DirectoryConfig.BaseURL == "" {
		missing = append(missing, "directory_config.base_url")
	}
	if cfg.DirectoryConfig.ClientID == "" {
		missing = append(missing, "directory_config.client_id")
	}
	if cfg.DirectoryConfig.ClientSecret == "" {
		missing = append(missing, EnvDirectoryClientSecret)
	}
	if cfg.NotificationConfig.ChatBaseURL == "" {
		missing = append(missing, "notification_config.chat_base_url")
	}
	if cfg.NotificationConfig.BotToken == "" {
		missing = append(missing, EnvChatBotToken)
	}

	if len(missing) > 0 {
		return fmt.Errorf("configuration incomplete, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
