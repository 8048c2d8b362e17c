package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
)

// CronParser accepts standard 5-field expressions and @descriptors.
var CronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDefaultURL(config)...)
	validationErrors = append(validationErrors, validateTabs(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateSecurity(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateNotifications(config)...)
	validationErrors = append(validationErrors, validateMaintenance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateDefaultURL(config *Config) []string {
	u, err := url.Parse(config.DefaultURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return []string{fmt.Sprintf("default_url must be an absolute http(s) URL, got %q", config.DefaultURL)}
	}
	return nil
}

func validateTabs(config *Config) []string {
	var validationErrors []string
	if config.Tabs.MaxTabs < 1 || config.Tabs.MaxTabs > 16 {
		validationErrors = append(validationErrors, "tabs.max_tabs must be between 1 and 16")
	}
	if config.Tabs.MetadataRefreshMs < 10 || config.Tabs.MetadataRefreshMs > 5000 {
		validationErrors = append(validationErrors, "tabs.metadata_refresh_ms must be between 10 and 5000")
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	if config.Window.Fullscreen {
		return nil
	}
	var validationErrors []string
	if config.Window.Width < 320 {
		validationErrors = append(validationErrors, "window.width must be at least 320")
	}
	if config.Window.Height < 240 {
		validationErrors = append(validationErrors, "window.height must be at least 240")
	}
	return validationErrors
}

func validateSecurity(config *Config) []string {
	if config.Security.PasswordHash == "" {
		return nil
	}
	if _, err := bcrypt.Cost([]byte(config.Security.PasswordHash)); err != nil {
		return []string{"security.password_hash is not a bcrypt hash (use `kiosk passwd`)"}
	}
	return nil
}

func validateAppearance(config *Config) []string {
	switch config.Appearance.Theme {
	case "light", "dark":
		return nil
	default:
		return []string{fmt.Sprintf("appearance.theme must be light or dark, got %q", config.Appearance.Theme)}
	}
}

func validateNotifications(config *Config) []string {
	if config.Notifications.DurationMs < 500 {
		return []string{"notifications.duration_ms must be at least 500"}
	}
	return nil
}

func validateMaintenance(config *Config) []string {
	if config.Maintenance.ClearDataSchedule == "" {
		return nil
	}
	if _, err := CronParser.Parse(config.Maintenance.ClearDataSchedule); err != nil {
		return []string{fmt.Sprintf("maintenance.clear_data_schedule is not a valid cron expression: %v", err)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, got %q", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json, got %q", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 || config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging rotation limits must be non-negative")
	}
	return validationErrors
}
