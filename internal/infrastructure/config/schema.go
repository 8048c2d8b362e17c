package config

import "time"

// Config represents the complete configuration for kiosk.
type Config struct {
	// DefaultURL is loaded in the first tab and in every new tab.
	DefaultURL    string              `mapstructure:"default_url" toml:"default_url" json:"default_url" jsonschema:"description=URL opened in new tabs"`
	Tabs          TabsConfig          `mapstructure:"tabs" toml:"tabs" json:"tabs"`
	Window        WindowConfig        `mapstructure:"window" toml:"window" json:"window"`
	Security      SecurityConfig      `mapstructure:"security" toml:"security" json:"security"`
	Appearance    AppearanceConfig    `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Notifications NotificationsConfig `mapstructure:"notifications" toml:"notifications" json:"notifications"`
	// Maintenance holds scheduled housekeeping jobs.
	Maintenance MaintenanceConfig `mapstructure:"maintenance" toml:"maintenance" json:"maintenance"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	Database    DatabaseConfig    `mapstructure:"database" toml:"database" json:"database"`
}

// TabsConfig controls the tab strip.
type TabsConfig struct {
	MaxTabs int `mapstructure:"max_tabs" toml:"max_tabs" json:"max_tabs" jsonschema:"minimum=1,maximum=16,default=3"`
	// MetadataRefreshMs coalesces title/favicon refreshes after page events.
	MetadataRefreshMs int `mapstructure:"metadata_refresh_ms" toml:"metadata_refresh_ms" json:"metadata_refresh_ms" jsonschema:"minimum=10,maximum=5000,default=100"`
}

// RefreshDelay returns MetadataRefreshMs as a duration.
func (t TabsConfig) RefreshDelay() time.Duration {
	return time.Duration(t.MetadataRefreshMs) * time.Millisecond
}

// WindowConfig controls the top-level window.
type WindowConfig struct {
	Fullscreen bool `mapstructure:"fullscreen" toml:"fullscreen" json:"fullscreen"`
	// AlwaysOnTop is accepted for compatibility; GTK4 leaves stacking to the compositor.
	AlwaysOnTop bool `mapstructure:"always_on_top" toml:"always_on_top" json:"always_on_top"`
	// Width and Height apply when Fullscreen is false.
	Width  int `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=320"`
	Height int `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=240"`
	// InhibitIdle keeps the screen from blanking through the desktop portal.
	InhibitIdle bool `mapstructure:"inhibit_idle" toml:"inhibit_idle" json:"inhibit_idle" jsonschema:"default=true"`
}

// SecurityConfig holds the operator password.
type SecurityConfig struct {
	// PasswordHash is a bcrypt hash set with `kiosk passwd`.
	// Empty means the factory password is in use.
	PasswordHash string `mapstructure:"password_hash" toml:"password_hash" json:"password_hash"`
}

// AppearanceConfig controls the shell theme.
type AppearanceConfig struct {
	// Theme is used until the operator picks one in Settings.
	Theme string `mapstructure:"theme" toml:"theme" json:"theme" jsonschema:"enum=light,enum=dark,default=dark"`
}

// NotificationsConfig controls toasts.
type NotificationsConfig struct {
	DurationMs int `mapstructure:"duration_ms" toml:"duration_ms" json:"duration_ms" jsonschema:"minimum=500,default=2000"`
}

// ToastDuration returns DurationMs as a duration.
func (n NotificationsConfig) ToastDuration() time.Duration {
	return time.Duration(n.DurationMs) * time.Millisecond
}

// MaintenanceConfig holds scheduled jobs.
type MaintenanceConfig struct {
	// ClearDataSchedule is a cron expression (5 fields or @descriptor).
	// Empty disables the scheduled wipe.
	ClearDataSchedule string `mapstructure:"clear_data_schedule" toml:"clear_data_schedule" json:"clear_data_schedule" jsonschema:"example=@daily,example=0 3 * * *"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/kiosk/logs.
	LogDir     string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// DatabaseConfig holds the settings database location.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/kiosk/kiosk.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}
