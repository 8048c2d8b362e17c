package config

import "path/filepath"

// Default configuration constants
const (
	defaultURL = "https://www.icbeutechzone.com/"

	// Tabs defaults
	defaultMaxTabs           = 3
	defaultMetadataRefreshMs = 100

	// Window defaults
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800

	// Appearance defaults
	defaultTheme = "dark"

	// Notification defaults
	defaultToastDurationMs = 2000

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 5
	defaultMaxLogAgeDays = 7 // days
)

func getDefaultLogDir() string {
	stateDir, err := GetStateDir()
	if err != nil {
		return ""
	}
	return filepath.Join(stateDir, "logs")
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultURL: defaultURL,
		Tabs: TabsConfig{
			MaxTabs:           defaultMaxTabs,
			MetadataRefreshMs: defaultMetadataRefreshMs,
		},
		Window: WindowConfig{
			Fullscreen:  true,
			AlwaysOnTop: true,
			Width:       defaultWindowWidth,
			Height:      defaultWindowHeight,
			InhibitIdle: true,
		},
		Appearance: AppearanceConfig{
			Theme: defaultTheme,
		},
		Notifications: NotificationsConfig{
			DurationMs: defaultToastDurationMs,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			EnableFileLog: true,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultMaxLogAgeDays,
			Compress:      true,
		},
	}
}
