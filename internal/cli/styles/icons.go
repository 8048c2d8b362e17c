// Package styles provides the lipgloss styling of the kiosk CLI.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconCursor  = "" // chevron-right
	IconLock    = "" // lock

	// Purge / filesystem
	IconTrash    = "" // trash
	IconFolder   = "" // folder
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconCache    = "" // cache
	IconLogs     = "" // file-text
)
