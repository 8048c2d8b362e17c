package entity

// Theme is the shell colour theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is applied when nothing has been persisted yet.
const DefaultTheme = ThemeDark

// IsValid reports whether the theme is a known value.
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// ParseTheme converts a stored value, falling back to DefaultTheme.
func ParseTheme(s string) Theme {
	if t := Theme(s); t.IsValid() {
		return t
	}
	return DefaultTheme
}

// Setting keys persisted in the settings store.
const (
	SettingKeyTheme = "theme"
)
