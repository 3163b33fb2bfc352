package model

// AppConfig holds application-wide preferences persisted between sessions.
type AppConfig struct {
	// Theme is "light", "dark", or "system".
	Theme string `json:"theme"`

	// DefaultPickerCategory is the designer picker tab selected on startup.
	DefaultPickerCategory Category `json:"default_picker_category"`

	// RecentExports remembers the paths of the last few export files.
	RecentExports []string `json:"recent_exports"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme:                 "system",
		DefaultPickerCategory: CategoryColor,
		RecentExports:         []string{},
	}
}

// Normalize repairs fields that may be missing or invalid after loading an
// older or hand-edited config file.
func (c *AppConfig) Normalize() {
	if c.RecentExports == nil {
		c.RecentExports = []string{}
	}
	if !c.DefaultPickerCategory.Valid() {
		c.DefaultPickerCategory = CategoryColor
	}
	switch c.Theme {
	case "light", "dark", "system":
	default:
		c.Theme = "system"
	}
}

// RememberExport records an export path, most recent first, capped at five.
func (c *AppConfig) RememberExport(path string) {
	kept := []string{path}
	for _, p := range c.RecentExports {
		if p != path && len(kept) < 5 {
			kept = append(kept, p)
		}
	}
	c.RecentExports = kept
}
