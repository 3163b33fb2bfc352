// Package ui provides the NailStudio application UI components.
//
// This file defines a custom Fyne theme with soft accent colors and
// slightly compact sizing for the studio layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// NailStudioTheme wraps the default Fyne theme with a rose accent color
// and compact sizing overrides.
type NailStudioTheme struct {
	base         fyne.Theme
	variant      fyne.ThemeVariant
	forceVariant bool
}

// NewNailStudioTheme creates a new NailStudioTheme that follows the system
// light/dark preference.
func NewNailStudioTheme() *NailStudioTheme {
	return &NailStudioTheme{base: theme.DefaultTheme()}
}

// NewNailStudioThemeWithVariant creates a NailStudioTheme pinned to a specific
// light/dark variant.
func NewNailStudioThemeWithVariant(variant fyne.ThemeVariant) *NailStudioTheme {
	return &NailStudioTheme{
		base:         theme.DefaultTheme(),
		variant:      variant,
		forceVariant: true,
	}
}

// Color delegates to the base theme, overriding the primary accent with the
// studio rose. When pinned, the stored variant wins over the system one.
func (t *NailStudioTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return color.NRGBA{R: 216, G: 120, B: 150, A: 255}
	}
	if t.forceVariant {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *NailStudioTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *NailStudioTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *NailStudioTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
