// Package ui turns a token theme into lipgloss styles so terminal views are
// drawn in the colors of the theme they show.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palette/internal/preview"
	"github.com/alexisbeaulieu97/palette/internal/tokens"
)

// ColourSet is one semantic slot. Each color adapts to the terminal background:
// the Light variant comes from the light theme, the Dark variant from the dark theme.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette holds a ColourSet per color role plus a surface derived from neutral.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Neutral   ColourSet
	Surface   ColourSet
}

// Theme is an immutable set of terminal colors.
type Theme struct {
	Palette Palette
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
)

// StyleFunc derives a style from a base style and a theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Background sets the slot's base color behind text in its contrasting color.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground sets the slot's base color as the text color.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Muted sets the slot's muted color as the text color.
func Muted(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Muted)
	}
}

// BorderColor colors the border with the slot's muted color.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Muted)
	}
}

// Style applies fns to base in order.
func (t Theme) Style(base lipgloss.Style, fns ...StyleFunc) lipgloss.Style {
	for _, fn := range fns {
		base = fn(base, t)
	}
	return base
}

// FromTokens builds a Theme from a light theme and its dark variant.
func FromTokens(light, dark tokens.ColorTokens) (Theme, error) {
	slots := make(map[tokens.Role]ColourSet, len(tokens.RoleOrder))
	for _, role := range tokens.RoleOrder {
		cs, err := colourSet(role, light, dark, tokens.Shade500, tokens.Shade700, tokens.Shade300)
		if err != nil {
			return Theme{}, err
		}
		slots[role] = cs
	}

	surface, err := colourSet(tokens.RoleNeutral, light, dark, tokens.Shade50, tokens.Shade400, tokens.Shade400)
	if err != nil {
		return Theme{}, err
	}

	return Theme{Palette: Palette{
		Primary:   slots[tokens.RolePrimary],
		Secondary: slots[tokens.RoleSecondary],
		Success:   slots[tokens.RoleSuccess],
		Warning:   slots[tokens.RoleWarning],
		Danger:    slots[tokens.RoleDanger],
		Neutral:   slots[tokens.RoleNeutral],
		Surface:   surface,
	}}, nil
}

// colourSet reads base from the same shade in both themes; muted uses lightMuted
// on light backgrounds and darkMuted on dark ones.
func colourSet(role tokens.Role, light, dark tokens.ColorTokens, base, lightMuted, darkMuted tokens.Shade) (ColourSet, error) {
	lightBase, err := hexAt(light, role, base)
	if err != nil {
		return ColourSet{}, err
	}
	darkBase, err := hexAt(dark, role, base)
	if err != nil {
		return ColourSet{}, err
	}
	lightMutedHex, err := hexAt(light, role, lightMuted)
	if err != nil {
		return ColourSet{}, err
	}
	darkMutedHex, err := hexAt(dark, role, darkMuted)
	if err != nil {
		return ColourSet{}, err
	}

	return ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: lightBase, Dark: darkBase},
		OnBase: lipgloss.AdaptiveColor{Light: preview.Contrast(lightBase), Dark: preview.Contrast(darkBase)},
		Muted:  lipgloss.AdaptiveColor{Light: lightMutedHex, Dark: darkMutedHex},
	}, nil
}

func hexAt(c tokens.ColorTokens, role tokens.Role, shade tokens.Shade) (string, error) {
	scale, _ := c.Scale(role)
	value, _ := scale.Shade(shade)
	hex, _, err := preview.ToHex(value)
	if err != nil {
		return "", fmt.Errorf("colors.%s.%s: %w", role, shade, err)
	}
	return hex, nil
}
