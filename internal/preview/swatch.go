// Package preview renders token sets for the terminal.
package preview

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/palette/internal/tokens"
)

// gamutTolerance absorbs float error at the sRGB cube faces.
const gamutTolerance = 1e-4

// Swatch is one color token converted for display.
type Swatch struct {
	Role    tokens.Role
	Shade   tokens.Shade
	Value   string
	Hex     string
	InGamut bool
}

// ToHex converts an oklch() value to the nearest sRGB hex color. InGamut is
// false when the color had to be clamped into sRGB.
func ToHex(value string) (hex string, inGamut bool, err error) {
	c, err := tokens.ParseOKLCH(value)
	if err != nil {
		return "", false, err
	}
	rgb := colorful.OkLch(c.L, c.C, c.H)
	clamped := rgb.Clamped()
	return clamped.Hex(), rgb.IsValid() || rgb.DistanceRgb(clamped) < gamutTolerance, nil
}

// Swatches converts every role and shade of c, in declared order.
func Swatches(c tokens.ColorTokens) ([]Swatch, error) {
	swatches := make([]Swatch, 0, len(tokens.RoleOrder)*tokens.ShadeCount)
	for _, role := range tokens.RoleOrder {
		scale, _ := c.Scale(role)
		for i, value := range scale.Values() {
			hex, inGamut, err := ToHex(value)
			if err != nil {
				return nil, fmt.Errorf("colors.%s.%s: %w", role, tokens.ShadeOrder[i], err)
			}
			swatches = append(swatches, Swatch{
				Role:    role,
				Shade:   tokens.ShadeOrder[i],
				Value:   value,
				Hex:     hex,
				InGamut: inGamut,
			})
		}
	}
	return swatches, nil
}

// Contrast picks black or white text for legibility on a hex background.
func Contrast(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	l, _, _ := c.OkLab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
