package tokens

import (
	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

var darkTheme = mustDeriveDark(defaultTheme)

// DarkTheme returns the dark variant of DefaultTheme.
func DarkTheme() ThemeTokens {
	return darkTheme
}

func mustDeriveDark(light ThemeTokens) ThemeTokens {
	dark, err := DeriveDark(light)
	if err != nil {
		panic("tokens: default theme has no valid dark variant: " + err.Error())
	}
	return dark
}

// DeriveDark builds the dark variant of light. Non-color groups are shared
// unchanged. For each role, shade i takes the lightness of shade 10-i and
// keeps its own chroma and hue, so the lightness ramp is mirrored while each
// slot stays on its hue.
//
// A ramp whose edge shades (50, 100, 900, 950) would keep their lightness
// cannot produce a distinct dark variant and is reported as a schema violation.
func DeriveDark(light ThemeTokens) (ThemeTokens, error) {
	var violations []paletteerrors.Violation
	colors := light.Colors

	for _, role := range RoleOrder {
		scale, _ := light.Colors.Scale(role)
		derived, roleViolations := mirrorScale(role, scale)
		violations = append(violations, roleViolations...)
		colors = colors.WithScale(role, derived)
	}

	if len(violations) > 0 {
		return ThemeTokens{}, paletteerrors.NewSchemaViolation(violations, nil)
	}

	dark := light
	dark.Colors = colors
	return dark, nil
}

func mirrorScale(role Role, scale ColorScale) (ColorScale, []paletteerrors.Violation) {
	values := scale.Values()
	var parsed [ShadeCount]OKLCH
	var violations []paletteerrors.Violation

	for i, value := range values {
		c, err := ParseOKLCH(value)
		if err != nil {
			violations = append(violations, paletteerrors.Violation{
				Path:  colorPath(role, ShadeOrder[i]),
				Rule:  "oklch",
				Value: value,
			})
			continue
		}
		parsed[i] = c
	}
	if len(violations) > 0 {
		return ColorScale{}, violations
	}

	var out [ShadeCount]string
	for i := range parsed {
		mirrored := parsed[ShadeCount-1-i]
		out[i] = OKLCH{L: mirrored.L, C: parsed[i].C, H: parsed[i].H}.String()
	}

	for _, edge := range EdgeShades {
		i := edge.Index()
		if parsed[ShadeCount-1-i].L == parsed[i].L {
			violations = append(violations, paletteerrors.Violation{
				Path:  colorPath(role, edge),
				Rule:  "dark-divergence",
				Value: values[i],
			})
		}
	}

	return NewColorScale(out), violations
}

// CheckDivergence reports every role whose edge shades carry the same value in
// light and dark. It applies to dark themes that were not produced by DeriveDark.
func CheckDivergence(light, dark ThemeTokens) error {
	var violations []paletteerrors.Violation
	for _, role := range RoleOrder {
		ls, _ := light.Colors.Scale(role)
		ds, _ := dark.Colors.Scale(role)
		for _, edge := range EdgeShades {
			lv, _ := ls.Shade(edge)
			dv, _ := ds.Shade(edge)
			if lv == dv {
				violations = append(violations, paletteerrors.Violation{
					Path:  colorPath(role, edge),
					Rule:  "dark-divergence",
					Value: dv,
				})
			}
		}
	}

	if len(violations) > 0 {
		return paletteerrors.NewSchemaViolation(violations, nil)
	}
	return nil
}

// CheckShared reports every non-color token where dark disagrees with light.
// The stylesheet emits non-color tokens once, from the light theme.
func CheckShared(light, dark ThemeTokens) error {
	lightLeaves, darkLeaves := Leaves(light), Leaves(dark)

	var violations []paletteerrors.Violation
	for i, leaf := range darkLeaves {
		if leaf.Category == CategoryColor || leaf.Value == lightLeaves[i].Value {
			continue
		}
		violations = append(violations, paletteerrors.Violation{
			Path:  leaf.Path,
			Rule:  "dark-shared",
			Value: leaf.Value,
		})
	}

	if len(violations) > 0 {
		return paletteerrors.NewSchemaViolation(violations, nil)
	}
	return nil
}

func colorPath(role Role, shade Shade) string {
	return "colors." + string(role) + "." + shade.String()
}

// GenerateDarkModeCSS renders the dark color overrides in a .dark block.
// Only colors are emitted; every other group is shared with the light theme.
func GenerateDarkModeCSS(light, dark ThemeTokens) string {
	return GenerateDarkModeCSSWithSelector(light, dark, DarkSelector)
}

// GenerateDarkModeCSSWithSelector is GenerateDarkModeCSS with a custom scope selector.
func GenerateDarkModeCSSWithSelector(_ ThemeTokens, dark ThemeTokens, selector string) string {
	if selector == "" {
		selector = DarkSelector
	}
	return cssBlock(selector, ColorLeaves(dark.Colors))
}
