package tokens

import (
	"fmt"
	"math/rand"
)

// randomTheme builds a valid token set with every leaf drawn from r.
func randomTheme(r *rand.Rand) ThemeTokens {
	t := DefaultTheme()

	for _, role := range RoleOrder {
		hue := r.Intn(360)
		chroma := 0.01 + r.Float64()*0.3
		var values [ShadeCount]string
		for i := range values {
			lightness := 0.98 - float64(i)*0.085 - r.Float64()*0.01
			values[i] = OKLCH{L: round2(lightness), C: round2(chroma), H: float64(hue)}.String()
		}
		t.Colors = t.Colors.WithScale(role, NewColorScale(values))
	}

	px := func() string { return fmt.Sprintf("%dpx", SpacingUnit*r.Intn(32)) }
	t.Spacing = SpacingTokens{
		S0: px(), S1: px(), S2: px(), S3: px(), S4: px(), S5: px(),
		S6: px(), S8: px(), S10: px(), S12: px(), S16: px(),
	}

	word := func(prefix string) string { return fmt.Sprintf("%s-%d", prefix, r.Intn(1000)) }
	t.Typography.FontFamily.Sans = fmt.Sprintf(`"%s", sans-serif`, word("Sans"))
	t.Typography.FontSize.XL2 = fmt.Sprintf("%.3frem", 1+r.Float64())
	t.Typography.FontWeight.Bold = fmt.Sprint(100 * (1 + r.Intn(9)))
	t.Radii.Full = fmt.Sprintf("%dpx", 1000+r.Intn(9000))
	t.Shadows.LG = fmt.Sprintf("0 %dpx %dpx rgb(0 0 0 / 0.2)", r.Intn(20), r.Intn(30))
	t.Transitions.Slow = fmt.Sprintf("%dms", 200+r.Intn(800))
	return t
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

// darkFixture is a hand-authored dark palette used as a reference for the
// lightness ramp that DeriveDark produces from DefaultTheme.
var darkFixture = map[Role][ShadeCount]string{
	RolePrimary: {
		"oklch(0.20 0.10 250)", "oklch(0.28 0.12 250)", "oklch(0.36 0.14 250)", "oklch(0.44 0.16 250)",
		"oklch(0.52 0.18 250)", "oklch(0.60 0.20 250)", "oklch(0.70 0.16 250)", "oklch(0.80 0.12 250)",
		"oklch(0.88 0.08 250)", "oklch(0.94 0.04 250)", "oklch(0.97 0.02 250)",
	},
	RoleSecondary: {
		"oklch(0.20 0.05 280)", "oklch(0.28 0.06 280)", "oklch(0.36 0.07 280)", "oklch(0.44 0.08 280)",
		"oklch(0.52 0.09 280)", "oklch(0.60 0.10 280)", "oklch(0.70 0.08 280)", "oklch(0.80 0.06 280)",
		"oklch(0.88 0.04 280)", "oklch(0.94 0.02 280)", "oklch(0.97 0.01 280)",
	},
	RoleSuccess: {
		"oklch(0.20 0.10 145)", "oklch(0.28 0.12 145)", "oklch(0.36 0.14 145)", "oklch(0.44 0.16 145)",
		"oklch(0.52 0.18 145)", "oklch(0.60 0.20 145)", "oklch(0.70 0.18 145)", "oklch(0.80 0.14 145)",
		"oklch(0.88 0.10 145)", "oklch(0.94 0.06 145)", "oklch(0.97 0.03 145)",
	},
	RoleWarning: {
		"oklch(0.30 0.10 85)", "oklch(0.38 0.12 85)", "oklch(0.46 0.14 85)", "oklch(0.54 0.16 85)",
		"oklch(0.62 0.18 85)", "oklch(0.70 0.20 85)", "oklch(0.75 0.18 85)", "oklch(0.80 0.16 85)",
		"oklch(0.88 0.12 85)", "oklch(0.94 0.06 85)", "oklch(0.97 0.03 85)",
	},
	RoleDanger: {
		"oklch(0.20 0.12 25)", "oklch(0.28 0.14 25)", "oklch(0.36 0.16 25)", "oklch(0.44 0.18 25)",
		"oklch(0.52 0.20 25)", "oklch(0.60 0.22 25)", "oklch(0.70 0.18 25)", "oklch(0.80 0.14 25)",
		"oklch(0.88 0.08 25)", "oklch(0.94 0.04 25)", "oklch(0.97 0.02 25)",
	},
	RoleNeutral: {
		"oklch(0.13 0 0)", "oklch(0.20 0 0)", "oklch(0.27 0 0)", "oklch(0.37 0 0)",
		"oklch(0.45 0 0)", "oklch(0.55 0 0)", "oklch(0.70 0 0)", "oklch(0.83 0 0)",
		"oklch(0.90 0 0)", "oklch(0.96 0 0)", "oklch(0.98 0 0)",
	},
}
