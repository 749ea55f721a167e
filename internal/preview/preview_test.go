package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palette/internal/tokens"
)

func TestToHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value   string
		hex     string
		inGamut bool
	}{
		{"oklch(1 0 0)", "#ffffff", true},
		{"oklch(0 0 0)", "#000000", true},
		{"oklch(0.90 0.40 150)", "", false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()

			hex, inGamut, err := ToHex(tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.inGamut, inGamut)
			require.Regexp(t, `^#[0-9a-f]{6}$`, hex)
			if tc.hex != "" {
				require.Equal(t, tc.hex, hex)
			}
		})
	}
}

func TestToHexRejectsNonOKLCH(t *testing.T) {
	t.Parallel()

	_, _, err := ToHex("#ff0000")
	require.Error(t, err)
}

func TestSwatchesFollowDeclaredOrder(t *testing.T) {
	t.Parallel()

	swatches, err := Swatches(tokens.DefaultTheme().Colors)
	require.NoError(t, err)
	require.Len(t, swatches, len(tokens.RoleOrder)*tokens.ShadeCount)

	require.Equal(t, tokens.RolePrimary, swatches[0].Role)
	require.Equal(t, tokens.Shade50, swatches[0].Shade)
	last := swatches[len(swatches)-1]
	require.Equal(t, tokens.RoleNeutral, last.Role)
	require.Equal(t, tokens.Shade950, last.Shade)
}

func TestNeutralRampDarkensInLightTheme(t *testing.T) {
	t.Parallel()

	swatches, err := Swatches(tokens.DefaultTheme().Colors)
	require.NoError(t, err)

	neutral := swatches[len(swatches)-tokens.ShadeCount:]
	assert.Equal(t, "#000000", Contrast(neutral[0].Hex))
	assert.Equal(t, "#ffffff", Contrast(neutral[len(neutral)-1].Hex))
}

func TestRenderPlain(t *testing.T) {
	t.Parallel()

	out, err := Render(tokens.DefaultTheme(), Options{Title: "default", Plain: true})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "default\n"))
	assert.Contains(t, out, "primary\n")
	assert.Contains(t, out, "oklch(0.60 0.20 250)")
	assert.Contains(t, out, "Spacing")
	assert.Contains(t, out, "  --spacing-4 16px\n")
	assert.Contains(t, out, "  --transition-slow 300ms\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderStyled(t *testing.T) {
	t.Parallel()

	out, err := Render(tokens.DarkTheme(), Options{})
	require.NoError(t, err)

	for _, role := range tokens.RoleOrder {
		assert.Contains(t, out, string(role))
	}
	assert.Contains(t, out, "950")
}

func TestRenderReportsInvalidColor(t *testing.T) {
	t.Parallel()

	theme := tokens.DefaultTheme()
	theme.Colors.Danger.S500 = "red"

	_, err := Render(theme, Options{Plain: true})
	require.ErrorContains(t, err, "colors.danger.500")
}
