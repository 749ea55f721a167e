package tokens

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

func TestDefaultThemeIsValid(t *testing.T) {
	t.Parallel()

	theme, err := Validate(DefaultTheme())
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), theme)
	assert.Equal(t, "oklch(0.60 0.20 250)", theme.Colors.Primary.S500)
}

func TestDefaultThemeSpacingIsMultipleOfFour(t *testing.T) {
	t.Parallel()

	for _, entry := range DefaultTheme().Spacing.Entries() {
		px, err := Pixels(entry.Value)
		require.NoError(t, err, "spacing.%s", entry.Key)
		assert.Zero(t, int(px)%SpacingUnit, "spacing.%s = %s", entry.Key, entry.Value)
	}
}

func TestDefaultThemeColorsAreOKLCH(t *testing.T) {
	t.Parallel()

	for _, theme := range []ThemeTokens{DefaultTheme(), DarkTheme()} {
		for _, role := range RoleOrder {
			scale, ok := theme.Colors.Scale(role)
			require.True(t, ok)
			for _, shade := range ShadeOrder {
				value, ok := scale.Shade(shade)
				require.True(t, ok)
				assert.Regexp(t, OKLCHPattern, value, "%s.%s", role, shade)
			}
		}
	}
}

func TestDefaultThemeReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	first := DefaultTheme()
	first.Colors.Primary.S500 = "oklch(0 0 0)"
	first.Spacing.S4 = "20px"

	second := DefaultTheme()
	assert.Equal(t, "oklch(0.60 0.20 250)", second.Colors.Primary.S500)
	assert.Equal(t, "16px", second.Spacing.S4)
}

func TestValidateAcceptsRandomThemes(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		_, err := Validate(randomTheme(r))
		require.NoError(t, err)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	theme.Colors.Danger.S700 = "#ff0000"
	theme.Spacing.S3 = "10px"
	theme.Typography.FontSize.XL2 = ""
	theme.Transitions.Fast = ""

	_, err := Validate(theme)
	require.Error(t, err)
	require.ErrorIs(t, err, paletteerrors.ErrSchemaViolation)

	var schemaErr *paletteerrors.SchemaViolationError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{
		"colors.danger.700",
		"spacing.3",
		"typography.fontSize.2xl",
		"transitions.fast",
	}, schemaErr.Paths())
	assert.Equal(t, "oklch", schemaErr.Violations[0].Rule)
	assert.Equal(t, "spacing4", schemaErr.Violations[1].Rule)
	assert.Equal(t, "required", schemaErr.Violations[2].Rule)
}

func TestValidateRejectsBadSpacing(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"not a multiple":   "6px",
		"fractional":       "4.5px",
		"unknown unit":     "4em",
		"garbage":          "wide",
		"rem off the grid": "0.3rem",
	}

	for name, value := range cases {
		name := name
		value := value
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			theme := DefaultTheme()
			theme.Spacing.S16 = value

			_, err := Validate(theme)
			var schemaErr *paletteerrors.SchemaViolationError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, []string{"spacing.16"}, schemaErr.Paths())
		})
	}
}

func TestPixels(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"0", 0, true},
		{"0px", 0, true},
		{"12px", 12, true},
		{"1rem", 16, true},
		{"0.25rem", 4, true},
		{"-4px", 0, false},
		{"4 px", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, err := Pixels(tc.in)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	assert.True(t, IsSpacingMultiple("0.25rem"))
	assert.False(t, IsSpacingMultiple("0.3rem"))
}
