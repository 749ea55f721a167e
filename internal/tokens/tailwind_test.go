package tokens

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTailwindThemeSharesSourceValues(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	tw := ToTailwindTheme(theme)

	for _, role := range RoleOrder {
		src, _ := theme.Colors.Scale(role)
		got, _ := tw.Colors.Scale(role)
		for _, shade := range ShadeOrder {
			sv, _ := src.Shade(shade)
			tv, _ := got.Shade(shade)
			assert.Equal(t, sv, tv, "%s.%s", role, shade)
		}
	}
	assert.Equal(t, theme.Colors.Primary.S500, tw.Colors.Primary.S500)

	assert.Equal(t, theme.Spacing.Entries(), tw.Spacing.Entries())
	assert.Equal(t, theme.Typography.FontFamily, tw.FontFamily)
	assert.Equal(t, theme.Typography.FontSize, tw.FontSize)
	assert.Equal(t, theme.Typography.FontWeight, tw.FontWeight)
	assert.Equal(t, theme.Typography.LineHeight, tw.LineHeight)
	assert.Equal(t, theme.Radii.Entries(), tw.BorderRadius.Entries())
	assert.Equal(t, theme.Shadows.Entries(), tw.BoxShadow.Entries())
	assert.Equal(t, theme.Transitions.Entries(), tw.TransitionDuration.Entries())
}

func TestTailwindThemeTracksAnySource(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		theme := randomTheme(r)
		tw := ToTailwindTheme(theme)
		require.Equal(t, theme.Colors, tw.Colors)
		require.Equal(t, theme.Spacing, tw.Spacing)
		require.Equal(t, theme.Typography.FontSize.XL2, tw.FontSize.XL2)
		require.Equal(t, theme.Radii.Full, tw.BorderRadius.Full)
		require.Equal(t, theme.Shadows.LG, tw.BoxShadow.LG)
		require.Equal(t, theme.Transitions.Slow, tw.TransitionDuration.Slow)
	}
}

func TestTailwindThemeJSONKeys(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(ToTailwindTheme(DefaultTheme()))
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	keys := make([]string, 0, len(decoded))
	for k := range decoded {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{
		"colors", "spacing", "fontFamily", "fontSize", "fontWeight",
		"lineHeight", "borderRadius", "boxShadow", "transitionDuration",
	}, keys)
	assert.Equal(t, "16px", decoded["spacing"]["4"])
	assert.Equal(t, "1.5rem", decoded["fontSize"]["2xl"])
}
