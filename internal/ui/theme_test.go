package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palette/internal/preview"
	"github.com/alexisbeaulieu97/palette/internal/tokens"
)

func defaultTheme(t *testing.T) Theme {
	t.Helper()
	theme, err := FromTokens(tokens.DefaultTheme().Colors, tokens.DarkTheme().Colors)
	require.NoError(t, err)
	return theme
}

func TestFromTokensUsesBothThemes(t *testing.T) {
	t.Parallel()

	theme := defaultTheme(t)

	lightHex, _, err := preview.ToHex(tokens.DefaultTheme().Colors.Danger.S500)
	require.NoError(t, err)
	darkHex, _, err := preview.ToHex(tokens.DarkTheme().Colors.Danger.S500)
	require.NoError(t, err)

	assert.Equal(t, lipgloss.AdaptiveColor{Light: lightHex, Dark: darkHex}, theme.Palette.Danger.Base)
	assert.Equal(t, theme.Palette.Danger, PaletteDanger(theme.Palette))
}

func TestSurfaceFollowsNeutralEnds(t *testing.T) {
	t.Parallel()

	theme := defaultTheme(t)

	// The light surface is near white and the dark surface near black.
	assert.Equal(t, "#000000", preview.Contrast(theme.Palette.Surface.Base.Light))
	assert.Equal(t, "#ffffff", preview.Contrast(theme.Palette.Surface.Base.Dark))
	assert.Equal(t, "#000000", theme.Palette.Surface.OnBase.Light)
	assert.Equal(t, "#ffffff", theme.Palette.Surface.OnBase.Dark)
}

func TestStyleAppliesFuncsInOrder(t *testing.T) {
	t.Parallel()

	theme := defaultTheme(t)
	style := theme.Style(lipgloss.NewStyle(), Background(PalettePrimary), Foreground(PaletteWarning), BorderColor(PaletteNeutral))

	assert.Equal(t, theme.Palette.Primary.Base, style.GetBackground())
	assert.Equal(t, theme.Palette.Warning.Base, style.GetForeground())
	assert.Equal(t, theme.Palette.Neutral.Muted, style.GetBorderTopForeground())

	muted := theme.Style(lipgloss.NewStyle(), Muted(PaletteSecondary))
	assert.Equal(t, theme.Palette.Secondary.Muted, muted.GetForeground())
}

func TestFromTokensRejectsInvalidColor(t *testing.T) {
	t.Parallel()

	light := tokens.DefaultTheme().Colors
	light.Neutral.S50 = "white"

	_, err := FromTokens(light, tokens.DarkTheme().Colors)
	require.ErrorContains(t, err, "colors.neutral.50")
}
