package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palette/internal/source"
	"github.com/alexisbeaulieu97/palette/internal/tokens"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(source.Pair{Light: tokens.DefaultTheme(), Dark: tokens.DarkTheme()})
	require.NoError(t, err)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsOnPrimary500(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Nil(t, m.Init())

	s := m.Selected()
	require.Equal(t, tokens.RolePrimary, s.Role)
	require.Equal(t, tokens.Shade500, s.Shade)
	require.Equal(t, tokens.DefaultTheme().Colors.Primary.S500, s.Value)
	require.False(t, m.Dark())
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"), tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, tokens.RoleSuccess, m.Selected().Role)
	require.Equal(t, tokens.Shade600, m.Selected().Shade)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, tokens.RoleNeutral, m.Selected().Role, "role selection wraps around")

	for i := 0; i < tokens.ShadeCount+2; i++ {
		m, _ = send(t, m, runes("h"))
	}
	require.Equal(t, tokens.Shade50, m.Selected().Shade, "shade selection stops at the lightest")

	for i := 0; i < tokens.ShadeCount+2; i++ {
		m, _ = send(t, m, runes("l"))
	}
	require.Equal(t, tokens.Shade950, m.Selected().Shade, "shade selection stops at the darkest")
}

func TestToggleShowsDarkValues(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, runes("t"))

	require.True(t, m.Dark())
	require.Equal(t, tokens.DarkTheme().Colors.Primary.S500, m.Selected().Value)
	require.Contains(t, m.View(), "dark")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, m.Dark())
}

func TestViewShowsSelection(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	require.Contains(t, view, "--color-primary-500")
	require.Contains(t, view, tokens.DefaultTheme().Colors.Primary.S500)
	require.Contains(t, view, "[500]")
	for _, role := range tokens.RoleOrder {
		require.Contains(t, view, string(role))
	}
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.NotContains(t, m.View(), "darker shade")

	m, _ = send(t, m, runes("?"))
	require.Contains(t, m.View(), "darker shade")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m, cmd := send(t, newTestModel(t), msg)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
		require.Empty(t, m.View())
	}
}

func TestNewModelRejectsInvalidColors(t *testing.T) {
	t.Parallel()

	broken := tokens.DefaultTheme()
	broken.Colors.Success.S50 = "green"

	_, err := NewModel(source.Pair{Light: broken, Dark: tokens.DarkTheme()})
	require.Error(t, err)
}
