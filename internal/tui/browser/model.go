// Package browser implements the interactive color browser behind `palette browse`.
package browser

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/palette/internal/preview"
	"github.com/alexisbeaulieu97/palette/internal/source"
	"github.com/alexisbeaulieu97/palette/internal/tokens"
	"github.com/alexisbeaulieu97/palette/internal/ui"
)

// Model is the Bubbletea state for browsing a light/dark theme pair.
type Model struct {
	themes source.Pair
	light  []preview.Swatch
	dark   []preview.Swatch
	styles styles

	role   int
	shade  int
	isDark bool

	keys keyMap
	help help.Model

	width    int
	quitting bool
}

// NewModel converts both themes to swatches and styles up front so rendering never fails.
func NewModel(themes source.Pair) (Model, error) {
	light, err := preview.Swatches(themes.Light.Colors)
	if err != nil {
		return Model{}, err
	}
	dark, err := preview.Swatches(themes.Dark.Colors)
	if err != nil {
		return Model{}, err
	}
	theme, err := ui.FromTokens(themes.Light.Colors, themes.Dark.Colors)
	if err != nil {
		return Model{}, err
	}

	return Model{
		themes: themes,
		light:  light,
		dark:   dark,
		styles: newStyles(theme),
		shade:  tokens.Shade500.Index(),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.role = wrap(m.role-1, len(tokens.RoleOrder))
		case key.Matches(msg, m.keys.Down):
			m.role = wrap(m.role+1, len(tokens.RoleOrder))
		case key.Matches(msg, m.keys.Left):
			if m.shade > 0 {
				m.shade--
			}
		case key.Matches(msg, m.keys.Right):
			if m.shade < tokens.ShadeCount-1 {
				m.shade++
			}
		case key.Matches(msg, m.keys.Toggle):
			m.isDark = !m.isDark
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

// Selected returns the swatch under the cursor in the active theme.
func (m Model) Selected() preview.Swatch {
	return m.swatches()[m.role*tokens.ShadeCount+m.shade]
}

// Dark reports whether the dark theme is shown.
func (m Model) Dark() bool {
	return m.isDark
}

func (m Model) swatches() []preview.Swatch {
	if m.isDark {
		return m.dark
	}
	return m.light
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
