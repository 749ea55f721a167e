package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palette/internal/preview"
	"github.com/alexisbeaulieu97/palette/internal/tokens"
	"github.com/alexisbeaulieu97/palette/internal/ui"
)

const cellWidth = 6

// styles are drawn from the browsed theme itself.
type styles struct {
	title      lipgloss.Style
	role       lipgloss.Style
	activeRole lipgloss.Style
	detail     lipgloss.Style
	label      lipgloss.Style
	warning    lipgloss.Style
	selected   lipgloss.Style
}

func newStyles(theme ui.Theme) styles {
	role := lipgloss.NewStyle().Width(11)
	return styles{
		title:      theme.Style(lipgloss.NewStyle().Bold(true), ui.Foreground(ui.PalettePrimary)),
		role:       role,
		activeRole: theme.Style(role.Bold(true), ui.Foreground(ui.PalettePrimary)),
		detail: theme.Style(
			lipgloss.NewStyle().MarginTop(1).Padding(0, 1).Border(lipgloss.RoundedBorder()),
			ui.BorderColor(ui.PaletteNeutral),
		),
		label:    theme.Style(lipgloss.NewStyle().Width(9), ui.Muted(ui.PaletteNeutral)),
		warning:  theme.Style(lipgloss.NewStyle(), ui.Foreground(ui.PaletteWarning)),
		selected: lipgloss.NewStyle().Underline(true).Bold(true),
	}
}

// View renders the swatch grid, the selected token, and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	mode := "light"
	if m.isDark {
		mode = "dark"
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Palette · " + mode))
	b.WriteString("\n\n")

	swatches := m.swatches()
	for r, role := range tokens.RoleOrder {
		row := swatches[r*tokens.ShadeCount : (r+1)*tokens.ShadeCount]
		b.WriteString(m.renderRow(r, role, row))
		b.WriteByte('\n')
	}

	b.WriteString(m.renderDetail())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderRow(index int, role tokens.Role, row []preview.Swatch) string {
	label := m.styles.role.Render(string(role))
	if index == m.role {
		label = m.styles.activeRole.Render("› " + string(role))
	}

	cells := make([]string, 0, len(row)+1)
	cells = append(cells, label)
	for i, s := range row {
		text := s.Shade.String()
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(s.Hex)).
			Foreground(lipgloss.Color(preview.Contrast(s.Hex))).
			Width(cellWidth).
			Align(lipgloss.Center)
		if index == m.role && i == m.shade {
			text = "[" + text + "]"
			style = style.Inherit(m.styles.selected)
		}
		cells = append(cells, style.Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderDetail() string {
	s := m.Selected()
	lines := []string{
		m.styles.label.Render("token") + fmt.Sprintf("--color-%s-%s", s.Role, s.Shade),
		m.styles.label.Render("value") + s.Value,
		m.styles.label.Render("srgb") + s.Hex,
	}
	if !s.InGamut {
		lines = append(lines, m.styles.warning.Render("outside sRGB; shown clamped"))
	}
	return m.styles.detail.Render(strings.Join(lines, "\n"))
}
