package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palette/internal/tokens"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	roleStyle    = lipgloss.NewStyle().Width(10).Bold(true)
	varStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Options controls how a theme preview is drawn.
type Options struct {
	// Title is printed above the swatches when set.
	Title string
	// Plain disables colors and prints hex codes instead of filled cells.
	Plain bool
}

// Render draws a swatch grid of every color role followed by the remaining tokens.
func Render(t tokens.ThemeTokens, opts Options) (string, error) {
	swatches, err := Swatches(t.Colors)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if opts.Title != "" {
		title := opts.Title
		if !opts.Plain {
			title = titleStyle.Render(title)
		}
		b.WriteString(title)
		b.WriteByte('\n')
	}

	outOfGamut := 0
	for start := 0; start < len(swatches); start += tokens.ShadeCount {
		row := swatches[start : start+tokens.ShadeCount]
		if opts.Plain {
			writePlainRow(&b, row)
		} else {
			writeColorRow(&b, row)
		}
		for _, s := range row {
			if !s.InGamut {
				outOfGamut++
			}
		}
	}

	if outOfGamut > 0 {
		note := fmt.Sprintf("%d color(s) fall outside sRGB and are shown clamped (marked *)", outOfGamut)
		if !opts.Plain {
			note = warnStyle.Render(note)
		}
		b.WriteString(note)
		b.WriteByte('\n')
	}

	category := tokens.CategoryColor
	for _, leaf := range tokens.Leaves(t) {
		if leaf.Category == tokens.CategoryColor {
			continue
		}
		if leaf.Category != category {
			category = leaf.Category
			b.WriteString(heading(sectionStyle, categoryTitle(category), opts.Plain))
			b.WriteByte('\n')
		}
		name := leaf.Var
		if !opts.Plain {
			name = varStyle.Render(name)
		}
		fmt.Fprintf(&b, "  %s %s\n", name, leaf.Value)
	}

	return b.String(), nil
}

func writeColorRow(b *strings.Builder, row []Swatch) {
	cells := make([]string, 0, len(row)+1)
	cells = append(cells, roleStyle.Render(string(row[0].Role)))
	for _, s := range row {
		label := s.Shade.String()
		if !s.InGamut {
			label += "*"
		}
		cell := lipgloss.NewStyle().
			Background(lipgloss.Color(s.Hex)).
			Foreground(lipgloss.Color(Contrast(s.Hex))).
			Width(6).
			Align(lipgloss.Center).
			Render(label)
		cells = append(cells, cell)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	b.WriteByte('\n')
}

func writePlainRow(b *strings.Builder, row []Swatch) {
	fmt.Fprintf(b, "%s\n", row[0].Role)
	for _, s := range row {
		marker := " "
		if !s.InGamut {
			marker = "*"
		}
		fmt.Fprintf(b, "  %-4s %s%s %s\n", s.Shade, s.Hex, marker, s.Value)
	}
}

func heading(style lipgloss.Style, text string, plain bool) string {
	if plain {
		return "\n" + text
	}
	return style.Render(text)
}

func categoryTitle(c tokens.Category) string {
	switch c {
	case tokens.CategorySpacing:
		return "Spacing"
	case tokens.CategoryFontFamily:
		return "Font family"
	case tokens.CategoryFontSize:
		return "Font size"
	case tokens.CategoryFontWeight:
		return "Font weight"
	case tokens.CategoryLineHeight:
		return "Line height"
	case tokens.CategoryRadius:
		return "Radii"
	case tokens.CategoryShadow:
		return "Shadows"
	case tokens.CategoryTransition:
		return "Transitions"
	default:
		return "Colors"
	}
}
