package tokens

import "strings"

const (
	// RootSelector scopes the base theme declarations.
	RootSelector = ":root"
	// DarkSelector scopes the dark color overrides.
	DarkSelector = ".dark"
)

// TokensToCSS flattens t into a single :root block of custom properties.
func TokensToCSS(t ThemeTokens) string {
	return cssBlock(RootSelector, Leaves(t))
}

// Stylesheet renders the base theme followed by the dark overrides scoped to selector.
func Stylesheet(light, dark ThemeTokens, selector string) string {
	return TokensToCSS(light) + "\n\n" + GenerateDarkModeCSSWithSelector(light, dark, selector) + "\n"
}

func cssBlock(selector string, leaves []Leaf) string {
	var b strings.Builder
	b.Grow(len(leaves) * 40)
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, leaf := range leaves {
		b.WriteString("  ")
		b.WriteString(leaf.Declaration())
		b.WriteByte('\n')
	}
	b.WriteString("}")
	return b.String()
}
