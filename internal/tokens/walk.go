package tokens

// Category groups leaves by token family. The numeric order is the order in
// which projections emit them.
type Category int

const (
	CategoryColor Category = iota
	CategorySpacing
	CategoryFontFamily
	CategoryFontSize
	CategoryFontWeight
	CategoryLineHeight
	CategoryRadius
	CategoryShadow
	CategoryTransition
)

// Leaf is one token value together with its document path and CSS variable name.
type Leaf struct {
	Category Category
	Path     string
	Var      string
	Value    string
}

// Declaration renders the leaf as a CSS custom-property declaration.
func (l Leaf) Declaration() string {
	return l.Var + ": " + l.Value + ";"
}

// Leaves returns every token value of t: colors by role then shade, then
// spacing, the four typography groups, radii, shadows, and transitions.
// Within a group the model's declared key order is kept.
func Leaves(t ThemeTokens) []Leaf {
	leaves := make([]Leaf, 0, 128)
	leaves = append(leaves, ColorLeaves(t.Colors)...)
	leaves = appendGroup(leaves, CategorySpacing, "spacing", "--spacing-", t.Spacing.Entries())
	leaves = appendGroup(leaves, CategoryFontFamily, "typography.fontFamily", "--font-", t.Typography.FontFamily.Entries())
	leaves = appendGroup(leaves, CategoryFontSize, "typography.fontSize", "--text-", t.Typography.FontSize.Entries())
	leaves = appendGroup(leaves, CategoryFontWeight, "typography.fontWeight", "--font-weight-", t.Typography.FontWeight.Entries())
	leaves = appendGroup(leaves, CategoryLineHeight, "typography.lineHeight", "--leading-", t.Typography.LineHeight.Entries())
	leaves = appendGroup(leaves, CategoryRadius, "radii", "--radius-", t.Radii.Entries())
	leaves = appendGroup(leaves, CategoryShadow, "shadows", "--shadow-", t.Shadows.Entries())
	leaves = appendGroup(leaves, CategoryTransition, "transitions", "--transition-", t.Transitions.Entries())
	return leaves
}

// ColorLeaves returns one leaf per (role, shade) pair.
func ColorLeaves(c ColorTokens) []Leaf {
	leaves := make([]Leaf, 0, len(RoleOrder)*ShadeCount)
	for _, role := range RoleOrder {
		scale, _ := c.Scale(role)
		leaves = appendGroup(leaves, CategoryColor, "colors."+string(role), "--color-"+string(role)+"-", scale.Entries())
	}
	return leaves
}

func appendGroup(leaves []Leaf, category Category, pathPrefix, varPrefix string, entries []Entry) []Leaf {
	for _, e := range entries {
		leaves = append(leaves, Leaf{
			Category: category,
			Path:     pathPrefix + "." + e.Key,
			Var:      varPrefix + e.Key,
			Value:    e.Value,
		})
	}
	return leaves
}
