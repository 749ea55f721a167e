package tokens

// TailwindTheme is the key layout of a Tailwind `theme.extend` block.
type TailwindTheme struct {
	Colors             ColorTokens      `json:"colors"`
	Spacing            SpacingTokens    `json:"spacing"`
	FontFamily         FontFamilyTokens `json:"fontFamily"`
	FontSize           FontSizeTokens   `json:"fontSize"`
	FontWeight         FontWeightTokens `json:"fontWeight"`
	LineHeight         LineHeightTokens `json:"lineHeight"`
	BorderRadius       RadiiTokens      `json:"borderRadius"`
	BoxShadow          ShadowTokens     `json:"boxShadow"`
	TransitionDuration TransitionTokens `json:"transitionDuration"`
}

// ToTailwindTheme relabels t for Tailwind. It copies groups as they are and
// never introduces values of its own.
func ToTailwindTheme(t ThemeTokens) TailwindTheme {
	return TailwindTheme{
		Colors:             t.Colors,
		Spacing:            t.Spacing,
		FontFamily:         t.Typography.FontFamily,
		FontSize:           t.Typography.FontSize,
		FontWeight:         t.Typography.FontWeight,
		LineHeight:         t.Typography.LineHeight,
		BorderRadius:       t.Radii,
		BoxShadow:          t.Shadows,
		TransitionDuration: t.Transitions,
	}
}
