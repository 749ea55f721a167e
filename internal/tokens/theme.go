package tokens

// defaultTheme is built once; DefaultTheme hands out copies.
var defaultTheme = newDefaultTheme()

// DefaultTheme returns the light palette that every projection is tested against.
func DefaultTheme() ThemeTokens {
	return defaultTheme
}

func newDefaultTheme() ThemeTokens {
	return ThemeTokens{
		Colors: ColorTokens{
			Primary: NewColorScale([ShadeCount]string{
				"oklch(0.97 0.02 250)",
				"oklch(0.94 0.04 250)",
				"oklch(0.88 0.08 250)",
				"oklch(0.80 0.12 250)",
				"oklch(0.70 0.16 250)",
				"oklch(0.60 0.20 250)",
				"oklch(0.52 0.18 250)",
				"oklch(0.44 0.16 250)",
				"oklch(0.36 0.14 250)",
				"oklch(0.28 0.12 250)",
				"oklch(0.20 0.10 250)",
			}),
			Secondary: NewColorScale([ShadeCount]string{
				"oklch(0.97 0.01 280)",
				"oklch(0.94 0.02 280)",
				"oklch(0.88 0.04 280)",
				"oklch(0.80 0.06 280)",
				"oklch(0.70 0.08 280)",
				"oklch(0.60 0.10 280)",
				"oklch(0.52 0.09 280)",
				"oklch(0.44 0.08 280)",
				"oklch(0.36 0.07 280)",
				"oklch(0.28 0.06 280)",
				"oklch(0.20 0.05 280)",
			}),
			Success: NewColorScale([ShadeCount]string{
				"oklch(0.97 0.03 145)",
				"oklch(0.94 0.06 145)",
				"oklch(0.88 0.10 145)",
				"oklch(0.80 0.14 145)",
				"oklch(0.70 0.18 145)",
				"oklch(0.60 0.20 145)",
				"oklch(0.52 0.18 145)",
				"oklch(0.44 0.16 145)",
				"oklch(0.36 0.14 145)",
				"oklch(0.28 0.12 145)",
				"oklch(0.20 0.10 145)",
			}),
			Warning: NewColorScale([ShadeCount]string{
				"oklch(0.97 0.03 85)",
				"oklch(0.94 0.06 85)",
				"oklch(0.88 0.12 85)",
				"oklch(0.80 0.16 85)",
				"oklch(0.75 0.18 85)",
				"oklch(0.70 0.20 85)",
				"oklch(0.62 0.18 85)",
				"oklch(0.54 0.16 85)",
				"oklch(0.46 0.14 85)",
				"oklch(0.38 0.12 85)",
				"oklch(0.30 0.10 85)",
			}),
			Danger: NewColorScale([ShadeCount]string{
				"oklch(0.97 0.02 25)",
				"oklch(0.94 0.04 25)",
				"oklch(0.88 0.08 25)",
				"oklch(0.80 0.14 25)",
				"oklch(0.70 0.18 25)",
				"oklch(0.60 0.22 25)",
				"oklch(0.52 0.20 25)",
				"oklch(0.44 0.18 25)",
				"oklch(0.36 0.16 25)",
				"oklch(0.28 0.14 25)",
				"oklch(0.20 0.12 25)",
			}),
			Neutral: NewColorScale([ShadeCount]string{
				"oklch(0.98 0 0)",
				"oklch(0.96 0 0)",
				"oklch(0.90 0 0)",
				"oklch(0.83 0 0)",
				"oklch(0.70 0 0)",
				"oklch(0.55 0 0)",
				"oklch(0.45 0 0)",
				"oklch(0.37 0 0)",
				"oklch(0.27 0 0)",
				"oklch(0.20 0 0)",
				"oklch(0.13 0 0)",
			}),
		},
		Spacing: SpacingTokens{
			S0:  "0px",
			S1:  "4px",
			S2:  "8px",
			S3:  "12px",
			S4:  "16px",
			S5:  "20px",
			S6:  "24px",
			S8:  "32px",
			S10: "40px",
			S12: "48px",
			S16: "64px",
		},
		Typography: TypographyTokens{
			FontFamily: FontFamilyTokens{
				Sans: `"Inter", system-ui, sans-serif`,
				Mono: `"JetBrains Mono", monospace`,
			},
			FontSize: FontSizeTokens{
				XS:   "0.75rem",
				SM:   "0.875rem",
				Base: "1rem",
				LG:   "1.125rem",
				XL:   "1.25rem",
				XL2:  "1.5rem",
				XL3:  "1.875rem",
			},
			FontWeight: FontWeightTokens{
				Normal:   "400",
				Medium:   "500",
				Semibold: "600",
				Bold:     "700",
			},
			LineHeight: LineHeightTokens{
				Tight:   "1.25",
				Normal:  "1.5",
				Relaxed: "1.75",
			},
		},
		Radii: RadiiTokens{
			None: "0",
			SM:   "0.125rem",
			MD:   "0.375rem",
			LG:   "0.5rem",
			XL:   "0.75rem",
			Full: "9999px",
		},
		Shadows: ShadowTokens{
			SM: "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			MD: "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
			LG: "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
		},
		Transitions: TransitionTokens{
			Fast:   "150ms",
			Normal: "200ms",
			Slow:   "300ms",
		},
	}
}
