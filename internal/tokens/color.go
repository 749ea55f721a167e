package tokens

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// OKLCHPattern is the accepted textual form of a color token.
const OKLCHPattern = `^oklch\(\d+(\.\d+)?\s+\d+(\.\d+)?\s+\d+(\.\d+)?\)$`

var (
	oklchRegex   = regexp.MustCompile(OKLCHPattern)
	channelRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// OKLCH is a parsed oklch color: lightness (0..1), chroma, and hue in degrees.
type OKLCH struct {
	L float64
	C float64
	H float64
}

// IsOKLCH reports whether value matches OKLCHPattern.
func IsOKLCH(value string) bool {
	return oklchRegex.MatchString(value)
}

// ParseOKLCH parses a string of the form "oklch(L C H)".
func ParseOKLCH(value string) (OKLCH, error) {
	if !IsOKLCH(value) {
		return OKLCH{}, fmt.Errorf("invalid oklch color %q", value)
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(value, "oklch("), ")")
	channels := channelRegex.FindAllString(inner, -1)
	if len(channels) != 3 {
		return OKLCH{}, fmt.Errorf("invalid oklch color %q: expected 3 channels", value)
	}

	var parsed [3]float64
	for i, raw := range channels {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return OKLCH{}, fmt.Errorf("invalid oklch channel %q: %w", raw, err)
		}
		parsed[i] = v
	}
	return OKLCH{L: parsed[0], C: parsed[1], H: parsed[2]}, nil
}

// String renders the color so that IsOKLCH accepts it. Fractional channels
// keep at least two decimals; whole numbers are written without a point.
func (c OKLCH) String() string {
	return fmt.Sprintf("oklch(%s %s %s)", formatChannel(c.L), formatChannel(c.C), formatChannel(c.H))
}

func formatChannel(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 < 2 {
		s += strings.Repeat("0", 2-(len(s)-dot-1))
	}
	return s
}
