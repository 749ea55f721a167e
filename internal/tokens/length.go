package tokens

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// SpacingUnit is the base spacing unit in pixels.
const SpacingUnit = 4

// rootFontSize converts rem lengths to pixels.
const rootFontSize = 16

var lengthRegex = regexp.MustCompile(`^(\d+(?:\.\d+)?)(px|rem)?$`)

// Pixels returns the magnitude of a CSS length in pixels. Bare numbers are
// read as pixels; rem is resolved against a 16px root.
func Pixels(length string) (float64, error) {
	matches := lengthRegex.FindStringSubmatch(length)
	if matches == nil {
		return 0, fmt.Errorf("invalid length %q", length)
	}
	v, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q: %w", length, err)
	}
	if matches[2] == "rem" {
		v *= rootFontSize
	}
	return v, nil
}

// IsSpacingMultiple reports whether length resolves to a whole multiple of SpacingUnit pixels.
func IsSpacingMultiple(length string) bool {
	px, err := Pixels(length)
	if err != nil {
		return false
	}
	return math.Mod(px, SpacingUnit) == 0
}
