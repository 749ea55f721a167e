// Package tokens holds the design-token model and its projections.
//
// A ThemeTokens value is a plain, pointer-free struct: copying it yields an
// independent instance, so themes are immutable once constructed and safe to
// share between goroutines. Every projection (JSON envelope, CSS custom
// properties, Tailwind theme object) reads a ThemeTokens and allocates a new
// result without touching its input.
package tokens

import "strconv"

// Shade identifies one step of a ColorScale.
type Shade int

const (
	Shade50  Shade = 50
	Shade100 Shade = 100
	Shade200 Shade = 200
	Shade300 Shade = 300
	Shade400 Shade = 400
	Shade500 Shade = 500
	Shade600 Shade = 600
	Shade700 Shade = 700
	Shade800 Shade = 800
	Shade900 Shade = 900
	Shade950 Shade = 950
)

// ShadeCount is the number of shades in every ColorScale.
const ShadeCount = 11

// ShadeOrder lists shades from lightest to darkest in light mode.
var ShadeOrder = [ShadeCount]Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400, Shade500,
	Shade600, Shade700, Shade800, Shade900, Shade950,
}

// EdgeShades must change value between a light theme and its dark counterpart.
var EdgeShades = []Shade{Shade50, Shade100, Shade900, Shade950}

func (s Shade) String() string {
	return strconv.Itoa(int(s))
}

// Index returns the position of s in ShadeOrder, or -1.
func (s Shade) Index() int {
	for i, shade := range ShadeOrder {
		if shade == s {
			return i
		}
	}
	return -1
}

// Role is a semantic color slot.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleSuccess   Role = "success"
	RoleWarning   Role = "warning"
	RoleDanger    Role = "danger"
	RoleNeutral   Role = "neutral"
)

// RoleOrder is the declared order of color roles.
var RoleOrder = []Role{RolePrimary, RoleSecondary, RoleSuccess, RoleWarning, RoleDanger, RoleNeutral}

// Entry is one key/value pair of a fixed-key token group.
type Entry struct {
	Key   string
	Value string
}

// ThemeTokens is the aggregate root of a design-token set.
type ThemeTokens struct {
	Colors      ColorTokens      `json:"colors" yaml:"colors"`
	Spacing     SpacingTokens    `json:"spacing" yaml:"spacing"`
	Typography  TypographyTokens `json:"typography" yaml:"typography"`
	Radii       RadiiTokens      `json:"radii" yaml:"radii"`
	Shadows     ShadowTokens     `json:"shadows" yaml:"shadows"`
	Transitions TransitionTokens `json:"transitions" yaml:"transitions"`
}

// ColorTokens binds every semantic role to a ColorScale.
type ColorTokens struct {
	Primary   ColorScale `json:"primary" yaml:"primary"`
	Secondary ColorScale `json:"secondary" yaml:"secondary"`
	Success   ColorScale `json:"success" yaml:"success"`
	Warning   ColorScale `json:"warning" yaml:"warning"`
	Danger    ColorScale `json:"danger" yaml:"danger"`
	Neutral   ColorScale `json:"neutral" yaml:"neutral"`
}

// Scale returns the scale bound to role.
func (c ColorTokens) Scale(role Role) (ColorScale, bool) {
	switch role {
	case RolePrimary:
		return c.Primary, true
	case RoleSecondary:
		return c.Secondary, true
	case RoleSuccess:
		return c.Success, true
	case RoleWarning:
		return c.Warning, true
	case RoleDanger:
		return c.Danger, true
	case RoleNeutral:
		return c.Neutral, true
	default:
		return ColorScale{}, false
	}
}

// WithScale returns a copy of c with role rebound to scale.
func (c ColorTokens) WithScale(role Role, scale ColorScale) ColorTokens {
	switch role {
	case RolePrimary:
		c.Primary = scale
	case RoleSecondary:
		c.Secondary = scale
	case RoleSuccess:
		c.Success = scale
	case RoleWarning:
		c.Warning = scale
	case RoleDanger:
		c.Danger = scale
	case RoleNeutral:
		c.Neutral = scale
	}
	return c
}

// ColorScale holds the eleven oklch shades of one role.
type ColorScale struct {
	S50  string `json:"50" yaml:"50" validate:"required,oklch"`
	S100 string `json:"100" yaml:"100" validate:"required,oklch"`
	S200 string `json:"200" yaml:"200" validate:"required,oklch"`
	S300 string `json:"300" yaml:"300" validate:"required,oklch"`
	S400 string `json:"400" yaml:"400" validate:"required,oklch"`
	S500 string `json:"500" yaml:"500" validate:"required,oklch"`
	S600 string `json:"600" yaml:"600" validate:"required,oklch"`
	S700 string `json:"700" yaml:"700" validate:"required,oklch"`
	S800 string `json:"800" yaml:"800" validate:"required,oklch"`
	S900 string `json:"900" yaml:"900" validate:"required,oklch"`
	S950 string `json:"950" yaml:"950" validate:"required,oklch"`
}

// NewColorScale builds a scale from values ordered lightest to darkest.
func NewColorScale(values [ShadeCount]string) ColorScale {
	return ColorScale{
		S50: values[0], S100: values[1], S200: values[2], S300: values[3],
		S400: values[4], S500: values[5], S600: values[6], S700: values[7],
		S800: values[8], S900: values[9], S950: values[10],
	}
}

// Values returns the shades in ShadeOrder.
func (s ColorScale) Values() [ShadeCount]string {
	return [ShadeCount]string{
		s.S50, s.S100, s.S200, s.S300, s.S400, s.S500,
		s.S600, s.S700, s.S800, s.S900, s.S950,
	}
}

// Shade returns the value at shade, or false for an unknown shade.
func (s ColorScale) Shade(shade Shade) (string, bool) {
	idx := shade.Index()
	if idx < 0 {
		return "", false
	}
	return s.Values()[idx], true
}

// Entries returns the shades as key/value pairs in declared order.
func (s ColorScale) Entries() []Entry {
	values := s.Values()
	entries := make([]Entry, ShadeCount)
	for i, shade := range ShadeOrder {
		entries[i] = Entry{Key: shade.String(), Value: values[i]}
	}
	return entries
}

// SpacingTokens maps spacing steps to lengths; every length is a multiple of 4px.
type SpacingTokens struct {
	S0  string `json:"0" yaml:"0" validate:"required,spacing4"`
	S1  string `json:"1" yaml:"1" validate:"required,spacing4"`
	S2  string `json:"2" yaml:"2" validate:"required,spacing4"`
	S3  string `json:"3" yaml:"3" validate:"required,spacing4"`
	S4  string `json:"4" yaml:"4" validate:"required,spacing4"`
	S5  string `json:"5" yaml:"5" validate:"required,spacing4"`
	S6  string `json:"6" yaml:"6" validate:"required,spacing4"`
	S8  string `json:"8" yaml:"8" validate:"required,spacing4"`
	S10 string `json:"10" yaml:"10" validate:"required,spacing4"`
	S12 string `json:"12" yaml:"12" validate:"required,spacing4"`
	S16 string `json:"16" yaml:"16" validate:"required,spacing4"`
}

// SpacingSteps is the declared order of spacing step identifiers.
var SpacingSteps = []int{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16}

// Entries returns the spacing steps in declared order.
func (s SpacingTokens) Entries() []Entry {
	return []Entry{
		{"0", s.S0}, {"1", s.S1}, {"2", s.S2}, {"3", s.S3}, {"4", s.S4}, {"5", s.S5},
		{"6", s.S6}, {"8", s.S8}, {"10", s.S10}, {"12", s.S12}, {"16", s.S16},
	}
}

// TypographyTokens groups font family, size, weight, and line-height scales.
type TypographyTokens struct {
	FontFamily FontFamilyTokens `json:"fontFamily" yaml:"fontFamily"`
	FontSize   FontSizeTokens   `json:"fontSize" yaml:"fontSize"`
	FontWeight FontWeightTokens `json:"fontWeight" yaml:"fontWeight"`
	LineHeight LineHeightTokens `json:"lineHeight" yaml:"lineHeight"`
}

// FontFamilyTokens holds the sans and mono font stacks.
type FontFamilyTokens struct {
	Sans string `json:"sans" yaml:"sans" validate:"required"`
	Mono string `json:"mono" yaml:"mono" validate:"required"`
}

// Entries returns the font stacks in declared order.
func (f FontFamilyTokens) Entries() []Entry {
	return []Entry{{"sans", f.Sans}, {"mono", f.Mono}}
}

// FontSizeTokens holds the type scale from xs to 3xl.
type FontSizeTokens struct {
	XS   string `json:"xs" yaml:"xs" validate:"required"`
	SM   string `json:"sm" yaml:"sm" validate:"required"`
	Base string `json:"base" yaml:"base" validate:"required"`
	LG   string `json:"lg" yaml:"lg" validate:"required"`
	XL   string `json:"xl" yaml:"xl" validate:"required"`
	XL2  string `json:"2xl" yaml:"2xl" validate:"required"`
	XL3  string `json:"3xl" yaml:"3xl" validate:"required"`
}

// Entries returns the type scale in declared order.
func (f FontSizeTokens) Entries() []Entry {
	return []Entry{
		{"xs", f.XS}, {"sm", f.SM}, {"base", f.Base}, {"lg", f.LG},
		{"xl", f.XL}, {"2xl", f.XL2}, {"3xl", f.XL3},
	}
}

// FontWeightTokens holds numeric font weights.
type FontWeightTokens struct {
	Normal   string `json:"normal" yaml:"normal" validate:"required"`
	Medium   string `json:"medium" yaml:"medium" validate:"required"`
	Semibold string `json:"semibold" yaml:"semibold" validate:"required"`
	Bold     string `json:"bold" yaml:"bold" validate:"required"`
}

// Entries returns the font weights in declared order.
func (f FontWeightTokens) Entries() []Entry {
	return []Entry{{"normal", f.Normal}, {"medium", f.Medium}, {"semibold", f.Semibold}, {"bold", f.Bold}}
}

// LineHeightTokens holds unitless line heights.
type LineHeightTokens struct {
	Tight   string `json:"tight" yaml:"tight" validate:"required"`
	Normal  string `json:"normal" yaml:"normal" validate:"required"`
	Relaxed string `json:"relaxed" yaml:"relaxed" validate:"required"`
}

// Entries returns the line heights in declared order.
func (l LineHeightTokens) Entries() []Entry {
	return []Entry{{"tight", l.Tight}, {"normal", l.Normal}, {"relaxed", l.Relaxed}}
}

// RadiiTokens holds border-radius steps.
type RadiiTokens struct {
	None string `json:"none" yaml:"none" validate:"required"`
	SM   string `json:"sm" yaml:"sm" validate:"required"`
	MD   string `json:"md" yaml:"md" validate:"required"`
	LG   string `json:"lg" yaml:"lg" validate:"required"`
	XL   string `json:"xl" yaml:"xl" validate:"required"`
	Full string `json:"full" yaml:"full" validate:"required"`
}

// Entries returns the radius steps in declared order.
func (r RadiiTokens) Entries() []Entry {
	return []Entry{{"none", r.None}, {"sm", r.SM}, {"md", r.MD}, {"lg", r.LG}, {"xl", r.XL}, {"full", r.Full}}
}

// ShadowTokens holds elevation steps.
type ShadowTokens struct {
	SM string `json:"sm" yaml:"sm" validate:"required"`
	MD string `json:"md" yaml:"md" validate:"required"`
	LG string `json:"lg" yaml:"lg" validate:"required"`
}

// Entries returns the shadow steps in declared order.
func (s ShadowTokens) Entries() []Entry {
	return []Entry{{"sm", s.SM}, {"md", s.MD}, {"lg", s.LG}}
}

// TransitionTokens holds duration steps.
type TransitionTokens struct {
	Fast   string `json:"fast" yaml:"fast" validate:"required"`
	Normal string `json:"normal" yaml:"normal" validate:"required"`
	Slow   string `json:"slow" yaml:"slow" validate:"required"`
}

// Entries returns the durations in declared order.
func (t TransitionTokens) Entries() []Entry {
	return []Entry{{"fast", t.Fast}, {"normal", t.Normal}, {"slow", t.Slow}}
}
