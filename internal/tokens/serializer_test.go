package tokens

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paletteerrors "github.com/alexisbeaulieu97/palette/pkg/errors"
)

func TestSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	for name, theme := range map[string]ThemeTokens{"light": DefaultTheme(), "dark": DarkTheme()} {
		name := name
		theme := theme
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc, err := Serialize(theme)
			require.NoError(t, err)

			back, err := Deserialize(doc)
			require.NoError(t, err)
			assert.Equal(t, theme, back)
			assert.Equal(t, theme.Colors.Neutral.S950, back.Colors.Neutral.S950)
		})
	}
}

func TestSerializeRoundTripRandomThemes(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		theme := randomTheme(r)
		doc, err := Serialize(theme)
		require.NoError(t, err)

		back, err := Deserialize(doc)
		require.NoError(t, err)
		require.Equal(t, theme, back)
	}
}

func TestValidateRejectsValuesThatCannotRoundTrip(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	theme.Typography.FontFamily.Sans = "Inter\xff"
	theme.Shadows.LG = "0 0 \xc3"

	_, err := Validate(theme)
	var schemaErr *paletteerrors.SchemaViolationError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"typography.fontFamily.sans", "shadows.lg"}, schemaErr.Paths())
	assert.Equal(t, "utf8", schemaErr.Violations[0].Rule)
	assert.Equal(t, "Inter\ufffd", schemaErr.Violations[0].Value)

	_, err = Serialize(theme)
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"typography.fontFamily.sans", "shadows.lg"}, schemaErr.Paths())
}

func TestValidateKeepsFirstRuleForBrokenColor(t *testing.T) {
	t.Parallel()

	theme := DefaultTheme()
	theme.Colors.Primary.S50 = "oklch(\xff)"

	_, err := Validate(theme)
	var schemaErr *paletteerrors.SchemaViolationError
	require.ErrorAs(t, err, &schemaErr)
	require.Len(t, schemaErr.Violations, 1)
	assert.Equal(t, "colors.primary.50", schemaErr.Violations[0].Path)
	assert.Equal(t, "oklch", schemaErr.Violations[0].Rule)
}

func TestSerializeIsDeterministicAndIndented(t *testing.T) {
	t.Parallel()

	first, err := Serialize(DefaultTheme())
	require.NoError(t, err)
	second, err := Serialize(DefaultTheme())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.True(t, strings.HasPrefix(first, "{\n  \"version\": \"1.0.0\",\n  \"tokens\": {\n    \"colors\": {"))
	assert.True(t, json.Valid([]byte(first)))
	assert.False(t, strings.HasSuffix(first, "\n"))

	// key order follows the model, not alphabetical order
	assert.Less(t, strings.Index(first, `"colors"`), strings.Index(first, `"spacing"`))
	assert.Less(t, strings.Index(first, `"spacing"`), strings.Index(first, `"typography"`))
	assert.Less(t, strings.Index(first, `"50"`), strings.Index(first, `"100"`))
	assert.Less(t, strings.Index(first, `"shadows"`), strings.Index(first, `"transitions"`))
}

func TestDeserializeMalformed(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"{",
		"not json",
		`{"version": "1.0.0", "tokens": {}`,
		`[1, 2, 3]`,
		`{"version": 1}`,
	} {
		_, err := Deserialize(input)
		require.ErrorIs(t, err, paletteerrors.ErrMalformedDocument, input)

		var malformedErr *paletteerrors.MalformedDocumentError
		assert.ErrorAs(t, err, &malformedErr, input)
	}
}

func TestDeserializeUnsupportedVersion(t *testing.T) {
	t.Parallel()

	doc, err := Serialize(DefaultTheme())
	require.NoError(t, err)
	doc = strings.Replace(doc, `"version": "1.0.0"`, `"version": "99.0.0"`, 1)

	_, err = Deserialize(doc)
	require.ErrorIs(t, err, paletteerrors.ErrUnsupportedVersion)

	var versionErr *paletteerrors.UnsupportedVersionError
	require.ErrorAs(t, err, &versionErr)
	assert.Equal(t, "99.0.0", versionErr.Got)
	assert.Equal(t, SerializerVersion, versionErr.Want)

	_, err = Deserialize(`{"tokens": {}}`)
	require.ErrorIs(t, err, paletteerrors.ErrUnsupportedVersion)
}

func TestDeserializeSchemaViolations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(map[string]any)
		path   string
	}{
		{
			name: "missing tokens",
			mutate: func(doc map[string]any) {
				delete(doc, "tokens")
			},
			path: "tokens",
		},
		{
			name: "bad shade",
			mutate: func(doc map[string]any) {
				colors := doc["tokens"].(map[string]any)["colors"].(map[string]any)
				colors["success"].(map[string]any)["400"] = "rgb(0 255 0)"
			},
			path: "colors.success.400",
		},
		{
			name: "missing role",
			mutate: func(doc map[string]any) {
				delete(doc["tokens"].(map[string]any)["colors"].(map[string]any), "danger")
			},
			path: "colors.danger.50",
		},
		{
			name: "off-grid spacing",
			mutate: func(doc map[string]any) {
				doc["tokens"].(map[string]any)["spacing"].(map[string]any)["5"] = "18px"
			},
			path: "spacing.5",
		},
		{
			name: "extra key",
			mutate: func(doc map[string]any) {
				doc["tokens"].(map[string]any)["radii"].(map[string]any)["2xl"] = "1rem"
			},
			path: "2xl",
		},
		{
			name: "wrong type",
			mutate: func(doc map[string]any) {
				doc["tokens"].(map[string]any)["shadows"] = []any{"a", "b"}
			},
			path: "shadows",
		},
	}

	base, err := Serialize(DefaultTheme())
	require.NoError(t, err)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var doc map[string]any
			require.NoError(t, json.Unmarshal([]byte(base), &doc))
			tc.mutate(doc)
			raw, err := json.Marshal(doc)
			require.NoError(t, err)

			_, err = Deserialize(string(raw))
			require.ErrorIs(t, err, paletteerrors.ErrSchemaViolation)

			var schemaErr *paletteerrors.SchemaViolationError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tc.path, schemaErr.Paths()[0])
		})
	}
}
