package tokens

import (
	"github.com/invopop/jsonschema"
)

// SchemaID identifies the published envelope schema.
const SchemaID = "https://github.com/alexisbeaulieu97/palette/schema/tokens-" + SerializerVersion + ".json"

const spacingPattern = `^\d+(\.\d+)?(px|rem)?$`

// JSONSchema describes the serialized envelope.
func JSONSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Document{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "Design token document"
	if version, ok := schema.Properties.Get("version"); ok {
		version.Const = SerializerVersion
	}
	return schema
}

// JSONSchemaExtend constrains every shade to the oklch form.
func (ColorScale) JSONSchemaExtend(schema *jsonschema.Schema) {
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.Pattern = OKLCHPattern
	}
}

// JSONSchemaExtend constrains spacing steps to plain lengths.
func (SpacingTokens) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Description = "Lengths in px or rem; each must resolve to a multiple of 4px."
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.Pattern = spacingPattern
	}
}
