package jsonschema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaUnmarshalKeywords(t *testing.T) {
	schema := compileString(t, `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"$id": "https://example.com/product.json",
		"title": "Product",
		"type": "object",
		"properties": {
			"price": {"type": "number", "exclusiveMinimum": 0},
			"tags": {"type": "array", "items": {"type": "string"}, "uniqueItems": true}
		},
		"required": ["price"]
	}`)

	assert.Equal(t, Draft07, schema.Schema)
	assert.Equal(t, "https://example.com/product.json", schema.ID)
	require.NotNil(t, schema.Title)
	assert.Equal(t, "Product", *schema.Title)
	assert.Equal(t, SchemaType{"object"}, schema.Type)

	price, ok := schema.Properties.Get("price")
	require.True(t, ok)
	require.NotNil(t, price.ExclusiveMinimum)
	require.NotNil(t, price.ExclusiveMinimum.Rat, "numeric form")

	tags, ok := schema.Properties.Get("tags")
	require.True(t, ok)
	require.NotNil(t, tags.Items)
	assert.Nil(t, tags.Items.Tuple)
	assert.Equal(t, SchemaType{"string"}, tags.Items.Schema.Type)
}

func TestSchemaTypeForms(t *testing.T) {
	var single SchemaType
	require.NoError(t, json.Unmarshal([]byte(`"string"`), &single))
	assert.Equal(t, SchemaType{"string"}, single)

	var many SchemaType
	require.NoError(t, json.Unmarshal([]byte(`["string","null"]`), &many))
	assert.Equal(t, SchemaType{"string", "null"}, many)

	out, err := json.Marshal(single)
	require.NoError(t, err)
	assert.Equal(t, `"string"`, string(out))

	out, err = json.Marshal(many)
	require.NoError(t, err)
	assert.Equal(t, `["string","null"]`, string(out))
}

func TestExclusiveForms(t *testing.T) {
	var boolForm Exclusive
	require.NoError(t, json.Unmarshal([]byte(`true`), &boolForm))
	require.NotNil(t, boolForm.Bool)
	assert.True(t, *boolForm.Bool)

	var numberForm Exclusive
	require.NoError(t, json.Unmarshal([]byte(`2.5`), &numberForm))
	require.NotNil(t, numberForm.Rat)
	assert.Equal(t, "2.5", FormatRat(numberForm.Rat))

	out, err := json.Marshal(&numberForm)
	require.NoError(t, err)
	assert.Equal(t, `2.5`, string(out))
}

func TestItemsValueForms(t *testing.T) {
	var single ItemsValue
	require.NoError(t, json.Unmarshal([]byte(`{"type":"integer"}`), &single))
	require.NotNil(t, single.Schema)
	assert.Nil(t, single.Tuple)

	var tuple ItemsValue
	require.NoError(t, json.Unmarshal([]byte(`[{"type":"integer"},true]`), &tuple))
	require.Len(t, tuple.Tuple, 2)
	require.NotNil(t, tuple.Tuple[1].Boolean)
	assert.True(t, *tuple.Tuple[1].Boolean)
}

func TestDependencyForms(t *testing.T) {
	var listArm Dependency
	require.NoError(t, json.Unmarshal([]byte(`["a","b"]`), &listArm))
	assert.Equal(t, []string{"a", "b"}, listArm.Required)
	assert.Nil(t, listArm.Schema)

	var schemaArm Dependency
	require.NoError(t, json.Unmarshal([]byte(`{"required":["a"]}`), &schemaArm))
	assert.Nil(t, schemaArm.Required)
	require.NotNil(t, schemaArm.Schema)
}

func TestSchemaMapPreservesOrder(t *testing.T) {
	document := `{"zeta":{"type":"string"},"alpha":{"type":"integer"},"mid":{"type":"boolean"}}`
	var m SchemaMap
	require.NoError(t, json.Unmarshal([]byte(document), &m))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())

	out, err := json.Marshal(&m)
	require.NoError(t, err)
	assert.JSONEq(t, document, string(out))
	assert.Equal(t, document, string(out), "member order survives the round trip")
}

func TestSchemaMarshalRoundTrip(t *testing.T) {
	original := `{"type":"object","properties":{"b":{"type":"string"},"a":{"type":"integer"}},"required":["b"]}`
	schema, err := newSchema([]byte(original))
	require.NoError(t, err)

	first, err := json.Marshal(schema)
	require.NoError(t, err)
	second, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), `"properties":{"b":{"type":"string"},"a":{"type":"integer"}}`)
}

func TestBooleanSchemaMarshal(t *testing.T) {
	schema := compileString(t, `{"properties":{"open":true,"closed":false}}`)
	out, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Equal(t, `{"properties":{"open":true,"closed":false}}`, string(out))
}

func TestConstValueKeepsNull(t *testing.T) {
	schema := compileString(t, `{"const":null}`)
	require.NotNil(t, schema.Const, "const null is present, not absent")
	assert.True(t, schema.IsValid(nil))
	assert.False(t, schema.IsValid(parseJSON(t, `0`)))

	out, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Equal(t, `{"const":null}`, string(out))
}

func TestRatKeepsLiteral(t *testing.T) {
	schema := compileString(t, `{"minimum":0.1,"maximum":1e3}`)
	out, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"minimum":0.1`)
	assert.Contains(t, string(out), `"maximum":1e3`)
}

func TestConstructorAPI(t *testing.T) {
	schema := Object(
		Prop("name", String(MinLen(1))),
		Prop("age", Integer(Min(0), Max(150))),
		Prop("tags", Array(Items(String()), UniqueItems(true))),
		Required("name"),
		NoAdditionalProps(),
	)

	assert.True(t, schema.IsValid(map[string]any{"name": "a", "age": float64(30)}))
	assert.False(t, schema.IsValid(map[string]any{"age": float64(30)}), "name is required")
	assert.False(t, schema.IsValid(map[string]any{"name": "a", "extra": true}))

	choice := OneOf(Integer(), String())
	assert.True(t, choice.IsValid("x"))
	assert.False(t, choice.IsValid(true))
}
