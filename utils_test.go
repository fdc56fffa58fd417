package jsonschema

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compileString compiles schema text through a fresh compiler, failing the
// test on compilation errors.
func compileString(t *testing.T, schemaJSON string) *Schema {
	t.Helper()
	schema, err := NewCompiler().Compile([]byte(schemaJSON))
	require.NoError(t, err, "schema should compile")
	return schema
}

// parseJSON decodes instance text into the generic value tree.
func parseJSON(t *testing.T, instanceJSON string) any {
	t.Helper()
	var instance any
	require.NoError(t, json.Unmarshal([]byte(instanceJSON), &instance))
	return instance
}

func TestReplace(t *testing.T) {
	out := replace("value {value} should be at least {minimum}", map[string]any{
		"value":   "0",
		"minimum": "1",
	})
	assert.Equal(t, "value 0 should be at least 1", out)
}

func TestGetDataType(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "null"},
		{"bool", true, "boolean"},
		{"integral float", float64(3), "integer"},
		{"fractional float", 3.5, "number"},
		{"int", 42, "integer"},
		{"json number integer", json.Number("10"), "integer"},
		{"json number decimal", json.Number("10.5"), "number"},
		{"json number exponent", json.Number("1e2"), "integer"},
		{"string", "x", "string"},
		{"array", []any{1}, "array"},
		{"object", map[string]any{}, "object"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, getDataType(tc.value))
		})
	}
}

func TestJSONEqualNumbers(t *testing.T) {
	assert.True(t, jsonEqual(float64(1), 1))
	assert.True(t, jsonEqual(float64(1), json.Number("1.0")))
	assert.False(t, jsonEqual(true, 1), "booleans never equal numbers")
	assert.False(t, jsonEqual("1", 1), "strings never equal numbers")
	assert.True(t, jsonEqual(
		map[string]any{"a": float64(1), "b": []any{"x"}},
		map[string]any{"b": []any{"x"}, "a": json.Number("1")},
	), "object equality ignores member order")
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "foo", joinPath("", "foo"))
	assert.Equal(t, "foo.bar", joinPath("foo", "bar"))
	assert.Equal(t, "[0]", joinIndex("", 0))
	assert.Equal(t, "items[2]", joinIndex("items", 2))
}
