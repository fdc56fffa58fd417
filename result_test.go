package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultMessagesArePathPrefixed(t *testing.T) {
	schema := compileString(t, `{
		"properties": {
			"id":   {"minimum": 1},
			"tags": {"items": {"type": "string"}}
		}
	}`)

	result := schema.Validate(parseJSON(t, `{"id":0,"tags":["ok",2]}`))
	require.False(t, result.IsValid())

	messages := result.Messages()
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "id: ")
	assert.Contains(t, messages[1], "tags[1]: ")
}

func TestResultOnValidInstance(t *testing.T) {
	schema := compileString(t, `{"type":"integer"}`)
	result := schema.Validate(parseJSON(t, `1`))

	// A valid result is a usable value, never a nil to dereference.
	require.NotNil(t, result)
	assert.True(t, result.IsValid())
	assert.Empty(t, result.Messages())
}

func TestRootErrorHasNoPrefix(t *testing.T) {
	schema := compileString(t, `{"type":"string"}`)
	result := schema.Validate(parseJSON(t, `1`))
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "", result.Errors[0].Path)
	assert.NotContains(t, result.Messages()[0], ": value is", "root messages carry no path prefix")
}

func TestEvaluationErrorInterpolation(t *testing.T) {
	err := NewEvaluationError("minimum", "value_below_minimum", "value {value} is less than the minimum of {minimum}", map[string]any{
		"value":   "0",
		"minimum": "1",
	})
	assert.Equal(t, "value 0 is less than the minimum of 1", err.Error())

	err.Path = "user.age"
	assert.Equal(t, "user.age: value 0 is less than the minimum of 1", err.String())
}
