package jsonschema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatedUser struct {
	ID    int    `json:"id" jsonschema:"minimum=1"`
	Name  string `json:"name" jsonschema:"minLength=1"`
	Email string `json:"email" jsonschema:"format=email"`
	Age   *int   `json:"age"`
}

func TestValidateStructInstance(t *testing.T) {
	schema, err := FromStruct[validatedUser](nil)
	require.NoError(t, err)

	age := 30
	result, err := schema.ValidateStruct(validatedUser{ID: 1, Name: "Alice", Email: "alice@example.com", Age: &age})
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	result, err = schema.ValidateStruct(&validatedUser{ID: 0, Name: "", Email: "x"})
	require.NoError(t, err, "pointer instances are accepted")
	require.False(t, result.IsValid())
	assert.Len(t, result.Errors, 3)
}

func TestValidateStructNilPointerIsAbsent(t *testing.T) {
	type record struct {
		Always string  `json:"always"`
		Maybe  *string `json:"maybe" jsonschema:"required"`
	}

	schema, err := FromStruct[record](nil)
	require.NoError(t, err)

	// The nil pointer counts as an absent member, so the explicit required
	// annotation fails.
	result, err := schema.ValidateStruct(record{Always: "x"})
	require.NoError(t, err)
	require.False(t, result.IsValid())
	assert.Contains(t, result.Messages()[0], "'maybe' is missing")

	value := "present"
	result, err = schema.ValidateStruct(record{Always: "x", Maybe: &value})
	require.NoError(t, err)
	assert.True(t, result.IsValid())
}

func TestValidateStructTypeGuard(t *testing.T) {
	type other struct {
		ID int `json:"id"`
	}

	schema, err := FromStruct[validatedUser](nil)
	require.NoError(t, err)

	_, err = schema.ValidateStruct(other{ID: 1})
	require.ErrorIs(t, err, ErrSourceTypeMismatch)

	_, err = schema.ValidateStruct(42)
	require.ErrorIs(t, err, ErrUnsupportedInputType)

	_, err = schema.ValidateStruct((*validatedUser)(nil))
	require.ErrorIs(t, err, ErrUnsupportedInputType)
}

func TestValidateStructAgainstHandWrittenSchema(t *testing.T) {
	// Schemas without a source type accept any struct instance.
	schema := compileString(t, `{
		"type": "object",
		"properties": {"n": {"minimum": 1}},
		"required": ["n"]
	}`)

	type holder struct {
		N int `json:"n"`
	}

	result, err := schema.ValidateStruct(holder{N: 2})
	require.NoError(t, err)
	assert.True(t, result.IsValid())

	result, err = schema.ValidateStruct(holder{N: 0})
	require.NoError(t, err)
	assert.False(t, result.IsValid())
}

func TestValidateStructNestedConversion(t *testing.T) {
	type address struct {
		City string `json:"city" jsonschema:"minLength=1"`
	}
	type person struct {
		Name    string         `json:"name"`
		Home    address        `json:"home"`
		Tags    []string       `json:"tags" jsonschema:"uniqueItems"`
		Scores  map[string]int `json:"scores"`
		Joined  time.Time      `json:"joined" jsonschema:"format=date-time"`
		Comment []byte         `json:"comment"`
	}

	schema, err := FromStruct[person](nil)
	require.NoError(t, err)

	result, err := schema.ValidateStruct(person{
		Name:    "n",
		Home:    address{City: "Berlin"},
		Tags:    []string{"a", "b"},
		Scores:  map[string]int{"x": 1},
		Joined:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Comment: []byte("hello"),
	})
	require.NoError(t, err)
	assert.True(t, result.IsValid(), "errors: %v", result.Messages())

	result, err = schema.ValidateStruct(person{
		Name: "n",
		Home: address{City: ""},
		Tags: []string{"a", "a"},
	})
	require.NoError(t, err)
	require.False(t, result.IsValid())

	paths := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		paths = append(paths, e.Path)
	}
	assert.Contains(t, paths, "home.city")
	assert.Contains(t, paths, "tags")
}
