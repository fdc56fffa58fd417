package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileInvalidJSON(t *testing.T) {
	_, err := NewCompiler().Compile([]byte(`{"type":`))
	require.ErrorIs(t, err, ErrSchemaCompilation)
}

func TestCompileCachesByID(t *testing.T) {
	compiler := NewCompiler()
	document := []byte(`{"$id":"https://example.com/cached.json","type":"integer"}`)

	first, err := compiler.Compile(document)
	require.NoError(t, err)
	second, err := compiler.Compile(document)
	require.NoError(t, err)
	assert.Same(t, first, second)

	fetched, err := compiler.GetSchema("https://example.com/cached.json")
	require.NoError(t, err)
	assert.Same(t, first, fetched)
}

func TestCompileYAML(t *testing.T) {
	schema, err := NewCompiler().CompileYAML([]byte(`
type: object
properties:
  name:
    type: string
    minLength: 1
required:
  - name
`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(parseJSON(t, `{"name":"x"}`)))
	assert.False(t, schema.IsValid(parseJSON(t, `{"name":""}`)))
	assert.False(t, schema.IsValid(parseJSON(t, `{}`)))
}

func TestCompileWithMediaType(t *testing.T) {
	compiler := NewCompiler()

	schema, err := compiler.CompileWithMediaType([]byte("type: integer"), "application/yaml")
	require.NoError(t, err)
	assert.True(t, schema.IsValid(parseJSON(t, `1`)))

	_, err = compiler.CompileWithMediaType([]byte("x"), "application/toml")
	require.ErrorIs(t, err, ErrUnknownMediaType)
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() {
		NewCompiler().MustCompile(`{"bad`)
	})
	assert.NotPanics(t, func() {
		schema := NewCompiler().MustCompile(`{"type":"null"}`)
		assert.True(t, schema.IsValid(nil))
	})
}

func TestGetSchemaWithoutLoader(t *testing.T) {
	_, err := NewCompiler().GetSchema("http://example.com/absent.json")
	require.ErrorIs(t, err, ErrNoLoaderRegistered)
}

func TestConcurrentValidation(t *testing.T) {
	schema := compileString(t, `{"type":"object","properties":{"n":{"minimum":0}},"required":["n"]}`)
	instance := parseJSON(t, `{"n":1}`)

	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			ok := true
			for j := 0; j < 100; j++ {
				ok = ok && schema.IsValid(instance)
			}
			done <- ok
		}()
	}
	for i := 0; i < 8; i++ {
		assert.True(t, <-done)
	}
}
