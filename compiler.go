package jsonschema

import (
	"io"
	"net/url"
	"sync"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Compiler turns schema documents into initialized Schema trees and caches
// them by URI so absolute $ref targets resolve across documents. Loaders
// fetch schema bytes per URI scheme; they exist for test harnesses that need
// to pre-populate cross-document references. Validation itself never
// performs I/O.
type Compiler struct {
	mu      sync.RWMutex
	schemas map[string]*Schema

	// MediaTypes convert raw input into JSON bytes before parsing.
	MediaTypes map[string]func([]byte) ([]byte, error)

	// Loaders fetch schema documents by URI scheme.
	Loaders map[string]func(uri string) (io.ReadCloser, error)

	// AssertFormat controls whether the "format" keyword is an assertion
	// (the default) or an annotation, as the official test suite expects.
	AssertFormat bool
}

// NewCompiler creates a Compiler with JSON and YAML media types registered
// and format assertion enabled.
func NewCompiler() *Compiler {
	c := &Compiler{
		schemas:      make(map[string]*Schema),
		MediaTypes:   make(map[string]func([]byte) ([]byte, error)),
		Loaders:      make(map[string]func(uri string) (io.ReadCloser, error)),
		AssertFormat: true,
	}
	c.MediaTypes["application/json"] = func(data []byte) ([]byte, error) { return data, nil }
	c.MediaTypes["application/yaml"] = yamlToJSON
	return c
}

// WithAssertFormat toggles format assertion and returns the compiler.
func (c *Compiler) WithAssertFormat(assert bool) *Compiler {
	c.AssertFormat = assert
	return c
}

// RegisterLoader installs a loader for a URI scheme, e.g. "http".
func (c *Compiler) RegisterLoader(scheme string, loader func(uri string) (io.ReadCloser, error)) {
	c.Loaders[scheme] = loader
}

// Compile parses a JSON schema document, initializes it and caches it under
// its $id or, failing that, the optionally supplied URI.
func (c *Compiler) Compile(jsonSchema []byte, uris ...string) (*Schema, error) {
	schema, err := newSchema(jsonSchema)
	if err != nil {
		return nil, errors.Wrap(ErrSchemaCompilation, err.Error())
	}

	uri := schema.ID
	if uri == "" && len(uris) > 0 {
		uri = uris[0]
	}
	if uri != "" && isAbsoluteURI(uri) {
		schema.uri = uri
		schema.baseURI = getBaseURI(uri)

		c.mu.RLock()
		existing, exists := c.schemas[uri]
		c.mu.RUnlock()
		if exists {
			return existing, nil
		}
	}

	schema.initializeSchema(c, nil)

	if schema.uri != "" {
		c.mu.Lock()
		c.schemas[schema.uri] = schema
		c.mu.Unlock()
	}
	return schema, nil
}

// CompileYAML parses a YAML schema document.
func (c *Compiler) CompileYAML(yamlSchema []byte, uris ...string) (*Schema, error) {
	return c.CompileWithMediaType(yamlSchema, "application/yaml", uris...)
}

// CompileWithMediaType parses a schema document through the registered
// handler for the given media type.
func (c *Compiler) CompileWithMediaType(data []byte, mediaType string, uris ...string) (*Schema, error) {
	handler, ok := c.MediaTypes[mediaType]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMediaType, "%q", mediaType)
	}
	converted, err := handler(data)
	if err != nil {
		return nil, errors.Wrap(ErrSchemaCompilation, err.Error())
	}
	return c.Compile(converted, uris...)
}

// MustCompile is Compile for static schema text; it panics on failure.
func (c *Compiler) MustCompile(jsonSchema string) *Schema {
	schema, err := c.Compile([]byte(jsonSchema))
	if err != nil {
		panic(err)
	}
	return schema
}

// GetSchema returns the schema cached under uri, fetching it through the
// registered loader for its scheme when absent.
func (c *Compiler) GetSchema(uri string) (*Schema, error) {
	c.mu.RLock()
	schema, ok := c.schemas[uri]
	c.mu.RUnlock()
	if ok {
		return schema, nil
	}

	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme == "" {
		return nil, errors.Wrapf(ErrExternalRefUnsupported, "uri %q", uri)
	}
	loader, ok := c.Loaders[parsed.Scheme]
	if !ok {
		return nil, errors.Wrapf(ErrNoLoaderRegistered, "scheme %q", parsed.Scheme)
	}
	body, err := loader(uri)
	if err != nil || body == nil {
		return nil, errors.Wrapf(ErrExternalRefUnsupported, "uri %q not loadable", uri)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrapf(ErrSchemaCompilation, "read %q: %v", uri, err)
	}
	return c.Compile(data, uri)
}

// yamlToJSON converts a YAML document into its JSON encoding.
func yamlToJSON(data []byte) ([]byte, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}
