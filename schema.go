package jsonschema

import (
	"bytes"
	"reflect"
	"regexp"

	"github.com/goccy/go-json"
)

// Draft07 is the $schema URI stamped on generated schemas.
const Draft07 = "http://json-schema.org/draft-07/schema#"

// Schema represents a JSON Schema draft-07 document or sub-schema. A nil
// keyword field means the keyword is absent. Boolean schemas (true / false)
// are represented by the Boolean field; all other fields are ignored while it
// is set.
//
// Field order mirrors the order keywords are written in generated output, so
// marshalling is byte-stable.
type Schema struct {
	compiledPatterns     map[string]*regexp.Regexp // Compiled patternProperties keys, nil entry for invalid patterns.
	compiledPattern      *regexp.Regexp            // Compiled "pattern" keyword.
	compiledPatternKnown bool                      // Whether the "pattern" keyword was compiled yet.
	compiler             *Compiler                 // Associated Compiler, if compiled through one.
	parent               *Schema                   // Parent schema for root and reference resolution.
	schemas              map[string]*Schema        // Root-level cache of absolute $id -> sub-schema.
	sourceType           reflect.Type              // Struct type a generated schema was derived from.
	uri                  string                    // Absolute identifier, when $id carries one.
	baseURI              string                    // Base URI for resolving relative references.

	// Boolean JSON Schemas, see https://json-schema.org/draft-07/json-schema-core#rfc.section.4.3.2
	Boolean *bool `json:"-"`

	Schema string `json:"$schema,omitempty"` // URI of the specification draft this schema conforms to.
	ID     string `json:"$id,omitempty"`     // Public identifier for the schema.

	// Meta-data keywords, see https://json-schema.org/draft-07/json-schema-validation#rfc.section.10
	Title       *string `json:"title,omitempty"`       // A short summary of the schema.
	Description *string `json:"description,omitempty"` // A detailed description of the purpose of the schema.
	Comment     *string `json:"$comment,omitempty"`    // Comment strictly for schema maintainers.

	// Schema reference, see https://json-schema.org/draft-07/json-schema-core#rfc.section.8
	Ref string `json:"$ref,omitempty"` // Reference resolved against the document root; siblings are ignored.

	// Validation keywords for any instance type, see https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.1
	Type  SchemaType  `json:"type,omitempty"`  // A single type name or an array of type names.
	Enum  []any       `json:"enum,omitempty"`  // Instance must equal one of these values.
	Const *ConstValue `json:"const,omitempty"` // Instance must equal this value.

	// Numeric keywords, see https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.2
	MultipleOf       *Rat       `json:"multipleOf,omitempty"`       // Number must be a multiple of this value, strictly greater than 0.
	Maximum          *Rat       `json:"maximum,omitempty"`          // Inclusive upper bound.
	ExclusiveMaximum *Exclusive `json:"exclusiveMaximum,omitempty"` // Strict upper bound; draft-04 boolean form modifies Maximum.
	Minimum          *Rat       `json:"minimum,omitempty"`          // Inclusive lower bound.
	ExclusiveMinimum *Exclusive `json:"exclusiveMinimum,omitempty"` // Strict lower bound; draft-04 boolean form modifies Minimum.

	// String keywords, see https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.3
	MaxLength *float64 `json:"maxLength,omitempty"` // Maximum length in Unicode code points.
	MinLength *float64 `json:"minLength,omitempty"` // Minimum length in Unicode code points.
	Pattern   *string  `json:"pattern,omitempty"`   // Regular expression the string must match.
	Format    *string  `json:"format,omitempty"`    // Named format, e.g. "email" or "date-time".

	// Array keywords, see https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.4
	Items           *ItemsValue `json:"items,omitempty"`           // Element schema, or a tuple of positional schemas.
	AdditionalItems *Schema     `json:"additionalItems,omitempty"` // Governs elements past the tuple; boolean or schema.
	MaxItems        *float64    `json:"maxItems,omitempty"`        // Maximum number of elements.
	MinItems        *float64    `json:"minItems,omitempty"`        // Minimum number of elements.
	UniqueItems     *bool       `json:"uniqueItems,omitempty"`     // Whether elements must be unique.
	Contains        *Schema     `json:"contains,omitempty"`        // At least one element must match this schema.

	// Object keywords, see https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5
	MaxProperties        *float64               `json:"maxProperties,omitempty"`        // Maximum number of members.
	MinProperties        *float64               `json:"minProperties,omitempty"`        // Minimum number of members.
	Required             []string               `json:"required,omitempty"`             // Member names that must be present.
	Properties           *SchemaMap             `json:"properties,omitempty"`           // Schemas for named members.
	PatternProperties    *SchemaMap             `json:"patternProperties,omitempty"`    // Schemas for members whose name matches a pattern.
	AdditionalProperties *Schema                `json:"additionalProperties,omitempty"` // Governs members not named above; boolean or schema.
	PropertyNames        *Schema                `json:"propertyNames,omitempty"`        // Every member name must match this schema.
	Dependencies         map[string]*Dependency `json:"dependencies,omitempty"`         // Per-key co-required names or conditional schema.

	// Keywords for applying subschemas with logic, see https://json-schema.org/draft-07/json-schema-core#rfc.section.6.7
	AllOf []*Schema `json:"allOf,omitempty"` // Instance must match every schema.
	AnyOf []*Schema `json:"anyOf,omitempty"` // Instance must match at least one schema.
	OneOf []*Schema `json:"oneOf,omitempty"` // Instance must match exactly one schema.
	Not   *Schema   `json:"not,omitempty"`   // Instance must not match this schema.

	// Conditional keywords, see https://json-schema.org/draft-07/json-schema-core#rfc.section.6.6
	If   *Schema `json:"if,omitempty"`
	Then *Schema `json:"then,omitempty"`
	Else *Schema `json:"else,omitempty"`

	Default  any   `json:"default,omitempty"`  // Default value of the instance; an annotation only.
	Examples []any `json:"examples,omitempty"` // Example instances; an annotation only.

	// Reusable schema definitions.
	Definitions *SchemaMap `json:"definitions,omitempty"` // The draft-07 location.
	Defs        *SchemaMap `json:"$defs,omitempty"`       // The post-2019 location, accepted for compatibility.
}

// newSchema parses JSON schema data and returns an uninitialized Schema.
func newSchema(jsonSchema []byte) (*Schema, error) {
	schema := &Schema{}
	if err := json.Unmarshal(jsonSchema, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// UnmarshalJSON accepts boolean schemas alongside the object form.
func (s *Schema) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("true")) {
		b := true
		s.Boolean = &b
		return nil
	}
	if bytes.Equal(trimmed, []byte("false")) {
		b := false
		s.Boolean = &b
		return nil
	}
	type alias Schema
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return err
	}
	// Decoding a JSON null into a pointer field discards it, but
	// "const": null is a present keyword, not an absent one.
	if s.Const == nil {
		var probe struct {
			Const json.RawMessage `json:"const"`
		}
		if err := json.Unmarshal(data, &probe); err == nil &&
			bytes.Equal(bytes.TrimSpace(probe.Const), []byte("null")) {
			s.Const = &ConstValue{raw: json.RawMessage("null")}
		}
	}
	return nil
}

// MarshalJSON writes boolean schemas back as bare booleans.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.Boolean != nil {
		if *s.Boolean {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	}
	type alias Schema
	return json.Marshal((*alias)(s))
}

// initializeSchema wires parent links, registers absolute identifiers on the
// root and precompiles regular expressions. It must run once after a schema
// tree is built; the tree is treated as immutable afterwards.
func (s *Schema) initializeSchema(compiler *Compiler, parent *Schema) {
	if compiler != nil {
		s.compiler = compiler
	}
	s.parent = parent

	parentBase := s.getParentBaseURI()
	if s.ID != "" && isAbsoluteURI(s.ID) {
		s.uri = s.ID
		s.baseURI = getBaseURI(s.ID)
	} else if s.ID != "" && parentBase != "" {
		s.uri = resolveRelativeURI(parentBase, s.ID)
		s.baseURI = getBaseURI(s.uri)
	} else if s.baseURI == "" {
		s.baseURI = parentBase
	}

	if s.uri != "" {
		root := s.getRootSchema()
		if root.schemas == nil {
			root.schemas = make(map[string]*Schema)
		}
		root.schemas[s.uri] = s
	}

	s.compileRegexps()

	for _, child := range s.childSchemas() {
		if child != nil {
			child.initializeSchema(compiler, s)
		}
	}
}

// compileRegexps caches the pattern and patternProperties expressions.
// Expressions that do not compile stay nil and are skipped during
// validation, never reported as instance errors.
func (s *Schema) compileRegexps() {
	if s.Pattern != nil && !s.compiledPatternKnown {
		s.compiledPattern, _ = regexp.Compile(*s.Pattern)
		s.compiledPatternKnown = true
	}
	if s.PatternProperties != nil && s.compiledPatterns == nil {
		s.compiledPatterns = make(map[string]*regexp.Regexp, s.PatternProperties.Len())
		for _, pattern := range s.PatternProperties.Keys() {
			re, err := regexp.Compile(pattern)
			if err != nil {
				s.compiledPatterns[pattern] = nil
				continue
			}
			s.compiledPatterns[pattern] = re
		}
	}
}

// childSchemas lists every directly nested sub-schema.
func (s *Schema) childSchemas() []*Schema {
	var children []*Schema
	appendMap := func(m *SchemaMap) {
		for _, key := range m.Keys() {
			child, _ := m.Get(key)
			children = append(children, child)
		}
	}

	if s.Definitions != nil {
		appendMap(s.Definitions)
	}
	if s.Defs != nil {
		appendMap(s.Defs)
	}
	children = append(children, s.AllOf...)
	children = append(children, s.AnyOf...)
	children = append(children, s.OneOf...)
	children = append(children, s.Not, s.If, s.Then, s.Else)
	if s.Items != nil {
		if s.Items.Tuple != nil {
			children = append(children, s.Items.Tuple...)
		} else {
			children = append(children, s.Items.Schema)
		}
	}
	children = append(children, s.AdditionalItems, s.Contains)
	if s.Properties != nil {
		appendMap(s.Properties)
	}
	if s.PatternProperties != nil {
		appendMap(s.PatternProperties)
	}
	children = append(children, s.AdditionalProperties, s.PropertyNames)
	for _, key := range sortedDependencyKeys(s.Dependencies) {
		if dep := s.Dependencies[key]; dep != nil && dep.Schema != nil {
			children = append(children, dep.Schema)
		}
	}
	return children
}

// getRootSchema walks the parent chain to the document root.
func (s *Schema) getRootSchema() *Schema {
	if s.parent != nil {
		return s.parent.getRootSchema()
	}
	return s
}

func (s *Schema) getParentBaseURI() string {
	for p := s.parent; p != nil; p = p.parent {
		if p.baseURI != "" {
			return p.baseURI
		}
	}
	return ""
}

// GetCompiler returns the compiler the schema was compiled with, walking up
// to the root if needed.
func (s *Schema) GetCompiler() *Compiler {
	if s.compiler != nil {
		return s.compiler
	}
	if s.parent != nil {
		return s.parent.GetCompiler()
	}
	return nil
}

// SourceType returns the struct type a generated schema was derived from, or
// nil for schemas that were parsed or built by hand.
func (s *Schema) SourceType() reflect.Type {
	return s.sourceType
}

// isEmpty reports whether the schema constrains nothing, i.e. it accepts all
// instances trivially.
func (s *Schema) isEmpty() bool {
	if s == nil {
		return true
	}
	if s.Boolean != nil {
		return *s.Boolean
	}
	return s.Ref == "" && s.Type == nil && s.Enum == nil && s.Const == nil &&
		s.MultipleOf == nil && s.Maximum == nil && s.ExclusiveMaximum == nil &&
		s.Minimum == nil && s.ExclusiveMinimum == nil &&
		s.MaxLength == nil && s.MinLength == nil && s.Pattern == nil && s.Format == nil &&
		s.Items == nil && s.AdditionalItems == nil && s.MaxItems == nil && s.MinItems == nil &&
		s.UniqueItems == nil && s.Contains == nil &&
		s.MaxProperties == nil && s.MinProperties == nil && s.Required == nil &&
		s.Properties == nil && s.PatternProperties == nil && s.AdditionalProperties == nil &&
		s.PropertyNames == nil && s.Dependencies == nil &&
		s.AllOf == nil && s.AnyOf == nil && s.OneOf == nil && s.Not == nil &&
		s.If == nil && s.Then == nil && s.Else == nil
}
