package jsonschema

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// RefMode controls how nested record types are emitted during generation.
type RefMode string

const (
	// RefsInline expands every nested record in place.
	RefsInline RefMode = "inline"

	// RefsDefinitions deduplicates records under "definitions", the draft-07 location.
	RefsDefinitions RefMode = "definitions"

	// RefsDefs deduplicates records under "$defs", the post-2019 location.
	RefsDefs RefMode = "$defs"
)

// GenerateOptions configures FromStruct / FromType.
type GenerateOptions struct {
	Title       string // Overrides the default title (the unqualified type name).
	Description string // Added as the top-level description.
	ID          string // Added as $id.
	Draft       string // $schema URI; defaults to Draft07.

	// Refs selects inline expansion or definition deduplication of nested
	// record types.
	Refs RefMode

	// AllFieldsRequired adds every field to required regardless of
	// nullability or annotations.
	AllFieldsRequired bool

	// AdditionalProperties, when non-nil, is stamped recursively onto every
	// generated object sub-schema by the post-processor.
	AdditionalProperties *bool

	// StrictReflection reports types that cannot be mapped as errors instead
	// of falling back to the accept-all schema.
	StrictReflection bool

	// TagName is the struct tag holding annotations; defaults to "jsonschema".
	TagName string
}

// DefaultGenerateOptions returns the default generation configuration.
func DefaultGenerateOptions() *GenerateOptions {
	return &GenerateOptions{
		Draft:   Draft07,
		Refs:    RefsInline,
		TagName: "jsonschema",
	}
}

func normalizeGenerateOptions(opts *GenerateOptions) *GenerateOptions {
	if opts == nil {
		return DefaultGenerateOptions()
	}
	normalized := *opts
	if normalized.Draft == "" {
		normalized.Draft = Draft07
	}
	if normalized.Refs == "" {
		normalized.Refs = RefsInline
	}
	if normalized.TagName == "" {
		normalized.TagName = "jsonschema"
	}
	return &normalized
}

// FromStruct generates a draft-07 schema for the struct type T. The schema
// carries T as its source type, enabling ValidateStruct.
func FromStruct[T any](opts *GenerateOptions) (*Schema, error) {
	return FromType(reflect.TypeOf((*T)(nil)).Elem(), opts)
}

// FromType generates a draft-07 schema for the given struct type. Pointer
// types are dereferenced first. Two calls with the same type and options
// produce structurally identical schemas, including key order.
func FromType(t reflect.Type, opts *GenerateOptions) (*Schema, error) {
	opts = normalizeGenerateOptions(opts)

	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %v", ErrExpectedStructType, t)
	}

	ctx := &generationContext{
		opts:        opts,
		root:        t,
		typeNames:   make(map[reflect.Type]string),
		usedNames:   make(map[string]reflect.Type),
		definitions: &SchemaMap{},
		defsKey:     "definitions",
	}
	if opts.Refs == RefsDefs {
		ctx.defsKey = "$defs"
	}

	ctx.stack = append(ctx.stack, t)
	root, err := ctx.structSchema(t)
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	if err != nil {
		return nil, err
	}

	root.Schema = opts.Draft
	title := opts.Title
	if title == "" {
		title = t.Name()
	}
	root.Title = &title
	if opts.Description != "" {
		description := opts.Description
		root.Description = &description
	}
	if opts.ID != "" {
		root.ID = opts.ID
	}
	if ctx.definitions.Len() > 0 {
		if ctx.defsKey == "$defs" {
			root.Defs = ctx.definitions
		} else {
			root.Definitions = ctx.definitions
		}
	}
	if opts.AdditionalProperties != nil {
		SetAdditionalProperties(root, *opts.AdditionalProperties)
	}

	root.sourceType = t
	root.initializeSchema(nil, nil)
	return root, nil
}

// generationContext is the mutable state of one FromType call: the ref table
// (type -> definition key), the definitions block in insertion order, and the
// stack of record types currently being generated for cycle detection.
// Every key in typeNames is either stored in definitions already or sits on
// the stack as a placeholder for a recursive type.
type generationContext struct {
	opts        *GenerateOptions
	root        reflect.Type
	typeNames   map[reflect.Type]string
	usedNames   map[string]reflect.Type
	definitions *SchemaMap
	stack       []reflect.Type
	defsKey     string
}

func (ctx *generationContext) onStack(t reflect.Type) bool {
	for _, frame := range ctx.stack {
		if frame == t {
			return true
		}
	}
	return false
}

// fieldSchema maps one declared field type, converting reflection panics
// into the accept-all fallback so generation always produces a usable
// schema. StrictReflection surfaces them as errors instead.
func (ctx *generationContext) fieldSchema(t reflect.Type) (s *Schema, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ctx.opts.StrictReflection {
				s, err = nil, fmt.Errorf("%w: %v", ErrUnsupportedGenerationType, r)
				return
			}
			s, err = &Schema{}, nil
		}
	}()
	return ctx.schemaForType(t)
}

// schemaForType maps a Go type to its schema per the draft-07 type model.
func (ctx *generationContext) schemaForType(t reflect.Type) (*Schema, error) {
	switch t.Kind() {
	case reflect.Interface:
		// Any: the empty schema accepts everything.
		return &Schema{}, nil

	case reflect.Bool:
		return &Schema{Type: SchemaType{"boolean"}}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: SchemaType{"integer"}}, nil

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: SchemaType{"number"}}, nil

	case reflect.String:
		return &Schema{Type: SchemaType{"string"}}, nil

	case reflect.Pointer:
		inner, err := ctx.schemaForType(t.Elem())
		if err != nil {
			return nil, err
		}
		return nullableSchema(inner), nil

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			// []byte round-trips as a string through encoding.
			return &Schema{Type: SchemaType{"string"}}, nil
		}
		schema := &Schema{Type: SchemaType{"array"}}
		element, err := ctx.schemaForType(t.Elem())
		if err != nil {
			return nil, err
		}
		if !element.isEmpty() || element.Ref != "" {
			schema.Items = &ItemsValue{Schema: element}
		}
		return schema, nil

	case reflect.Array:
		// A fixed-length array is a tuple of n identical element schemas.
		n := t.Len()
		tuple := make([]*Schema, 0, n)
		for i := 0; i < n; i++ {
			element, err := ctx.schemaForType(t.Elem())
			if err != nil {
				return nil, err
			}
			tuple = append(tuple, element)
		}
		count := float64(n)
		minItems, maxItems := count, count
		return &Schema{
			Type:     SchemaType{"array"},
			Items:    &ItemsValue{Tuple: tuple},
			MinItems: &minItems,
			MaxItems: &maxItems,
		}, nil

	case reflect.Map:
		if t.Elem().Kind() == reflect.Struct && t.Elem().NumField() == 0 {
			// map[E]struct{} is the conventional set: unique elements.
			element, err := ctx.schemaForType(t.Key())
			if err != nil {
				return nil, err
			}
			unique := true
			schema := &Schema{Type: SchemaType{"array"}, UniqueItems: &unique}
			if !element.isEmpty() || element.Ref != "" {
				schema.Items = &ItemsValue{Schema: element}
			}
			return schema, nil
		}
		if t.Key().Kind() != reflect.String {
			if ctx.opts.StrictReflection {
				return nil, fmt.Errorf("%w: %v", ErrNonStringKeyMap, t)
			}
			return &Schema{}, nil
		}
		schema := &Schema{Type: SchemaType{"object"}}
		value, err := ctx.schemaForType(t.Elem())
		if err != nil {
			return nil, err
		}
		if !value.isEmpty() || value.Ref != "" {
			schema.AdditionalProperties = value
		}
		return schema, nil

	case reflect.Struct:
		if t == reflect.TypeOf(time.Time{}) {
			format := "date-time"
			return &Schema{Type: SchemaType{"string"}, Format: &format}, nil
		}
		return ctx.recordSchema(t)

	default:
		if ctx.opts.StrictReflection {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedGenerationType, t)
		}
		return &Schema{}, nil
	}
}

// recordSchema generates a nested record, consulting the ref table when
// deduplication is on: types already on the stack or in definitions come
// back as a $ref immediately, everything else is generated once, stored and
// referenced. The stack pop is unconditional so a failed generation leaves
// no ghost frame behind.
func (ctx *generationContext) recordSchema(t reflect.Type) (*Schema, error) {
	if ctx.opts.Refs == RefsInline {
		if ctx.onStack(t) {
			if ctx.opts.StrictReflection {
				return nil, fmt.Errorf("%w: %v", ErrRecursiveInline, t)
			}
			return &Schema{}, nil
		}
		ctx.stack = append(ctx.stack, t)
		defer func() { ctx.stack = ctx.stack[:len(ctx.stack)-1] }()
		return ctx.structSchema(t)
	}

	if t == ctx.root {
		// A back-reference to the root record points at the document itself.
		return &Schema{Ref: "#"}, nil
	}
	if name, known := ctx.typeNames[t]; known {
		return &Schema{Ref: "#/" + ctx.defsKey + "/" + name}, nil
	}

	name := ctx.defKey(t)
	ctx.typeNames[t] = name
	ctx.stack = append(ctx.stack, t)
	defer func() { ctx.stack = ctx.stack[:len(ctx.stack)-1] }()

	schema, err := ctx.structSchema(t)
	if err != nil {
		delete(ctx.typeNames, t)
		delete(ctx.usedNames, name)
		return nil, err
	}
	ctx.definitions.Set(name, schema)
	return &Schema{Ref: "#/" + ctx.defsKey + "/" + name}, nil
}

// defKey assigns the definition key for a record type: the unqualified type
// name, prefixed with the sanitized package path when two distinct types
// collide on it.
func (ctx *generationContext) defKey(t reflect.Type) string {
	name := sanitizeDefKey(t.Name())
	if name == "" {
		name = "anonymous"
	}
	if owner, taken := ctx.usedNames[name]; taken && owner != t {
		name = sanitizeDefKey(t.PkgPath()) + "." + name
	}
	ctx.usedNames[name] = t
	return name
}

func sanitizeDefKey(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// structSchema builds the object schema for a record type from its reflected
// field list: JSON name, field type schema, annotations, required-ness.
func (ctx *generationContext) structSchema(t reflect.Type) (*Schema, error) {
	schema := &Schema{Type: SchemaType{"object"}}
	properties := &SchemaMap{}
	var required []string

	for _, field := range flattenFields(t) {
		bag := annotationBagFromTag(field, ctx.opts.TagName)
		if isIgnored(bag) {
			continue
		}

		name := fieldJSONName(field, bag)
		if name == "" {
			continue
		}

		fieldSchema, err := ctx.fieldSchema(field.Type)
		if err != nil {
			return nil, err
		}
		fieldSchema, err = ctx.applyAnnotations(fieldSchema, bag)
		if err != nil {
			return nil, err
		}
		properties.Set(name, fieldSchema)

		if isRequired(ctx.opts, bag, field) {
			required = append(required, name)
		}
	}

	if properties.Len() > 0 {
		schema.Properties = properties
	}
	if len(required) > 0 {
		schema.Required = required
	}
	return schema, nil
}

// isRequired decides required-ness: the AllFieldsRequired option first, then
// an explicit required annotation, then nullability (pointer fields are
// optional, everything else required).
func isRequired(opts *GenerateOptions, bag map[string]any, field reflect.StructField) bool {
	if opts.AllFieldsRequired {
		return true
	}
	if explicit, ok := boolAnnotation(bag, "required"); ok {
		return explicit
	}
	return field.Type.Kind() != reflect.Pointer
}

// nullableSchema widens a schema to also accept null. A $ref cannot carry
// sibling keywords, so it is wrapped in oneOf with a null schema instead.
func nullableSchema(inner *Schema) *Schema {
	if inner.Ref != "" {
		return &Schema{OneOf: []*Schema{inner, {Type: SchemaType{"null"}}}}
	}
	if len(inner.Type) > 0 && !inner.Type.Contains("null") {
		inner.Type = append(inner.Type, "null")
	}
	return inner
}

// flattenFields lists the exported fields of a struct, hoisting the fields
// of anonymous embedded structs the way encoding/json does. Hoisted fields
// keep a full index path so FieldByIndex works against the outer value.
func flattenFields(t reflect.Type) []reflect.StructField {
	var fields []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			embedded := field.Type
			for embedded.Kind() == reflect.Pointer {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct && !hasNameTag(field) {
				for _, hoisted := range flattenFields(embedded) {
					hoisted.Index = append([]int{i}, hoisted.Index...)
					fields = append(fields, hoisted)
				}
				continue
			}
		}
		if field.PkgPath != "" {
			continue // unexported
		}
		fields = append(fields, field)
	}
	return fields
}

func hasNameTag(field reflect.StructField) bool {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	return name != "" && name != "-"
}

// fieldJSONName resolves the property name: an explicit rename annotation
// wins, then the json tag, then the Go field name. An empty result (json
// tag "-") drops the field.
func fieldJSONName(field reflect.StructField, bag map[string]any) string {
	if renamed, ok := bag["name"].(string); ok && renamed != "" {
		return renamed
	}
	jsonName, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if jsonName == "-" {
		return ""
	}
	if jsonName != "" {
		return jsonName
	}
	return field.Name
}
