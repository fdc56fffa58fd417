package jsonschema

import (
	"fmt"
	"strconv"
	"strings"
)

// resolveRef resolves a $ref value. "#" is the document root and "#/a/b/c" is
// a JSON Pointer walked against the root schema; segments are matched raw,
// with no ~0/~1 unescaping, so pointers are expected pre-decoded. URI
// references resolve only through schemas already registered on the root
// ($id) or in the compiler cache; the validator performs no fetching of its
// own.
func (s *Schema) resolveRef(ref string) (*Schema, error) {
	root := s.getRootSchema()

	if ref == "#" {
		return root, nil
	}
	if pointer, ok := strings.CutPrefix(ref, "#/"); ok {
		return root.resolvePointer(pointer)
	}
	if strings.HasPrefix(ref, "#") {
		// Plain-name fragments are an anchor mechanism of later drafts.
		return nil, fmt.Errorf("%w: %s", ErrRefNotFound, ref)
	}

	uri := ref
	if !isAbsoluteURI(uri) {
		base := s.baseURI
		if base == "" {
			base = s.getParentBaseURI()
		}
		if base == "" {
			return nil, fmt.Errorf("%w: %s", ErrExternalRefUnsupported, ref)
		}
		uri = resolveRelativeURI(base, uri)
	}

	base, fragment := splitRef(uri)
	if target, ok := root.schemas[base]; ok {
		return target.descendFragment(fragment)
	}
	if compiler := s.GetCompiler(); compiler != nil {
		if target, err := compiler.GetSchema(base); err == nil {
			return target.descendFragment(fragment)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrExternalRefUnsupported, ref)
}

// descendFragment applies the fragment part of a URI reference to a resolved
// document.
func (s *Schema) descendFragment(fragment string) (*Schema, error) {
	if fragment == "" || fragment == "/" {
		return s, nil
	}
	return s.resolvePointer(strings.TrimPrefix(fragment, "/"))
}

// resolvePointer walks raw pointer segments through the typed schema graph.
// Container keywords (properties, definitions, allOf, the tuple form of
// items, ...) are entered by the segment that follows them.
func (s *Schema) resolvePointer(pointer string) (*Schema, error) {
	segments := strings.Split(pointer, "/")
	current := s
	previous := ""

	for i, segment := range segments {
		next, found := findSchemaInSegment(current, segment, previous)
		if found {
			current = next
			previous = segment
			continue
		}
		if i == len(segments)-1 {
			return nil, fmt.Errorf("%w: #/%s", ErrRefNotFound, pointer)
		}
		previous = segment
	}
	return current, nil
}

// findSchemaInSegment locates the schema one segment selects, given the
// container keyword that preceded it.
func findSchemaInSegment(current *Schema, segment string, previous string) (*Schema, bool) {
	switch previous {
	case "properties":
		if current.Properties != nil {
			if schema, exists := current.Properties.Get(segment); exists {
				return schema, true
			}
		}
	case "patternProperties":
		if current.PatternProperties != nil {
			if schema, exists := current.PatternProperties.Get(segment); exists {
				return schema, true
			}
		}
	case "definitions":
		if current.Definitions != nil {
			if schema, exists := current.Definitions.Get(segment); exists {
				return schema, true
			}
		}
	case "$defs":
		if current.Defs != nil {
			if schema, exists := current.Defs.Get(segment); exists {
				return schema, true
			}
		}
	case "dependencies":
		if dep, exists := current.Dependencies[segment]; exists && dep != nil && dep.Schema != nil {
			return dep.Schema, true
		}
	case "items":
		if index, err := strconv.Atoi(segment); err == nil &&
			current.Items != nil && current.Items.Tuple != nil && index >= 0 && index < len(current.Items.Tuple) {
			return current.Items.Tuple[index], true
		}
	case "allOf":
		if schema, ok := indexSchemas(current.AllOf, segment); ok {
			return schema, true
		}
	case "anyOf":
		if schema, ok := indexSchemas(current.AnyOf, segment); ok {
			return schema, true
		}
	case "oneOf":
		if schema, ok := indexSchemas(current.OneOf, segment); ok {
			return schema, true
		}
	}

	switch segment {
	case "items":
		if current.Items != nil && current.Items.Tuple == nil {
			return current.Items.Schema, true
		}
	case "additionalItems":
		if current.AdditionalItems != nil {
			return current.AdditionalItems, true
		}
	case "additionalProperties":
		if current.AdditionalProperties != nil {
			return current.AdditionalProperties, true
		}
	case "propertyNames":
		if current.PropertyNames != nil {
			return current.PropertyNames, true
		}
	case "contains":
		if current.Contains != nil {
			return current.Contains, true
		}
	case "not":
		if current.Not != nil {
			return current.Not, true
		}
	case "if":
		if current.If != nil {
			return current.If, true
		}
	case "then":
		if current.Then != nil {
			return current.Then, true
		}
	case "else":
		if current.Else != nil {
			return current.Else, true
		}
	}
	return nil, false
}

func indexSchemas(schemas []*Schema, segment string) (*Schema, bool) {
	index, err := strconv.Atoi(segment)
	if err != nil || index < 0 || index >= len(schemas) {
		return nil, false
	}
	return schemas[index], true
}
