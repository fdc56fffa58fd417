package jsonschema

import (
	"reflect"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/schemakit/jsonschema/pkg/tagparser"
)

// annotationKeys is the fixed application order, which keeps generated
// schemas deterministic no matter how the bag was built.
var annotationKeys = []string{
	"title", "description", "examples", "default",
	"minLength", "maxLength", "pattern", "format",
	"minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum", "multipleOf",
	"minItems", "maxItems", "uniqueItems", "items", "contains",
	"minProperties", "maxProperties",
	"enum", "const", "_const",
	"allOf", "anyOf", "oneOf", "not",
}

// controlKeys are consumed by the field loop, never copied onto the schema.
var controlKeys = map[string]struct{}{
	"required": {},
	"ignore":   {},
	"name":     {},
}

// annotationBagFromTag parses a field's annotation tag into a flat bag.
// Parameters stay strings here; applyAnnotations coerces them per key.
func annotationBagFromTag(field reflect.StructField, tagName string) map[string]any {
	info := tagparser.Parse(field.Tag.Get(tagName))
	bag := make(map[string]any, len(info.Rules)+1)
	if info.Ignored {
		bag["ignore"] = true
	}
	for _, rule := range info.Rules {
		if rule.Param == "" {
			// Bare flags (required, uniqueItems) read as true.
			bag[rule.Name] = true
			continue
		}
		bag[rule.Name] = rule.Param
	}
	return bag
}

func isIgnored(bag map[string]any) bool {
	ignored, ok := boolAnnotation(bag, "ignore")
	return ok && ignored
}

// ApplyAnnotations copies the known annotation keys of a flat bag onto a
// field schema: string/number/array/object constraints, metadata, const and
// enum, and the composition keys, whose members may be raw schema objects,
// *Schema values or record types (reflect.Type) to expand. Unrecognized keys
// are ignored.
func ApplyAnnotations(schema *Schema, bag map[string]any) (*Schema, error) {
	ctx := &generationContext{
		opts:        DefaultGenerateOptions(),
		typeNames:   make(map[reflect.Type]string),
		usedNames:   make(map[string]reflect.Type),
		definitions: &SchemaMap{},
		defsKey:     "definitions",
	}
	return ctx.applyAnnotations(schema, bag)
}

func (ctx *generationContext) applyAnnotations(schema *Schema, bag map[string]any) (*Schema, error) {
	if len(bag) == 0 {
		return schema, nil
	}

	// A $ref carries no sibling keywords, so constraints wrap it in allOf.
	if schema.Ref != "" && hasApplicableKeys(bag) {
		schema = &Schema{AllOf: []*Schema{schema}}
	}

	for _, key := range annotationKeys {
		value, present := bag[key]
		if !present {
			continue
		}
		if err := ctx.applyAnnotation(schema, key, value); err != nil {
			return nil, err
		}
	}
	return schema, nil
}

func hasApplicableKeys(bag map[string]any) bool {
	for key := range bag {
		if _, control := controlKeys[key]; !control {
			return true
		}
	}
	return false
}

func (ctx *generationContext) applyAnnotation(schema *Schema, key string, value any) error {
	switch key {
	case "title":
		if s, ok := stringAnnotation(value); ok {
			schema.Title = &s
		}
	case "description":
		if s, ok := stringAnnotation(value); ok {
			schema.Description = &s
		}
	case "examples":
		schema.Examples = listAnnotation(value)
	case "default":
		schema.Default = scalarAnnotation(value)

	case "minLength":
		if f, ok := floatAnnotation(value); ok {
			schema.MinLength = &f
		}
	case "maxLength":
		if f, ok := floatAnnotation(value); ok {
			schema.MaxLength = &f
		}
	case "pattern":
		if s, ok := stringAnnotation(value); ok {
			schema.Pattern = &s
		}
	case "format":
		if s, ok := stringAnnotation(value); ok {
			schema.Format = &s
		}

	case "minimum":
		if r := NewRat(value); r != nil {
			schema.Minimum = r
		}
	case "maximum":
		if r := NewRat(value); r != nil {
			schema.Maximum = r
		}
	case "exclusiveMinimum":
		schema.ExclusiveMinimum = exclusiveAnnotation(value)
	case "exclusiveMaximum":
		schema.ExclusiveMaximum = exclusiveAnnotation(value)
	case "multipleOf":
		if r := NewRat(value); r != nil {
			schema.MultipleOf = r
		}

	case "minItems":
		if f, ok := floatAnnotation(value); ok {
			schema.MinItems = &f
		}
	case "maxItems":
		if f, ok := floatAnnotation(value); ok {
			schema.MaxItems = &f
		}
	case "uniqueItems":
		if b, ok := boolValue(value); ok {
			schema.UniqueItems = &b
		}
	case "items":
		return ctx.applyItemsAnnotation(schema, value)
	case "contains":
		sub, err := ctx.schemaAnnotation(value)
		if err != nil {
			return err
		}
		if sub != nil {
			schema.Contains = sub
		}

	case "minProperties":
		if f, ok := floatAnnotation(value); ok {
			schema.MinProperties = &f
		}
	case "maxProperties":
		if f, ok := floatAnnotation(value); ok {
			schema.MaxProperties = &f
		}

	case "enum":
		schema.Enum = listAnnotation(value)
	case "const", "_const":
		schema.Const = NewConst(scalarAnnotation(value))

	case "allOf", "anyOf", "oneOf":
		subs, err := ctx.schemaListAnnotation(value)
		if err != nil {
			return err
		}
		switch key {
		case "allOf":
			schema.AllOf = subs
		case "anyOf":
			schema.AnyOf = subs
		case "oneOf":
			schema.OneOf = subs
		}
	case "not":
		sub, err := ctx.schemaAnnotation(value)
		if err != nil {
			return err
		}
		if sub != nil {
			schema.Not = sub
		}
	}
	return nil
}

func (ctx *generationContext) applyItemsAnnotation(schema *Schema, value any) error {
	switch v := value.(type) {
	case []any:
		tuple := make([]*Schema, 0, len(v))
		for _, member := range v {
			sub, err := ctx.schemaAnnotation(member)
			if err != nil {
				return err
			}
			if sub == nil {
				sub = &Schema{}
			}
			tuple = append(tuple, sub)
		}
		schema.Items = &ItemsValue{Tuple: tuple}
		return nil
	default:
		sub, err := ctx.schemaAnnotation(value)
		if err != nil {
			return err
		}
		if sub != nil {
			schema.Items = &ItemsValue{Schema: sub}
		}
		return nil
	}
}

// schemaAnnotation converts one composition member into a schema: a *Schema
// passes through, a reflect.Type is expanded through the generator (records
// honor the ref table), and a raw map is parsed as a schema object.
func (ctx *generationContext) schemaAnnotation(value any) (*Schema, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *Schema:
		return v, nil
	case reflect.Type:
		return ctx.schemaForType(v)
	case map[string]any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		sub := &Schema{}
		if err := json.Unmarshal(encoded, sub); err != nil {
			return nil, err
		}
		return sub, nil
	default:
		return nil, nil
	}
}

func (ctx *generationContext) schemaListAnnotation(value any) ([]*Schema, error) {
	members, ok := value.([]any)
	if !ok {
		return nil, nil
	}
	subs := make([]*Schema, 0, len(members))
	for _, member := range members {
		sub, err := ctx.schemaAnnotation(member)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

// === bag value coercion ===

func stringAnnotation(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case nil:
		return "", false
	default:
		return "", false
	}
}

func floatAnnotation(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func boolAnnotation(bag map[string]any, key string) (bool, bool) {
	value, present := bag[key]
	if !present {
		return false, false
	}
	return boolValue(value)
}

func boolValue(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		switch v {
		case "", "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// exclusiveAnnotation accepts the numeric draft-06+ operand and the boolean
// draft-04 modifier.
func exclusiveAnnotation(value any) *Exclusive {
	switch v := value.(type) {
	case bool:
		return &Exclusive{Bool: &v}
	case string:
		if v == "true" || v == "false" {
			b := v == "true"
			return &Exclusive{Bool: &b}
		}
	}
	if r := NewRat(value); r != nil {
		return &Exclusive{Rat: r}
	}
	return nil
}

// listAnnotation turns a bag value into a JSON value list. Tag parameters
// split on '|' and each element infers its scalar type.
func listAnnotation(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case string:
		parts := tagparser.Values(v)
		list := make([]any, 0, len(parts))
		for _, part := range parts {
			list = append(list, scalarAnnotation(part))
		}
		return list
	default:
		return nil
	}
}

// scalarAnnotation infers booleans and numbers from tag parameter strings;
// typed bag values pass through unchanged.
func scalarAnnotation(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
