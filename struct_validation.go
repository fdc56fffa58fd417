package jsonschema

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// ValidateStruct validates an in-memory struct instance against the schema.
// The instance is converted to its JSON value form first: field names follow
// the same json / jsonschema tags the generator reads, and a nil pointer
// field is absent rather than null, so it fails "required" the way an
// omitted JSON member does.
//
// For a schema generated with FromStruct the instance must be of the source
// type (or a pointer to it); anything else is a programming error and is
// returned as such, not reported as a validation failure.
func (s *Schema) ValidateStruct(instance any) (*EvaluationResult, error) {
	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: nil pointer", ErrUnsupportedInputType)
		}
		v = v.Elem()
	}
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedInputType, instance)
	}
	if s.sourceType != nil && v.Type() != s.sourceType {
		return nil, fmt.Errorf("%w: have %v, want %v", ErrSourceTypeMismatch, v.Type(), s.sourceType)
	}
	return s.Validate(structValue(v)), nil
}

// structValue converts a struct to map[string]any, skipping ignored fields
// and omitting nil pointers.
func structValue(v reflect.Value) map[string]any {
	object := make(map[string]any)
	for _, field := range flattenFields(v.Type()) {
		bag := annotationBagFromTag(field, "jsonschema")
		if isIgnored(bag) {
			continue
		}
		name := fieldJSONName(field, bag)
		if name == "" {
			continue
		}
		fieldValue := fieldByIndex(v, field.Index)
		if !fieldValue.IsValid() {
			continue // reached through a nil embedded pointer
		}
		if fieldValue.Kind() == reflect.Pointer && fieldValue.IsNil() {
			continue
		}
		object[name] = reflectValue(fieldValue)
	}
	return object
}

// fieldByIndex is FieldByIndex with nil embedded pointers yielding an
// invalid value instead of a panic.
func fieldByIndex(v reflect.Value, index []int) reflect.Value {
	for _, i := range index {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		}
		v = v.Field(i)
	}
	return v
}

// reflectValue converts any reflected Go value into the JSON value model the
// validator consumes.
func reflectValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return reflectValue(v.Elem())

	case reflect.Struct:
		if t, ok := v.Interface().(time.Time); ok {
			return t.Format(time.RFC3339)
		}
		return structValue(v)

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes())
		}
		items := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			items[i] = reflectValue(v.Index(i))
		}
		return items

	case reflect.Map:
		if v.Type().Elem().Kind() == reflect.Struct && v.Type().Elem().NumField() == 0 {
			// The set form generates as an array, so instances convert the
			// same way, in a stable order.
			items := make([]any, 0, v.Len())
			for _, key := range v.MapKeys() {
				items = append(items, reflectValue(key))
			}
			sort.Slice(items, func(i, j int) bool {
				return canonicalize(items[i]) < canonicalize(items[j])
			})
			return items
		}
		object := make(map[string]any, v.Len())
		for _, key := range v.MapKeys() {
			object[fmt.Sprint(key.Interface())] = reflectValue(v.MapIndex(key))
		}
		return object

	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	default:
		return nil
	}
}
