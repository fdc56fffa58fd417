package jsonschema

// Property represents a named property definition for Object.
type Property struct {
	Name   string
	Schema *Schema
}

// Prop creates a property definition.
func Prop(name string, schema *Schema) Property {
	return Property{Name: name, Schema: schema}
}

// Object creates an object schema from property definitions and keywords.
func Object(items ...any) *Schema {
	schema := &Schema{Type: SchemaType{"object"}}

	var properties []Property
	for _, item := range items {
		switch v := item.(type) {
		case Property:
			properties = append(properties, v)
		case Keyword:
			v(schema)
		}
	}

	if len(properties) > 0 {
		props := NewSchemaMap(properties...)
		schema.Properties = props
	}

	schema.initializeSchema(nil, nil)
	return schema
}

// String creates a string schema with validation keywords.
func String(keywords ...Keyword) *Schema {
	return newTyped("string", keywords...)
}

// Integer creates an integer schema with validation keywords.
func Integer(keywords ...Keyword) *Schema {
	return newTyped("integer", keywords...)
}

// Number creates a number schema with validation keywords.
func Number(keywords ...Keyword) *Schema {
	return newTyped("number", keywords...)
}

// Boolean creates a boolean schema.
func Boolean(keywords ...Keyword) *Schema {
	return newTyped("boolean", keywords...)
}

// Null creates a null schema.
func Null(keywords ...Keyword) *Schema {
	return newTyped("null", keywords...)
}

// Array creates an array schema with validation keywords.
func Array(keywords ...Keyword) *Schema {
	return newTyped("array", keywords...)
}

// Any creates the empty schema, which accepts every instance.
func Any() *Schema {
	schema := &Schema{}
	schema.initializeSchema(nil, nil)
	return schema
}

// Ref creates a reference schema. The pointer resolves against the document
// root the schema ends up embedded in.
func Ref(pointer string) *Schema {
	schema := &Schema{Ref: pointer}
	schema.initializeSchema(nil, nil)
	return schema
}

// OneOf creates a schema requiring exactly one of the sub-schemas to match.
func OneOf(schemas ...*Schema) *Schema {
	schema := &Schema{OneOf: schemas}
	schema.initializeSchema(nil, nil)
	return schema
}

// AnyOf creates a schema requiring at least one of the sub-schemas to match.
func AnyOf(schemas ...*Schema) *Schema {
	schema := &Schema{AnyOf: schemas}
	schema.initializeSchema(nil, nil)
	return schema
}

// AllOf creates a schema requiring every sub-schema to match.
func AllOf(schemas ...*Schema) *Schema {
	schema := &Schema{AllOf: schemas}
	schema.initializeSchema(nil, nil)
	return schema
}

// Not creates a schema requiring the sub-schema not to match.
func Not(sub *Schema) *Schema {
	schema := &Schema{Not: sub}
	schema.initializeSchema(nil, nil)
	return schema
}

func newTyped(typeName string, keywords ...Keyword) *Schema {
	schema := &Schema{Type: SchemaType{typeName}}
	for _, keyword := range keywords {
		keyword(schema)
	}
	schema.initializeSchema(nil, nil)
	return schema
}
