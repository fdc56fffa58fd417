package jsonschema

import "strings"

// evaluateType checks if the instance's type matches the type specified in the schema.
// According to JSON Schema Draft 7:
//   - The value of the "type" keyword must be either a string or an array of unique strings.
//   - Valid values are the six primitive types ("null", "boolean", "object", "array",
//     "number", "string") and "integer", which matches any number with a zero
//     fractional part. A boolean is never an integer or a number.
//   - If "type" is an array, the instance matches if its type corresponds to any
//     string in that array.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.1.1
func evaluateType(schema *Schema, instance any) *EvaluationError {
	if len(schema.Type) == 0 {
		return nil
	}

	instanceType := getDataType(instance)

	for _, schemaType := range schema.Type {
		if schemaType == "number" && instanceType == "integer" {
			// Integers are valid numbers per the specification.
			return nil
		}
		if instanceType == schemaType {
			return nil
		}
	}

	return NewEvaluationError("type", "type_mismatch", "value is {received} but should be {expected}", map[string]any{
		"expected": strings.Join(schema.Type, ", "),
		"received": instanceType,
	})
}
