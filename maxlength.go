package jsonschema

import "unicode/utf8"

// evaluateMaxLength checks the maximum string length in Unicode code points.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.3.1
func evaluateMaxLength(schema *Schema, value string) *EvaluationError {
	if schema.MaxLength == nil {
		return nil
	}
	if utf8.RuneCountInString(value) > int(*schema.MaxLength) {
		return NewEvaluationError("maxLength", "string_too_long", "value should be at most {maxLength} characters", map[string]any{
			"maxLength": int(*schema.MaxLength),
		})
	}
	return nil
}
