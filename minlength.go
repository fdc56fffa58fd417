package jsonschema

import "unicode/utf8"

// evaluateMinLength checks the minimum string length, counted in Unicode code
// points rather than bytes.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.3.2
func evaluateMinLength(schema *Schema, value string) *EvaluationError {
	if schema.MinLength == nil {
		return nil
	}
	if utf8.RuneCountInString(value) < int(*schema.MinLength) {
		return NewEvaluationError("minLength", "string_too_short", "value should be at least {minLength} characters", map[string]any{
			"minLength": int(*schema.MinLength),
		})
	}
	return nil
}
