package jsonschema

// evaluateMinItems checks the minimum number of array elements.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.4.4
func evaluateMinItems(schema *Schema, items []any) *EvaluationError {
	if schema.MinItems == nil {
		return nil
	}
	if len(items) < int(*schema.MinItems) {
		return NewEvaluationError("minItems", "array_too_short", "array has {count} items which is less than the minimum of {minItems}", map[string]any{
			"count":    len(items),
			"minItems": int(*schema.MinItems),
		})
	}
	return nil
}
