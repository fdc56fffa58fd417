package jsonschema

// evaluateMaxItems checks the maximum number of array elements.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.4.3
func evaluateMaxItems(schema *Schema, items []any) *EvaluationError {
	if schema.MaxItems == nil {
		return nil
	}
	if len(items) > int(*schema.MaxItems) {
		return NewEvaluationError("maxItems", "array_too_long", "array has {count} items which is more than the maximum of {maxItems}", map[string]any{
			"count":    len(items),
			"maxItems": int(*schema.MaxItems),
		})
	}
	return nil
}
