package jsonschema

// evaluateContains checks that at least one array element matches the
// contains sub-schema.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.4.6
func evaluateContains(schema *Schema, items []any) *EvaluationError {
	for _, item := range items {
		if schema.Contains.matches(item) {
			return nil
		}
	}
	return NewEvaluationError("contains", "contains_mismatch", "no items match the contains schema")
}
