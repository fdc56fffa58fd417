package jsonschema

// evaluateConst checks if the instance equals the const sentinel, using the
// same structural equality as enum.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.1.3
func evaluateConst(schema *Schema, instance any) *EvaluationError {
	if jsonEqual(instance, schema.Const.Value) {
		return nil
	}
	return NewEvaluationError("const", "const_mismatch", "value {value} should be {expected}", map[string]any{
		"value":    formatValue(instance),
		"expected": formatValue(schema.Const.Value),
	})
}
