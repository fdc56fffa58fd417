package jsonschema

// evaluateMinProperties checks the minimum number of object members.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.2
func evaluateMinProperties(schema *Schema, object map[string]any) *EvaluationError {
	if schema.MinProperties == nil {
		return nil
	}
	if len(object) < int(*schema.MinProperties) {
		return NewEvaluationError("minProperties", "object_too_small", "object has {count} properties which is less than the minimum of {minProperties}", map[string]any{
			"count":         len(object),
			"minProperties": int(*schema.MinProperties),
		})
	}
	return nil
}
