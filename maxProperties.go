package jsonschema

// evaluateMaxProperties checks the maximum number of object members.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.1
func evaluateMaxProperties(schema *Schema, object map[string]any) *EvaluationError {
	if schema.MaxProperties == nil {
		return nil
	}
	if len(object) > int(*schema.MaxProperties) {
		return NewEvaluationError("maxProperties", "object_too_large", "object has {count} properties which is more than the maximum of {maxProperties}", map[string]any{
			"count":         len(object),
			"maxProperties": int(*schema.MaxProperties),
		})
	}
	return nil
}
