package jsonschema

// evaluateNot requires the instance to fail the sub-schema.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#rfc.section.6.7.4
func evaluateNot(s *Schema, instance any) *EvaluationError {
	if s.Not.matches(instance) {
		return NewEvaluationError("not", "not_matched", "value matches the schema it must not match")
	}
	return nil
}
