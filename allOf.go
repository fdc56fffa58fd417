package jsonschema

// evaluateAllOf requires the instance to match every sub-schema. Sub-errors
// accumulate into the report so the caller sees each failing branch.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#rfc.section.6.7.1
func evaluateAllOf(s *Schema, instance any, path string, result *EvaluationResult) {
	for _, sub := range s.AllOf {
		sub.evaluate(instance, path, result)
	}
}
