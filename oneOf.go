package jsonschema

// evaluateOneOf requires the instance to match exactly one sub-schema. Zero
// matches and two-or-more matches are distinct failures: an instance that is
// a valid "integer" also matches a "number" branch, and that counts as
// matching multiple.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#rfc.section.6.7.3
func evaluateOneOf(s *Schema, instance any) *EvaluationError {
	matched := 0
	for _, sub := range s.OneOf {
		if sub.matches(instance) {
			matched++
		}
	}
	switch matched {
	case 1:
		return nil
	case 0:
		return NewEvaluationError("oneOf", "one_of_zero_matches", "value matches none of the schemas")
	default:
		return NewEvaluationError("oneOf", "one_of_multiple_matches", "value matches multiple schemas ({count}) when exactly one is required", map[string]any{
			"count": matched,
		})
	}
}
