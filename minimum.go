package jsonschema

// evaluateMinimum checks that a numeric instance meets or exceeds the
// inclusive lower bound. When a draft-04 boolean exclusiveMinimum accompanies
// the keyword, the bound is treated as strict by evaluateExclusiveMinimum
// instead.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.2.4
func evaluateMinimum(schema *Schema, value *Rat) *EvaluationError {
	if schema.Minimum == nil {
		return nil
	}
	if schema.ExclusiveMinimum != nil && schema.ExclusiveMinimum.Bool != nil && *schema.ExclusiveMinimum.Bool {
		// The draft-04 form turns this bound strict.
		return nil
	}
	if value.Cmp(schema.Minimum.Rat) < 0 {
		return NewEvaluationError("minimum", "value_below_minimum", "value {value} is less than the minimum of {minimum}", map[string]any{
			"value":   FormatRat(value),
			"minimum": FormatRat(schema.Minimum),
		})
	}
	return nil
}
