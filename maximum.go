package jsonschema

// evaluateMaximum checks that a numeric instance does not exceed the
// inclusive upper bound.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.2.2
func evaluateMaximum(schema *Schema, value *Rat) *EvaluationError {
	if schema.Maximum == nil {
		return nil
	}
	if schema.ExclusiveMaximum != nil && schema.ExclusiveMaximum.Bool != nil && *schema.ExclusiveMaximum.Bool {
		return nil
	}
	if value.Cmp(schema.Maximum.Rat) > 0 {
		return NewEvaluationError("maximum", "value_above_maximum", "value {value} is greater than the maximum of {maximum}", map[string]any{
			"value":   FormatRat(value),
			"maximum": FormatRat(schema.Maximum),
		})
	}
	return nil
}
