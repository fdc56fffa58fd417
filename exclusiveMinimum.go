package jsonschema

// evaluateExclusiveMinimum checks the strict lower bound. Both operand forms
// are accepted: the draft-04 boolean makes the paired "minimum" strict, the
// draft-06+ number is a strict bound of its own.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.2.5
func evaluateExclusiveMinimum(schema *Schema, value *Rat) *EvaluationError {
	if schema.ExclusiveMinimum == nil {
		return nil
	}

	var bound *Rat
	switch {
	case schema.ExclusiveMinimum.Rat != nil:
		bound = schema.ExclusiveMinimum.Rat
	case schema.ExclusiveMinimum.Bool != nil && *schema.ExclusiveMinimum.Bool && schema.Minimum != nil:
		bound = schema.Minimum
	default:
		return nil
	}

	if value.Cmp(bound.Rat) <= 0 {
		return NewEvaluationError("exclusiveMinimum", "value_not_above_exclusive_minimum", "value {value} must be strictly greater than {minimum}", map[string]any{
			"value":   FormatRat(value),
			"minimum": FormatRat(bound),
		})
	}
	return nil
}
