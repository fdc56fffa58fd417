package jsonschema

// evaluateExclusiveMaximum checks the strict upper bound, accepting the
// draft-04 boolean form and the draft-06+ numeric form.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.2.3
func evaluateExclusiveMaximum(schema *Schema, value *Rat) *EvaluationError {
	if schema.ExclusiveMaximum == nil {
		return nil
	}

	var bound *Rat
	switch {
	case schema.ExclusiveMaximum.Rat != nil:
		bound = schema.ExclusiveMaximum.Rat
	case schema.ExclusiveMaximum.Bool != nil && *schema.ExclusiveMaximum.Bool && schema.Maximum != nil:
		bound = schema.Maximum
	default:
		return nil
	}

	if value.Cmp(bound.Rat) >= 0 {
		return NewEvaluationError("exclusiveMaximum", "value_not_below_exclusive_maximum", "value {value} must be strictly less than {maximum}", map[string]any{
			"value":   FormatRat(value),
			"maximum": FormatRat(bound),
		})
	}
	return nil
}
