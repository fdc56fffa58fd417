package jsonschema

import "math/big"

// evaluateMultipleOf checks that the instance divides evenly by the operand.
// The division is exact rational arithmetic, so decimal operands such as 0.01
// behave the way the schema author wrote them instead of through float
// rounding.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.2.1
func evaluateMultipleOf(schema *Schema, value *Rat) *EvaluationError {
	if schema.MultipleOf == nil || schema.MultipleOf.Rat.Sign() <= 0 {
		return nil
	}

	quotient := new(big.Rat).Quo(value.Rat, schema.MultipleOf.Rat)
	if quotient.IsInt() {
		return nil
	}
	return NewEvaluationError("multipleOf", "value_not_multiple_of", "value {value} is not a multiple of {multipleOf}", map[string]any{
		"value":      FormatRat(value),
		"multipleOf": FormatRat(schema.MultipleOf),
	})
}
