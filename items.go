package jsonschema

// evaluateArray applies every array keyword to an array instance: items in
// both forms, additionalItems, contains and the count constraints.
func evaluateArray(s *Schema, items []any, path string, result *EvaluationResult) {
	if err := evaluateMinItems(s, items); err != nil {
		result.AddError(path, err)
	}
	if err := evaluateMaxItems(s, items); err != nil {
		result.AddError(path, err)
	}
	if err := evaluateUniqueItems(s, items); err != nil {
		result.AddError(path, err)
	}
	if s.Contains != nil {
		if err := evaluateContains(s, items); err != nil {
			result.AddError(path, err)
		}
	}
	if s.Items != nil {
		evaluateItems(s, items, path, result)
	}
}

// evaluateItems validates array elements. A single schema applies to every
// element; the tuple form validates element i against the i-th schema and
// hands elements past the tuple to additionalItems (false forbids them, an
// object schema validates them).
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.4.1
func evaluateItems(s *Schema, items []any, path string, result *EvaluationResult) {
	if s.Items.Tuple == nil {
		for i, item := range items {
			s.Items.Schema.evaluate(item, joinIndex(path, i), result)
		}
		return
	}

	for i, item := range items {
		if i < len(s.Items.Tuple) {
			s.Items.Tuple[i].evaluate(item, joinIndex(path, i), result)
			continue
		}
		if s.AdditionalItems == nil {
			continue
		}
		if s.AdditionalItems.Boolean != nil && !*s.AdditionalItems.Boolean {
			result.AddError(joinIndex(path, i), NewEvaluationError("additionalItems", "additional_items_forbidden", "additional item at index {index} is not allowed", map[string]any{
				"index": i,
			}))
			continue
		}
		s.AdditionalItems.evaluate(item, joinIndex(path, i), result)
	}
}
