package jsonschema

// evaluateUniqueItems checks that all array elements are unique under
// structural JSON equality. Numerically equal values of different lexical
// forms coalesce (1 duplicates 1.0), while true stays distinct from 1. This
// is the reading most implementations agree on.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.4.5
func evaluateUniqueItems(schema *Schema, items []any) *EvaluationError {
	if schema.UniqueItems == nil || !*schema.UniqueItems {
		return nil
	}

	seen := make(map[string]int, len(items))
	for index, item := range items {
		key := canonicalize(item)
		if first, dup := seen[key]; dup {
			return NewEvaluationError("uniqueItems", "unique_items_mismatch", "items must be unique: item at index {index} duplicates index {first}", map[string]any{
				"index": index,
				"first": first,
			})
		}
		seen[key] = index
	}
	return nil
}
