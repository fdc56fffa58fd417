package jsonschema

// evaluateRequired checks that every listed member name is present. One error
// is reported per missing property so callers see the complete set.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.3
func evaluateRequired(schema *Schema, object map[string]any) []*EvaluationError {
	var errs []*EvaluationError
	for _, name := range schema.Required {
		if _, present := object[name]; !present {
			errs = append(errs, NewEvaluationError("required", "required_property_missing", "required property '{property}' is missing", map[string]any{
				"property": name,
			}))
		}
	}
	return errs
}
