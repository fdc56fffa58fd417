package jsonschema

import "sort"

// evaluatePropertyNames validates each member name, as a string instance,
// against the propertyNames sub-schema.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.8
func evaluatePropertyNames(s *Schema, object map[string]any, path string, result *EvaluationResult) {
	names := make([]string, 0, len(object))
	for name := range object {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !s.PropertyNames.matches(name) {
			result.AddError(path, NewEvaluationError("propertyNames", "property_name_invalid", "property name '{property}' does not match the property names schema", map[string]any{
				"property": name,
			}))
		}
	}
}
