package jsonschema

// evaluateObject applies every object keyword to an object instance.
func evaluateObject(s *Schema, object map[string]any, path string, result *EvaluationResult) {
	if err := evaluateMinProperties(s, object); err != nil {
		result.AddError(path, err)
	}
	if err := evaluateMaxProperties(s, object); err != nil {
		result.AddError(path, err)
	}
	for _, err := range evaluateRequired(s, object) {
		result.AddError(path, err)
	}
	if s.Properties != nil {
		evaluateProperties(s, object, path, result)
	}
	if s.PatternProperties != nil {
		evaluatePatternProperties(s, object, path, result)
	}
	if s.AdditionalProperties != nil {
		evaluateAdditionalProperties(s, object, path, result)
	}
	if s.PropertyNames != nil {
		evaluatePropertyNames(s, object, path, result)
	}
	if s.Dependencies != nil {
		evaluateDependencies(s, object, path, result)
	}
}

// evaluateProperties validates each member that has a schema under
// "properties". Presence is key existence; a member holding an explicit null
// is present and validates against its sub-schema.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.4
func evaluateProperties(s *Schema, object map[string]any, path string, result *EvaluationResult) {
	for _, name := range s.Properties.Keys() {
		value, present := object[name]
		if !present {
			continue
		}
		child, _ := s.Properties.Get(name)
		child.evaluate(value, joinPath(path, name), result)
	}
}
