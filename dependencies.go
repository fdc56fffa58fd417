package jsonschema

// evaluateDependencies applies the draft-07 "dependencies" keyword. Each
// entry fires only when its key is present in the object: the list arm
// co-requires further property names, the schema arm validates the whole
// object.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.7
func evaluateDependencies(s *Schema, object map[string]any, path string, result *EvaluationResult) {
	for _, key := range sortedDependencyKeys(s.Dependencies) {
		if _, present := object[key]; !present {
			continue
		}
		dep := s.Dependencies[key]
		if dep == nil {
			continue
		}
		if dep.Schema != nil {
			dep.Schema.evaluate(object, path, result)
			continue
		}
		for _, required := range dep.Required {
			if _, present := object[required]; !present {
				result.AddError(path, NewEvaluationError("dependencies", "dependency_missing", "property '{dependent}' is required when '{property}' is present", map[string]any{
					"dependent": required,
					"property":  key,
				}))
			}
		}
	}
}
