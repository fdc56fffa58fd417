package jsonschema

import "sort"

// evaluateAdditionalProperties governs members not named by "properties" and
// not matched by any "patternProperties" expression: false forbids them, an
// object schema validates each one.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.6
func evaluateAdditionalProperties(s *Schema, object map[string]any, path string, result *EvaluationResult) {
	names := make([]string, 0, len(object))
	for name := range object {
		if isAdditionalProperty(s, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	forbidden := s.AdditionalProperties.Boolean != nil && !*s.AdditionalProperties.Boolean
	for _, name := range names {
		if forbidden {
			result.AddError(path, NewEvaluationError("additionalProperties", "additional_property_forbidden", "additional property '{property}' not allowed", map[string]any{
				"property": name,
			}))
			continue
		}
		s.AdditionalProperties.evaluate(object[name], joinPath(path, name), result)
	}
}

// isAdditionalProperty reports whether a member name is outside "properties"
// and unmatched by every "patternProperties" expression.
func isAdditionalProperty(s *Schema, name string) bool {
	if s.Properties != nil {
		if _, named := s.Properties.Get(name); named {
			return false
		}
	}
	if s.PatternProperties != nil {
		s.compileRegexps()
		for _, pattern := range s.PatternProperties.Keys() {
			re := s.compiledPatterns[pattern]
			if re != nil && re.MatchString(name) {
				return false
			}
		}
	}
	return true
}
