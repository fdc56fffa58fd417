package jsonschema

import "sort"

// evaluatePatternProperties validates every member whose name matches a
// patternProperties expression against the paired sub-schema. Expressions
// that do not compile are skipped.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.5
func evaluatePatternProperties(s *Schema, object map[string]any, path string, result *EvaluationResult) {
	s.compileRegexps()

	names := make([]string, 0, len(object))
	for name := range object {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, pattern := range s.PatternProperties.Keys() {
		re := s.compiledPatterns[pattern]
		if re == nil {
			continue
		}
		child, _ := s.PatternProperties.Get(pattern)
		for _, name := range names {
			if re.MatchString(name) {
				child.evaluate(object[name], joinPath(path, name), result)
			}
		}
	}
}
