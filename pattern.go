package jsonschema

// evaluatePattern checks a string against the "pattern" regular expression.
// Patterns that do not compile under RE2 are skipped silently; an unsupported
// expression is a schema authoring concern, not an instance error.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.3.3
func evaluatePattern(schema *Schema, value string) *EvaluationError {
	if schema.Pattern == nil {
		return nil
	}
	schema.compileRegexps()
	if schema.compiledPattern == nil {
		return nil
	}
	if !schema.compiledPattern.MatchString(value) {
		return NewEvaluationError("pattern", "pattern_mismatch", "value does not match the pattern {pattern}", map[string]any{
			"pattern": *schema.Pattern,
		})
	}
	return nil
}
