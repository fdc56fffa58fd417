package jsonschema

// evaluateConditional applies if/then/else. The instance is first checked
// against "if" silently; its outcome selects "then" or "else", whose errors
// are reported normally. A lone "then" or "else" without "if" never applies,
// which is why the dispatcher keys on "if" alone.
//
// Reference: https://json-schema.org/draft-07/json-schema-core#rfc.section.6.6
func evaluateConditional(s *Schema, instance any, path string, result *EvaluationResult) {
	if s.If.matches(instance) {
		if s.Then != nil {
			s.Then.evaluate(instance, path, result)
		}
		return
	}
	if s.Else != nil {
		s.Else.evaluate(instance, path, result)
	}
}
