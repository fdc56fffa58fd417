package jsonschema

// evaluateFormat checks a string against the named format predicate from the
// Formats registry. An unknown format is silently accepted, per draft-07.
// When the schema belongs to a compiler with AssertFormat disabled the
// keyword degrades to an annotation, which is what the official test suite
// expects; stand-alone schemas assert.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.7
func evaluateFormat(schema *Schema, value string) *EvaluationError {
	if schema.Format == nil {
		return nil
	}
	if compiler := schema.GetCompiler(); compiler != nil && !compiler.AssertFormat {
		return nil
	}
	check, known := Formats[*schema.Format]
	if !known || check(value) {
		return nil
	}
	return NewEvaluationError("format", "format_mismatch", "value does not match format '{format}'", map[string]any{
		"format": *schema.Format,
	})
}
