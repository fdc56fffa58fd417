package jsonschema

// Validate checks the given instance against the schema and returns the full
// error report. The instance is a decoded JSON value tree: nil, bool,
// numbers, string, []any and map[string]any. Neither the schema nor the
// instance is mutated, so a schema may validate from many goroutines at once.
func (s *Schema) Validate(instance any) *EvaluationResult {
	result := NewEvaluationResult()
	s.evaluate(instance, "", result)
	return result
}

// evaluate walks one schema node. Keyword groups apply only when the instance
// has the matching shape; everything that fails is collected on result, never
// raised.
func (s *Schema) evaluate(instance any, path string, result *EvaluationResult) {
	if s == nil {
		return
	}

	if s.Boolean != nil {
		if !*s.Boolean {
			result.AddError(path, NewEvaluationError("schema", "false_schema", "value does not match the always-failing schema"))
		}
		return
	}

	// $ref short-circuits: it resolves against the document root and any
	// sibling keywords are ignored. Termination holds for any instance of
	// finite depth because each structural keyword consumes one level.
	if s.Ref != "" {
		resolved, err := s.resolveRef(s.Ref)
		if err != nil {
			result.AddError(path, NewEvaluationError("$ref", "ref_unresolved", "unable to resolve reference '{ref}': {reason}", map[string]any{
				"ref":    s.Ref,
				"reason": err.Error(),
			}))
			return
		}
		resolved.evaluate(instance, path, result)
		return
	}

	if s.Type != nil {
		if err := evaluateType(s, instance); err != nil {
			result.AddError(path, err)
		}
	}
	if s.Enum != nil {
		if err := evaluateEnum(s, instance); err != nil {
			result.AddError(path, err)
		}
	}
	if s.Const != nil {
		if err := evaluateConst(s, instance); err != nil {
			result.AddError(path, err)
		}
	}

	if value := instanceRat(instance); value != nil {
		for _, err := range evaluateNumeric(s, value) {
			result.AddError(path, err)
		}
	}

	if str, ok := instance.(string); ok {
		evaluateString(s, str, path, result)
	}

	if items, ok := instance.([]any); ok {
		evaluateArray(s, items, path, result)
	}

	if object, ok := instance.(map[string]any); ok {
		evaluateObject(s, object, path, result)
	}

	if s.AllOf != nil {
		evaluateAllOf(s, instance, path, result)
	}
	if s.AnyOf != nil {
		if err := evaluateAnyOf(s, instance); err != nil {
			result.AddError(path, err)
		}
	}
	if s.OneOf != nil {
		if err := evaluateOneOf(s, instance); err != nil {
			result.AddError(path, err)
		}
	}
	if s.Not != nil {
		if err := evaluateNot(s, instance); err != nil {
			result.AddError(path, err)
		}
	}

	if s.If != nil {
		evaluateConditional(s, instance, path, result)
	}
}

// matches runs a silent sub-validation, used by the keywords that only need a
// boolean outcome (anyOf, oneOf, not, if, contains, propertyNames).
func (s *Schema) matches(instance any) bool {
	probe := NewEvaluationResult()
	s.evaluate(instance, "", probe)
	return probe.IsValid()
}

// evaluateNumeric applies the numeric keywords to a non-boolean number.
func evaluateNumeric(s *Schema, value *Rat) []*EvaluationError {
	var errs []*EvaluationError
	if err := evaluateMinimum(s, value); err != nil {
		errs = append(errs, err)
	}
	if err := evaluateMaximum(s, value); err != nil {
		errs = append(errs, err)
	}
	if err := evaluateExclusiveMinimum(s, value); err != nil {
		errs = append(errs, err)
	}
	if err := evaluateExclusiveMaximum(s, value); err != nil {
		errs = append(errs, err)
	}
	if err := evaluateMultipleOf(s, value); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// evaluateString applies the string keywords.
func evaluateString(s *Schema, value string, path string, result *EvaluationResult) {
	if err := evaluateMinLength(s, value); err != nil {
		result.AddError(path, err)
	}
	if err := evaluateMaxLength(s, value); err != nil {
		result.AddError(path, err)
	}
	if err := evaluatePattern(s, value); err != nil {
		result.AddError(path, err)
	}
	if err := evaluateFormat(s, value); err != nil {
		result.AddError(path, err)
	}
}

// instanceRat converts an instance value into a Rat when, and only when, it
// is a number. Booleans and numeric-looking strings stay non-numeric.
func instanceRat(instance any) *Rat {
	switch instance.(type) {
	case nil, bool, string, []any, map[string]any:
		return nil
	}
	return NewRat(instance)
}
