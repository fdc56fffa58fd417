package jsonschema

// Keyword is a schema option applied by the constructor functions.
type Keyword func(*Schema)

// MinLen sets the minLength keyword.
func MinLen(n int) Keyword {
	return func(s *Schema) {
		v := float64(n)
		s.MinLength = &v
	}
}

// MaxLen sets the maxLength keyword.
func MaxLen(n int) Keyword {
	return func(s *Schema) {
		v := float64(n)
		s.MaxLength = &v
	}
}

// Pattern sets the pattern keyword.
func Pattern(pattern string) Keyword {
	return func(s *Schema) {
		s.Pattern = &pattern
	}
}

// Format sets the format keyword.
func Format(format string) Keyword {
	return func(s *Schema) {
		s.Format = &format
	}
}

// Min sets the inclusive minimum keyword.
func Min(value float64) Keyword {
	return func(s *Schema) {
		s.Minimum = NewRat(value)
	}
}

// Max sets the inclusive maximum keyword.
func Max(value float64) Keyword {
	return func(s *Schema) {
		s.Maximum = NewRat(value)
	}
}

// ExclusiveMin sets the numeric exclusiveMinimum keyword.
func ExclusiveMin(value float64) Keyword {
	return func(s *Schema) {
		s.ExclusiveMinimum = NewExclusive(value)
	}
}

// ExclusiveMax sets the numeric exclusiveMaximum keyword.
func ExclusiveMax(value float64) Keyword {
	return func(s *Schema) {
		s.ExclusiveMaximum = NewExclusive(value)
	}
}

// MultipleOf sets the multipleOf keyword.
func MultipleOf(value float64) Keyword {
	return func(s *Schema) {
		s.MultipleOf = NewRat(value)
	}
}

// MinItems sets the minItems keyword.
func MinItems(n int) Keyword {
	return func(s *Schema) {
		v := float64(n)
		s.MinItems = &v
	}
}

// MaxItems sets the maxItems keyword.
func MaxItems(n int) Keyword {
	return func(s *Schema) {
		v := float64(n)
		s.MaxItems = &v
	}
}

// UniqueItems sets the uniqueItems keyword.
func UniqueItems(unique bool) Keyword {
	return func(s *Schema) {
		s.UniqueItems = &unique
	}
}

// Items sets the single-schema form of the items keyword.
func Items(schema *Schema) Keyword {
	return func(s *Schema) {
		s.Items = &ItemsValue{Schema: schema}
	}
}

// TupleItems sets the tuple form of the items keyword.
func TupleItems(schemas ...*Schema) Keyword {
	return func(s *Schema) {
		s.Items = &ItemsValue{Tuple: schemas}
	}
}

// AdditionalItems sets the additionalItems keyword to a schema.
func AdditionalItems(schema *Schema) Keyword {
	return func(s *Schema) {
		s.AdditionalItems = schema
	}
}

// NoAdditionalItems forbids elements past the items tuple.
func NoAdditionalItems() Keyword {
	return func(s *Schema) {
		forbid := false
		s.AdditionalItems = &Schema{Boolean: &forbid}
	}
}

// Contains sets the contains keyword.
func Contains(schema *Schema) Keyword {
	return func(s *Schema) {
		s.Contains = schema
	}
}

// Required sets the required keyword.
func Required(names ...string) Keyword {
	return func(s *Schema) {
		s.Required = names
	}
}

// MinProps sets the minProperties keyword.
func MinProps(n int) Keyword {
	return func(s *Schema) {
		v := float64(n)
		s.MinProperties = &v
	}
}

// MaxProps sets the maxProperties keyword.
func MaxProps(n int) Keyword {
	return func(s *Schema) {
		v := float64(n)
		s.MaxProperties = &v
	}
}

// AdditionalProps sets additionalProperties to a schema.
func AdditionalProps(schema *Schema) Keyword {
	return func(s *Schema) {
		s.AdditionalProperties = schema
	}
}

// NoAdditionalProps forbids properties beyond those named in properties or
// matched by patternProperties.
func NoAdditionalProps() Keyword {
	return func(s *Schema) {
		forbid := false
		s.AdditionalProperties = &Schema{Boolean: &forbid}
	}
}

// PropertyNames sets the propertyNames keyword.
func PropertyNames(schema *Schema) Keyword {
	return func(s *Schema) {
		s.PropertyNames = schema
	}
}

// Enum sets the enum keyword.
func Enum(values ...any) Keyword {
	return func(s *Schema) {
		s.Enum = values
	}
}

// Const sets the const keyword.
func Const(value any) Keyword {
	return func(s *Schema) {
		s.Const = NewConst(value)
	}
}

// Title sets the title annotation.
func Title(title string) Keyword {
	return func(s *Schema) {
		s.Title = &title
	}
}

// Description sets the description annotation.
func Description(description string) Keyword {
	return func(s *Schema) {
		s.Description = &description
	}
}

// Default sets the default annotation.
func Default(value any) Keyword {
	return func(s *Schema) {
		s.Default = value
	}
}

// Examples sets the examples annotation.
func Examples(values ...any) Keyword {
	return func(s *Schema) {
		s.Examples = values
	}
}

// If sets the if keyword.
func If(schema *Schema) Keyword {
	return func(s *Schema) {
		s.If = schema
	}
}

// Then sets the then keyword.
func Then(schema *Schema) Keyword {
	return func(s *Schema) {
		s.Then = schema
	}
}

// Else sets the else keyword.
func Else(schema *Schema) Keyword {
	return func(s *Schema) {
		s.Else = schema
	}
}
