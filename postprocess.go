package jsonschema

// SetAdditionalProperties recursively stamps the given boolean onto every
// object sub-schema of a generated document. An object sub-schema is one
// that declares "type":"object" or carries "properties"; $ref nodes and
// boolean schemas are opaque and left untouched. Applying the same value
// twice is a no-op, so the pass is idempotent.
func SetAdditionalProperties(schema *Schema, allowed bool) {
	stampAdditionalProperties(schema, allowed, make(map[*Schema]bool))
}

func stampAdditionalProperties(s *Schema, allowed bool, visited map[*Schema]bool) {
	if s == nil || visited[s] {
		return
	}
	visited[s] = true

	if s.Boolean != nil || s.Ref != "" {
		return
	}

	if s.Type.Contains("object") || s.Properties != nil {
		value := allowed
		s.AdditionalProperties = &Schema{Boolean: &value}
	}

	// Recurse through every structural child. The stamped
	// additionalProperties schema itself is a bare boolean and is skipped by
	// the guard above.
	for _, child := range s.childSchemas() {
		stampAdditionalProperties(child, allowed, visited)
	}
}
