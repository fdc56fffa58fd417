// Package jsonschema implements a JSON Schema draft-07 validator together
// with reflection-driven schema generation for Go struct types.
//
// Schemas are compiled from JSON (or YAML) documents, assembled with the
// builder API (Object, String, Prop, ...), or generated from a struct type
// with FromStruct. Validation walks the instance depth first and collects
// every keyword violation into an EvaluationResult whose messages are
// prefixed with the dotted path of the offending value.
//
//	compiler := jsonschema.NewCompiler()
//	schema, err := compiler.Compile([]byte(`{"type":"integer","minimum":1}`))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := schema.Validate(0)
//	for _, msg := range result.Messages() {
//		fmt.Println(msg) // "value 0 is less than the minimum of 1"
//	}
//
// Generation maps primitives, slices, maps, fixed arrays and nested structs
// to their draft-07 counterparts, reads per-field constraints from
// `jsonschema:"..."` tags, and can deduplicate nested record types into a
// definitions block with cycle-safe $ref emission.
package jsonschema
