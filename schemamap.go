package jsonschema

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// SchemaMap is an insertion-ordered mapping from name to sub-schema, used for
// properties, patternProperties and the definitions block. Parsing keeps
// document order and the generator appends in generation order, so marshalled
// output is byte-stable across runs.
type SchemaMap struct {
	keys   []string
	values map[string]*Schema
}

// NewSchemaMap builds a SchemaMap from alternating insertion of the given
// pairs, in argument order.
func NewSchemaMap(pairs ...Property) *SchemaMap {
	m := &SchemaMap{}
	for _, p := range pairs {
		m.Set(p.Name, p.Schema)
	}
	return m
}

// Set inserts or replaces the schema stored under name. Insertion order is
// kept; replacing keeps the original position.
func (m *SchemaMap) Set(name string, schema *Schema) {
	if m.values == nil {
		m.values = make(map[string]*Schema)
	}
	if _, exists := m.values[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.values[name] = schema
}

// Get returns the schema stored under name.
func (m *SchemaMap) Get(name string) (*Schema, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	s, ok := m.values[name]
	return s, ok
}

// Keys returns the names in insertion order. The returned slice is shared and
// must not be mutated.
func (m *SchemaMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries.
func (m *SchemaMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (m *SchemaMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object member by member so document order
// survives the round trip.
func (m *SchemaMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected object for schema map", ErrSchemaCompilation)
	}

	m.keys = nil
	m.values = make(map[string]*Schema)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: non-string key in schema map", ErrSchemaCompilation)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		child := &Schema{}
		if err := json.Unmarshal(raw, child); err != nil {
			return err
		}
		m.Set(key, child)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// SchemaType holds the value of the "type" keyword: a single type name or an
// array of type names.
type SchemaType []string

// UnmarshalJSON accepts both the string and the array form.
func (t *SchemaType) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = SchemaType{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = SchemaType(many)
	return nil
}

// MarshalJSON writes the string form when only one type is present.
func (t SchemaType) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// Contains reports whether the type list names the given type.
func (t SchemaType) Contains(name string) bool {
	for _, candidate := range t {
		if candidate == name {
			return true
		}
	}
	return false
}

// ConstValue carries the "const" sentinel. It keeps the raw encoding so a
// JSON null is distinguishable from an absent keyword.
type ConstValue struct {
	Value any
	raw   json.RawMessage
}

// NewConst builds a ConstValue from a Go value.
func NewConst(value any) *ConstValue {
	return &ConstValue{Value: value}
}

// UnmarshalJSON records the literal and its decoded value.
func (c *ConstValue) UnmarshalJSON(data []byte) error {
	c.raw = append(c.raw[:0], data...)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(&c.Value)
}

// MarshalJSON writes the original literal when one was captured.
func (c *ConstValue) MarshalJSON() ([]byte, error) {
	if c.raw != nil {
		return c.raw, nil
	}
	return json.Marshal(c.Value)
}

// ItemsValue holds the draft-07 "items" keyword, which is a single schema
// applying to every element or a tuple of positional schemas.
type ItemsValue struct {
	Schema *Schema
	Tuple  []*Schema
}

// UnmarshalJSON distinguishes the tuple form from the single-schema form.
func (iv *ItemsValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &iv.Tuple)
	}
	iv.Schema = &Schema{}
	return json.Unmarshal(data, iv.Schema)
}

// MarshalJSON writes whichever form is populated.
func (iv *ItemsValue) MarshalJSON() ([]byte, error) {
	if iv.Tuple != nil {
		return json.Marshal(iv.Tuple)
	}
	return json.Marshal(iv.Schema)
}

// Dependency holds one entry of the draft-07 "dependencies" keyword: either a
// list of co-required property names or a schema the whole object must match
// when the key is present.
type Dependency struct {
	Required []string
	Schema   *Schema
}

// UnmarshalJSON distinguishes the property-list arm from the schema arm.
func (d *Dependency) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &d.Required)
	}
	d.Schema = &Schema{}
	return json.Unmarshal(data, d.Schema)
}

// MarshalJSON writes whichever arm is populated.
func (d *Dependency) MarshalJSON() ([]byte, error) {
	if d.Required != nil {
		return json.Marshal(d.Required)
	}
	return json.Marshal(d.Schema)
}
