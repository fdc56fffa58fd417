package jsonschema

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Rat wraps big.Rat so numeric keywords compare exactly instead of through
// floating point. Decimal operands such as 0.1 keep their literal value, so
// multipleOf checks do not accumulate rounding error.
type Rat struct {
	*big.Rat
	raw string
}

// NewRat converts a numeric Go value into a Rat. It returns nil when the
// value cannot be interpreted as a number; booleans are never numbers.
func NewRat(value any) *Rat {
	switch v := value.(type) {
	case nil, bool:
		return nil
	case *Rat:
		return v
	case json.Number:
		return ratFromString(string(v))
	case string:
		return ratFromString(v)
	case float32:
		// Floats convert through their shortest decimal form, so a decoded
		// 0.07 is exactly 7/100 rather than its binary approximation.
		return ratFromString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		return ratFromString(strconv.FormatFloat(v, 'g', -1, 64))
	case int:
		return &Rat{Rat: new(big.Rat).SetInt64(int64(v))}
	case int8:
		return &Rat{Rat: new(big.Rat).SetInt64(int64(v))}
	case int16:
		return &Rat{Rat: new(big.Rat).SetInt64(int64(v))}
	case int32:
		return &Rat{Rat: new(big.Rat).SetInt64(int64(v))}
	case int64:
		return &Rat{Rat: new(big.Rat).SetInt64(v)}
	case uint:
		return &Rat{Rat: new(big.Rat).SetUint64(uint64(v))}
	case uint8:
		return &Rat{Rat: new(big.Rat).SetUint64(uint64(v))}
	case uint16:
		return &Rat{Rat: new(big.Rat).SetUint64(uint64(v))}
	case uint32:
		return &Rat{Rat: new(big.Rat).SetUint64(uint64(v))}
	case uint64:
		return &Rat{Rat: new(big.Rat).SetUint64(v)}
	default:
		return nil
	}
}

func ratFromString(s string) *Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil
	}
	return &Rat{Rat: r, raw: s}
}

// IsInt reports whether the value has no fractional part.
func (r *Rat) IsInt() bool {
	return r.Rat != nil && r.Rat.IsInt()
}

// UnmarshalJSON parses a JSON number literal into the Rat, keeping the
// literal text so marshalling round-trips it unchanged.
func (r *Rat) UnmarshalJSON(data []byte) error {
	parsed, ok := new(big.Rat).SetString(string(data))
	if !ok {
		return fmt.Errorf("%w: %q is not a number", ErrSchemaCompilation, string(data))
	}
	r.Rat = parsed
	r.raw = string(data)
	return nil
}

// MarshalJSON writes the original literal when one was captured, otherwise a
// canonical decimal rendering.
func (r *Rat) MarshalJSON() ([]byte, error) {
	return []byte(FormatRat(r)), nil
}

// FormatRat renders a Rat the way it appears in JSON output and in error
// messages: integers without a fractional part, other values as trimmed
// decimals.
func FormatRat(r *Rat) string {
	if r == nil || r.Rat == nil {
		return "null"
	}
	if r.raw != "" {
		return r.raw
	}
	if r.Rat.IsInt() {
		return r.Rat.Num().String()
	}
	s := r.Rat.FloatString(17)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// Exclusive holds the exclusiveMinimum / exclusiveMaximum operand, which is a
// boolean modifier of the paired inclusive bound in draft-04 and a numeric
// bound of its own from draft-06 on. Both forms are accepted.
type Exclusive struct {
	Bool *bool
	Rat  *Rat
}

// NewExclusive returns the numeric (draft-06+) form of the operand.
func NewExclusive(value any) *Exclusive {
	return &Exclusive{Rat: NewRat(value)}
}

// UnmarshalJSON decodes either the boolean or the numeric form.
func (e *Exclusive) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "true":
		b := true
		e.Bool = &b
		return nil
	case "false":
		b := false
		e.Bool = &b
		return nil
	}
	r := &Rat{}
	if err := r.UnmarshalJSON(data); err != nil {
		return err
	}
	e.Rat = r
	return nil
}

// MarshalJSON writes the form the operand was built with.
func (e *Exclusive) MarshalJSON() ([]byte, error) {
	if e.Bool != nil {
		if *e.Bool {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	}
	return e.Rat.MarshalJSON()
}
