package jsonschema

import (
	"fmt"
	"math/big"
	"net/url"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// replace substitutes placeholders in a template string with actual parameter values.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}
	return template
}

// getDataType identifies the JSON schema type for a given Go value. Integral
// floats classify as "integer"; booleans are never numeric.
func getDataType(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		if _, ok := new(big.Int).SetString(string(v), 10); ok {
			return "integer"
		}
		if bigFloat, ok := new(big.Float).SetString(string(v)); ok {
			if _, acc := bigFloat.Int(nil); acc == big.Exact {
				return "integer"
			}
			return "number"
		}
		return "unknown"
	case float32:
		return floatDataType(float64(v))
	case float64:
		return floatDataType(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

func floatDataType(f float64) string {
	bigFloat := new(big.Float).SetFloat64(f)
	if _, acc := bigFloat.Int(nil); acc == big.Exact {
		return "integer"
	}
	return "number"
}

// joinPath appends an object member to a dotted instance path. The root path
// is the empty string, so top-level members come out bare: "foo", "foo.bar".
func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

// joinIndex appends a zero-based array index to an instance path.
func joinIndex(base string, index int) string {
	return fmt.Sprintf("%s[%d]", base, index)
}

// canonicalize renders a value as a canonical string for structural JSON
// equality: object keys sorted, numbers reduced through big.Rat so 1, 1.0 and
// json.Number("1") coincide while true stays distinct from 1.
func canonicalize(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		encoded, _ := json.Marshal(v)
		return string(encoded)
	case []any:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(canonicalize(elem))
		}
		sb.WriteByte(']')
		return sb.String()
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		var sb strings.Builder
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			encoded, _ := json.Marshal(k)
			sb.Write(encoded)
			sb.WriteByte(':')
			sb.WriteString(canonicalize(v[k]))
		}
		sb.WriteByte('}')
		return sb.String()
	default:
		if r := NewRat(v); r != nil {
			return r.RatString()
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%#v", v)
		}
		return string(encoded)
	}
}

// jsonEqual implements structural JSON equality over decoded values.
func jsonEqual(a, b any) bool {
	return canonicalize(a) == canonicalize(b)
}

// formatValue renders an instance value for inclusion in error messages.
func formatValue(value any) string {
	if r := NewRat(value); r != nil {
		return FormatRat(r)
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(encoded)
}

func sortedDependencyKeys(deps map[string]*Dependency) []string {
	if len(deps) == 0 {
		return nil
	}
	keys := make([]string, 0, len(deps))
	for key := range deps {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// isAbsoluteURI checks if the given URI has both a scheme and a host.
func isAbsoluteURI(uri string) bool {
	u, err := url.Parse(uri)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// getBaseURI extracts the base URI from an $id, falling back to "" if the $id
// does not carry one.
func getBaseURI(id string) string {
	if id == "" {
		return ""
	}
	u, err := url.Parse(id)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	if strings.HasSuffix(u.Path, "/") {
		return u.String()
	}
	u.Path = path.Dir(u.Path)
	if u.Path == "." {
		u.Path = "/"
	}
	if u.Path != "/" && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// resolveRelativeURI resolves a relative URI against a base URI.
func resolveRelativeURI(baseURI, relative string) string {
	if isAbsoluteURI(relative) {
		return relative
	}
	base, err := url.Parse(baseURI)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return relative
	}
	rel, err := url.Parse(relative)
	if err != nil {
		return relative
	}
	return base.ResolveReference(rel).String()
}

// splitRef separates a URI into its base URI and fragment parts.
func splitRef(ref string) (baseURI string, fragment string) {
	parts := strings.SplitN(ref, "#", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return ref, ""
}
