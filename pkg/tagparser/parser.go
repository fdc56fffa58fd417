// Package tagparser parses `jsonschema:"..."` struct tags into an ordered
// rule list. The syntax is a comma-separated sequence of rules, each a bare
// flag (required, ignore, uniqueItems) or a name=param pair
// (minLength=1, pattern=^[a-z]+$, enum=red|green|blue). A literal comma
// inside a parameter is written as '\,'.
package tagparser

import "strings"

// Rule is one parsed tag rule. Param is empty for bare flags.
type Rule struct {
	Name  string
	Param string
}

// TagInfo is the parsed form of one field's tag.
type TagInfo struct {
	Ignored bool
	Rules   []Rule
}

// Parse splits a tag value into rules, preserving order. The single rule "-"
// marks the field as ignored, mirroring encoding/json.
func Parse(tag string) TagInfo {
	info := TagInfo{}
	if tag == "" {
		return info
	}
	if tag == "-" {
		info.Ignored = true
		return info
	}

	for _, part := range splitEscaped(tag, ',') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, param, _ := strings.Cut(part, "=")
		if name == "ignore" || name == "-" {
			info.Ignored = true
			continue
		}
		info.Rules = append(info.Rules, Rule{Name: name, Param: param})
	}
	return info
}

// Values splits a multi-valued parameter on '|'.
func Values(param string) []string {
	if param == "" {
		return nil
	}
	return strings.Split(param, "|")
}

// splitEscaped splits s on sep, honoring backslash escapes of the separator.
func splitEscaped(s string, sep byte) []string {
	var parts []string
	var current strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && s[i+1] == sep {
			current.WriteByte(sep)
			i++
			continue
		}
		if s[i] == sep {
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteByte(s[i])
	}
	parts = append(parts, current.String())
	return parts
}
