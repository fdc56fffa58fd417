package jsonschema

import (
	"net"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/net/idna"
)

// Formats is the registry of named string format predicates. New formats can
// be registered by adding to this map before compiling schemas.
var Formats = map[string]func(string) bool{
	"email":         IsEmail,
	"uri":           IsURI,
	"uri-reference": IsURIReference,
	"uuid":          IsUUID,
	"date-time":     IsDateTime,
	"date":          IsDate,
	"time":          IsTime,
	"hostname":      IsHostname,
	"ipv4":          IsIPV4,
	"ipv6":          IsIPV6,
	"json-pointer":  IsJSONPointer,
	"regex":         IsRegex,
}

// IsEmail checks the pragmatic email shape: exactly one '@', no whitespace,
// and a domain that contains a dot and survives IDNA mapping.
func IsEmail(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return false
		}
	}
	at := strings.Count(s, "@")
	if at != 1 {
		return false
	}
	local, domain, _ := strings.Cut(s, "@")
	if local == "" || domain == "" || !strings.Contains(domain, ".") {
		return false
	}
	_, err := idna.Lookup.ToASCII(domain)
	return err == nil
}

var uriPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:\S+$`)

// IsURI checks for an absolute URI: a scheme starting with an ASCII letter,
// a colon, and a non-empty remainder without whitespace.
func IsURI(s string) bool {
	return uriPattern.MatchString(s)
}

// IsURIReference accepts absolute URIs as well as relative references, which
// may be empty; whitespace is rejected.
func IsURIReference(s string) bool {
	return !strings.ContainsFunc(s, unicode.IsSpace)
}

var uuidPattern = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// IsUUID checks the 8-4-4-4-12 hexadecimal form, case-insensitively.
func IsUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

// IsDateTime checks an ISO-8601 date-time with a timezone (Z or ±HH:MM) and
// optional fractional seconds, per RFC 3339 section 5.6.
func IsDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// IsDate checks a full-date production per RFC 3339.
func IsDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsTime checks a full-time production per RFC 3339.
func IsTime(s string) bool {
	if _, err := time.Parse("15:04:05Z07:00", s); err == nil {
		return true
	}
	_, err := time.Parse("15:04:05.999999999Z07:00", s)
	return err == nil
}

// IsHostname checks RFC 1034 hostnames through IDNA lookup mapping, which
// enforces label lengths and the permitted alphabet.
func IsHostname(s string) bool {
	ascii, err := idna.Lookup.ToASCII(strings.TrimSuffix(s, "."))
	return err == nil && len(ascii) <= 253
}

// IsIPV4 checks a dotted-quad IPv4 address.
func IsIPV4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && strings.Contains(s, ".") && ip.To4() != nil
}

// IsIPV6 checks an IPv6 address.
func IsIPV6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && strings.Contains(s, ":")
}

// IsJSONPointer checks the RFC 6901 string form: empty, or segments each
// introduced by '/' with '~' only in ~0 / ~1 escapes.
func IsJSONPointer(s string) bool {
	if s == "" {
		return true
	}
	if !strings.HasPrefix(s, "/") {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '~' {
			continue
		}
		if i+1 >= len(s) || (s[i+1] != '0' && s[i+1] != '1') {
			return false
		}
	}
	return true
}

// IsRegex checks that the string compiles as a regular expression.
func IsRegex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}
