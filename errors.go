package jsonschema

import "errors"

// === Reference Resolution Errors ===
var (
	// ErrRefNotFound is returned when a JSON Pointer segment cannot be resolved.
	ErrRefNotFound = errors.New("reference not found")

	// ErrExternalRefUnsupported is returned when a $ref does not point into the
	// current document and no pre-compiled schema is registered for its URI.
	ErrExternalRefUnsupported = errors.New("external reference unsupported")

	// ErrNoLoaderRegistered is returned when no loader is registered for the specified scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")
)

// === Schema Compilation Errors ===
var (
	// ErrSchemaCompilation is returned when a schema compilation fails.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrUnknownMediaType is returned when no media type handler matches the input.
	ErrUnknownMediaType = errors.New("unknown media type")
)

// === Generation Errors ===
var (
	// ErrExpectedStructType is returned when a non-struct type is provided where a struct type is expected.
	ErrExpectedStructType = errors.New("expected struct type")

	// ErrUnsupportedGenerationType is returned in strict mode when a type cannot
	// be mapped to a schema.
	ErrUnsupportedGenerationType = errors.New("unsupported generation type")

	// ErrRecursiveInline is returned in strict mode when a recursive record type
	// is generated with references disabled.
	ErrRecursiveInline = errors.New("recursive type requires references")

	// ErrNonStringKeyMap is returned in strict mode when a map type does not use
	// string-kind keys.
	ErrNonStringKeyMap = errors.New("map key type must be a string kind")
)

// === Typed Validation Errors ===
var (
	// ErrUnsupportedInputType is returned when an unsupported instance type is
	// passed to a typed validation entry point.
	ErrUnsupportedInputType = errors.New("unsupported input type")

	// ErrSourceTypeMismatch is returned when a struct instance does not match
	// the type the schema was generated from.
	ErrSourceTypeMismatch = errors.New("instance type does not match schema source type")
)
