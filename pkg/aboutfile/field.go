// SPDX-License-Identifier: MPL-2.0

package aboutfile

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

const (
	// TypeString is a free-form string value, possibly spanning multiple
	// continuation lines.
	TypeString FieldType = "string"
	// TypeList is an ordered list of strings. Elements are separated by
	// commas or newlines (one element per continuation line).
	TypeList FieldType = "list"
	// TypeBoolean is a yes/no flag.
	TypeBoolean FieldType = "boolean"
	// TypePath is a path relative to the descriptor's base directory.
	TypePath FieldType = "path"
	// TypeURL is an absolute URL with an http, https or ftp scheme.
	TypeURL FieldType = "url"
)

// ListSeparator separates inline list elements. Elements may not contain it;
// an element that needs a literal comma must be written alone on a
// continuation line instead (continuation lines are joined with newlines and
// lists split on both).
const ListSeparator = ","

var (
	// ErrInvalidBoolean is returned when a boolean field value is not one of
	// the recognized flag spellings.
	ErrInvalidBoolean = errors.New("invalid boolean value")
	// ErrInvalidURL is returned when a URL field value has no recognized
	// scheme or no host.
	ErrInvalidURL = errors.New("invalid url value")
	// ErrInvalidPath is returned when a path field value is syntactically
	// unusable (empty or containing forbidden characters).
	ErrInvalidPath = errors.New("invalid path value")
)

type (
	// FieldType identifies the value type of a descriptor field.
	FieldType string

	// FieldSpec is the static declaration of a known field: its name, value
	// type, element type for lists, and whether a descriptor must carry it.
	// Specs are immutable; unknown field names resolve to an untyped
	// (string) spec.
	FieldSpec struct {
		// Name is the lowercase field name.
		Name string
		// Type is the field value type.
		Type FieldType
		// Elem is the element type for TypeList fields (TypeString,
		// TypePath or TypeURL). Ignored for non-list fields.
		Elem FieldType
		// Required marks fields every descriptor must provide.
		Required bool
		// Default is the raw value coerced when the field is absent or its
		// value fails coercion. Empty means no default.
		Default string
		// Known is false for specs synthesized for unregistered names.
		Known bool
	}

	// PathRef is a path-typed value resolved against a descriptor's base
	// directory. Exists reflects the injected existence predicate at build
	// time; the package itself never touches the filesystem.
	PathRef struct {
		// Rel is the path as written, normalized to forward slashes and
		// stripped of leading and trailing separators.
		Rel string
		// Resolved is Rel joined to the descriptor base directory, or ""
		// when no base directory was available.
		Resolved string
		// Exists reports whether the resolved target existed when checked.
		Exists bool
	}

	// Value is a coerced, typed field value. Exactly the member matching
	// Type is meaningful; Paths is additionally populated for path-typed
	// values once the descriptor resolves them.
	Value struct {
		Type FieldType
		// Str holds TypeString, TypePath and TypeURL values.
		Str string
		// List holds TypeList elements in input order.
		List []string
		// Bool holds TypeBoolean values.
		Bool bool
		// Paths holds resolution results for TypePath values and for
		// TypeList values with path elements.
		Paths []PathRef
	}
)

// IsValid reports whether t is one of the declared field types.
func (t FieldType) IsValid() bool {
	switch t {
	case TypeString, TypeList, TypeBoolean, TypePath, TypeURL:
		return true
	default:
		return false
	}
}

// Coerce converts a raw field value into a typed Value according to the
// spec. Coercion never touches the filesystem: path values are only checked
// for syntactic shape here, resolution happens at descriptor build time.
func (s FieldSpec) Coerce(raw string) (Value, error) {
	switch s.Type {
	case TypeList:
		return Value{Type: TypeList, List: splitList(raw)}, nil
	case TypeBoolean:
		b, err := parseFlag(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: TypeBoolean, Bool: b}, nil
	case TypePath:
		p, err := normalizePath(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: TypePath, Str: p}, nil
	case TypeURL:
		u := strings.TrimSpace(raw)
		if err := checkURL(u); err != nil {
			return Value{}, err
		}
		return Value{Type: TypeURL, Str: u}, nil
	default:
		return Value{Type: TypeString, Str: trimLines(raw)}, nil
	}
}

// Format is the inverse of Coerce: it serializes a typed value back into the
// raw text representation used by the .about format. The result is
// semantically equivalent to the original input, not byte-identical.
func (s FieldSpec) Format(v Value) string {
	switch v.Type {
	case TypeList:
		for _, el := range v.List {
			if strings.Contains(el, ListSeparator) {
				// one element per line keeps literal commas intact
				return strings.Join(v.List, "\n")
			}
		}
		return strings.Join(v.List, ListSeparator+" ")
	case TypeBoolean:
		if v.Bool {
			return "yes"
		}
		return "no"
	default:
		return v.Str
	}
}

// splitList splits a raw list value on commas and newlines, trims each
// element, and drops empty elements. Order and duplicates are preserved.
func splitList(raw string) []string {
	elements := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	out := make([]string, 0, len(elements))
	for _, el := range elements {
		el = strings.TrimSpace(el)
		if el == "" {
			continue
		}
		out = append(out, el)
	}
	return out
}

// parseFlag maps the recognized boolean spellings to a bool,
// case-insensitively. Anything else is a type error.
func parseFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not one of: yes, true, 1, no, false, 0", ErrInvalidBoolean, strings.TrimSpace(raw))
	}
}

// checkURL validates that a URL has a recognized scheme and a host.
// Values are never dereferenced.
func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}
	switch u.Scheme {
	case "http", "https", "ftp":
	default:
		return fmt.Errorf("%w: %q: scheme must be http, https or ftp", ErrInvalidURL, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q: missing host", ErrInvalidURL, raw)
	}
	return nil
}

// normalizePath validates the syntactic shape of a descriptor-relative path
// and normalizes it to a clean forward-slash form with no leading or
// trailing separators. Descriptor paths are always relative.
func normalizePath(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.ContainsAny(p, "\x00\n") {
		return "", fmt.Errorf("%w: %q contains forbidden characters", ErrInvalidPath, p)
	}
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(p)
	p = strings.Trim(p, "/")
	if p == "" || p == "." {
		// a bare separator (or run of them) means the base directory itself
		p = "."
	}
	return p, nil
}

// trimLines trims trailing whitespace from every line and leading/trailing
// whitespace from the whole value, preserving internal line structure.
func trimLines(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
