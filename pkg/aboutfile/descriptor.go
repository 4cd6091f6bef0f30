// SPDX-License-Identifier: MPL-2.0

package aboutfile

import (
	"fmt"
	"path"
	"strings"
)

const (
	// CodeParse marks a line the parser could not classify.
	CodeParse ProblemCode = "parse_error"
	// CodeFieldType marks a value that failed coercion to its declared type.
	CodeFieldType ProblemCode = "field_type_error"
	// CodeRequiredField marks a required field with no usable value.
	CodeRequiredField ProblemCode = "required_field_missing"
	// CodeDuplicateKey marks a discarded earlier occurrence of a duplicated key.
	CodeDuplicateKey ProblemCode = "duplicate_key_discarded"
	// CodeUnknownField marks a field name absent from the registry.
	CodeUnknownField ProblemCode = "unknown_field"
	// CodeEmptyField marks a present field with an empty value.
	CodeEmptyField ProblemCode = "empty_field"
	// CodeReference marks a path value whose resolved target is missing or
	// could not be checked.
	CodeReference ProblemCode = "reference_unreachable"
)

type (
	// ProblemCode is a machine-readable identifier for a descriptor problem.
	ProblemCode string

	// Problem is a structured validation finding attached to a descriptor.
	// Problems are returned to callers as data (rather than written to
	// stderr) for consistent rendering policy.
	Problem struct {
		// Code is the machine-readable identifier.
		Code ProblemCode
		// Field is the lowercase field name this problem concerns, if any.
		Field string
		// Line is the 1-based source line, when known (0 otherwise).
		Line int
		// Message is the human-readable description.
		Message string
	}

	// ExistsFunc is the injected filesystem predicate used to verify
	// path-typed values. It receives the descriptor base directory and the
	// normalized relative path. The package never opens files itself.
	ExistsFunc func(baseDir, rel string) bool

	// BuildOptions configures descriptor construction.
	BuildOptions struct {
		// Registry is the field table; the zero value falls back to
		// DefaultRegistry.
		Registry Registry
		// Exists verifies path targets. When nil, targets are not checked
		// and each path value gets an unverified-reference warning.
		Exists ExistsFunc
	}

	// Descriptor is the validated, typed metadata of one component.
	// It is immutable after Build; re-validation requires rebuilding.
	Descriptor struct {
		// Location identifies the source file the descriptor came from.
		Location string
		// BaseDir is the directory path-typed values resolve against.
		BaseDir string

		// Errors are the validity-affecting problems, in detection order.
		Errors []Problem
		// Warnings are non-fatal findings, in detection order.
		Warnings []Problem

		fields map[string]Value
		order  []string
		reg    Registry
	}
)

// String implements fmt.Stringer.
func (p Problem) String() string {
	var sb strings.Builder
	sb.WriteString(string(p.Code))
	if p.Field != "" {
		fmt.Fprintf(&sb, " [%s]", p.Field)
	}
	if p.Line > 0 {
		fmt.Fprintf(&sb, " (line %d)", p.Line)
	}
	sb.WriteString(": ")
	sb.WriteString(p.Message)
	return sb.String()
}

// Build constructs a Descriptor from a parsed RawEntry. It applies the
// duplicate-key policy (last occurrence wins, discarded occurrences become
// warnings), coerces values to their declared types, checks required fields,
// and resolves path values against baseDir. parseErrs from Parse are folded
// into the descriptor's errors so callers keep a single findings channel.
//
// Build never fails: every problem lands in Errors or Warnings and the
// descriptor is returned regardless.
func Build(raw RawEntry, parseErrs []LineError, location, baseDir string, opts BuildOptions) *Descriptor {
	reg := opts.Registry
	if reg.Len() == 0 {
		reg = DefaultRegistry()
	}

	d := &Descriptor{
		Location: location,
		BaseDir:  baseDir,
		fields:   make(map[string]Value),
		reg:      reg,
	}

	for _, e := range parseErrs {
		d.Errors = append(d.Errors, Problem{
			Code: CodeParse, Line: e.Line, Message: e.Message + ": " + strings.TrimSpace(e.Text),
		})
	}

	// last occurrence per key wins; every discarded prior occurrence is
	// warned, never silently lost
	last := make(map[string]Occurrence, len(raw.Occurrences))
	var order []string
	for _, occ := range raw.Occurrences {
		if prev, dup := last[occ.Key]; dup {
			d.Warnings = append(d.Warnings, Problem{
				Code: CodeDuplicateKey, Field: occ.Key, Line: prev.Line,
				Message: fmt.Sprintf("duplicate field: value %q replaced by later occurrence on line %d", prev.Value, occ.Line),
			})
		} else {
			order = append(order, occ.Key)
		}
		last[occ.Key] = occ
	}

	for _, key := range order {
		occ := last[key]
		spec := reg.Resolve(key)
		if !spec.Known {
			d.Warnings = append(d.Warnings, Problem{
				Code: CodeUnknownField, Field: key, Line: occ.Line,
				Message: "unknown field, handled as a custom string field",
			})
		}
		d.setField(spec, occ)
	}

	for _, name := range reg.Names() {
		spec := reg.Resolve(name)
		if _, ok := d.fields[name]; ok || !spec.Required {
			continue
		}
		d.Errors = append(d.Errors, Problem{
			Code: CodeRequiredField, Field: name,
			Message: "required field is missing",
		})
	}

	d.resolvePaths(opts.Exists)
	return d
}

// setField coerces one occurrence and stores the resulting value. Coercion
// failures become field errors; the field then retains the spec default, if
// one exists, or no value at all.
func (d *Descriptor) setField(spec FieldSpec, occ Occurrence) {
	raw := occ.Value
	if strings.TrimSpace(raw) == "" {
		if spec.Default != "" {
			raw = spec.Default
		} else if spec.Required {
			d.Errors = append(d.Errors, Problem{
				Code: CodeRequiredField, Field: spec.Name, Line: occ.Line,
				Message: "required field is present but empty",
			})
			return
		} else {
			d.Warnings = append(d.Warnings, Problem{
				Code: CodeEmptyField, Field: spec.Name, Line: occ.Line,
				Message: "field is present but empty",
			})
			return
		}
	}

	v, err := spec.Coerce(raw)
	if err != nil {
		if spec.Default == "" {
			d.Errors = append(d.Errors, Problem{
				Code: CodeFieldType, Field: spec.Name, Line: occ.Line, Message: err.Error(),
			})
			return
		}
		d.Errors = append(d.Errors, Problem{
			Code: CodeFieldType, Field: spec.Name, Line: occ.Line,
			Message: err.Error() + "; falling back to default " + spec.Default,
		})
		v, err = spec.Coerce(spec.Default)
		if err != nil {
			return
		}
	}

	if v.Type == TypeList && spec.Elem != TypeString {
		v.List = d.checkListElements(spec, occ.Line, v.List)
		if len(v.List) == 0 {
			return
		}
	}

	d.fields[spec.Name] = v
	d.order = append(d.order, spec.Name)
}

// checkListElements validates list elements against the spec element type.
// Invalid elements are dropped with a field error; valid ones are kept so a
// single bad element does not discard the whole list.
func (d *Descriptor) checkListElements(spec FieldSpec, line int, elements []string) []string {
	out := elements[:0]
	for _, el := range elements {
		switch spec.Elem {
		case TypePath:
			p, err := normalizePath(el)
			if err != nil {
				d.Errors = append(d.Errors, Problem{Code: CodeFieldType, Field: spec.Name, Line: line, Message: err.Error()})
				continue
			}
			el = p
		case TypeURL:
			if err := checkURL(el); err != nil {
				d.Errors = append(d.Errors, Problem{Code: CodeFieldType, Field: spec.Name, Line: line, Message: err.Error()})
				continue
			}
		}
		out = append(out, el)
	}
	return out
}

// resolvePaths resolves every path-typed value (scalar paths and list
// elements of path type) against the descriptor base directory. Missing
// targets are warnings: the descriptor stays structurally valid even when
// referenced files are absent at validation time.
func (d *Descriptor) resolvePaths(exists ExistsFunc) {
	for _, name := range d.order {
		v := d.fields[name]
		var rels []string
		switch {
		case v.Type == TypePath:
			rels = []string{v.Str}
		case v.Type == TypeList && len(v.List) > 0 && d.isPathList(name):
			rels = v.List
		default:
			continue
		}

		refs := make([]PathRef, 0, len(rels))
		for _, rel := range rels {
			ref := PathRef{Rel: rel}
			if d.BaseDir != "" {
				ref.Resolved = path.Join(strings.ReplaceAll(d.BaseDir, "\\", "/"), rel)
			}
			switch {
			case exists == nil || ref.Resolved == "":
				d.Warnings = append(d.Warnings, Problem{
					Code: CodeReference, Field: name,
					Message: fmt.Sprintf("unable to verify path %q: no base directory", rel),
				})
			case exists(d.BaseDir, rel):
				ref.Exists = true
			default:
				d.Warnings = append(d.Warnings, Problem{
					Code: CodeReference, Field: name,
					Message: fmt.Sprintf("path %q not found under %q", rel, d.BaseDir),
				})
			}
			refs = append(refs, ref)
		}
		v.Paths = refs
		d.fields[name] = v
	}
}

// isPathList reports whether the named field is registered as a list of
// paths. Unknown fields never are.
func (d *Descriptor) isPathList(name string) bool {
	spec := d.reg.Resolve(name)
	return spec.Known && spec.Type == TypeList && spec.Elem == TypePath
}

// Valid reports whether the descriptor carries no errors. Warnings never
// affect validity.
func (d *Descriptor) Valid() bool { return len(d.Errors) == 0 }

// Field returns the typed value for name and whether it is set.
func (d *Descriptor) Field(name string) (Value, bool) {
	v, ok := d.fields[name]
	return v, ok
}

// FieldNames returns the stored field names in input order.
func (d *Descriptor) FieldNames() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// String returns the trimmed string value of a string-typed field, or ""
// when the field is unset.
func (d *Descriptor) String(name string) string {
	return d.fields[name].Str
}

// List returns the elements of a list-typed field, or nil when unset.
func (d *Descriptor) List(name string) []string {
	return d.fields[name].List
}

// Flag returns the value of a boolean field and whether it is set.
func (d *Descriptor) Flag(name string) (value, ok bool) {
	v, ok := d.fields[name]
	return v.Bool, ok && v.Type == TypeBoolean
}

// PathRefs returns the resolved path references of a path-typed field
// (scalar or list), or nil when unset.
func (d *Descriptor) PathRefs(name string) []PathRef {
	return d.fields[name].Paths
}

// ComponentID identifies the documented component as "name version", or just
// the name when no version is set. Used as the attribution identity.
func (d *Descriptor) ComponentID() string {
	name := d.String("name")
	if version := d.String("version"); version != "" {
		return name + " " + version
	}
	return name
}

// LicenseKey returns the normalized license identifier of this descriptor:
// the first declared license expression, falling back to the license name.
// Empty when the descriptor declares neither.
func (d *Descriptor) LicenseKey() string {
	if keys := d.List("license"); len(keys) > 0 {
		return strings.ToLower(keys[0])
	}
	return strings.ToLower(strings.TrimSpace(d.String("license_name")))
}
