// SPDX-License-Identifier: MPL-2.0

package aboutfile

// Registry is the immutable table of known field specs. It is constructed
// once and passed explicitly to descriptor construction; there is no global
// mutable state. Resolve never fails: unknown names get an untyped optional
// string spec so custom fields pass through with a warning.
type Registry struct {
	specs map[string]FieldSpec
	order []string
}

// NewRegistry builds a Registry from field specs. Later specs with a
// duplicate name replace earlier ones. List specs with no element type
// default to string elements.
func NewRegistry(specs ...FieldSpec) Registry {
	r := Registry{specs: make(map[string]FieldSpec, len(specs))}
	for _, s := range specs {
		s.Known = true
		if s.Type == "" {
			s.Type = TypeString
		}
		if s.Type == TypeList && s.Elem == "" {
			s.Elem = TypeString
		}
		if _, seen := r.specs[s.Name]; !seen {
			r.order = append(r.order, s.Name)
		}
		r.specs[s.Name] = s
	}
	return r
}

// DefaultRegistry returns the standard .about field table. The descriptor
// must name the documented component (name) and point at the resource it
// documents (about_resource); everything else is optional provenance detail.
func DefaultRegistry() Registry {
	return NewRegistry(
		FieldSpec{Name: "about_resource", Type: TypePath, Required: true},
		FieldSpec{Name: "name", Type: TypeString, Required: true},

		FieldSpec{Name: "version", Type: TypeString},
		FieldSpec{Name: "description", Type: TypeString},
		FieldSpec{Name: "download_url", Type: TypeURL},
		FieldSpec{Name: "homepage_url", Type: TypeURL},
		FieldSpec{Name: "notes", Type: TypeString},

		FieldSpec{Name: "license", Type: TypeList},
		FieldSpec{Name: "license_name", Type: TypeString},
		FieldSpec{Name: "license_file", Type: TypeList, Elem: TypePath},
		FieldSpec{Name: "license_url", Type: TypeList, Elem: TypeURL},
		FieldSpec{Name: "copyright", Type: TypeString},
		FieldSpec{Name: "notice_file", Type: TypeList, Elem: TypePath},
		FieldSpec{Name: "notice_url", Type: TypeList, Elem: TypeURL},

		FieldSpec{Name: "redistribute", Type: TypeBoolean},
		FieldSpec{Name: "attribute", Type: TypeBoolean},
		FieldSpec{Name: "track_changes", Type: TypeBoolean},
		FieldSpec{Name: "modified", Type: TypeBoolean},

		FieldSpec{Name: "changelog_file", Type: TypeList, Elem: TypePath},

		FieldSpec{Name: "owner", Type: TypeList},
		FieldSpec{Name: "owner_url", Type: TypeList, Elem: TypeURL},
		FieldSpec{Name: "contact", Type: TypeList},
		FieldSpec{Name: "author", Type: TypeList},

		FieldSpec{Name: "vcs_tool", Type: TypeString},
		FieldSpec{Name: "vcs_repository", Type: TypeString},
		FieldSpec{Name: "vcs_path", Type: TypeString},
		FieldSpec{Name: "vcs_tag", Type: TypeString},
		FieldSpec{Name: "vcs_branch", Type: TypeString},
		FieldSpec{Name: "vcs_revision", Type: TypeString},

		FieldSpec{Name: "checksum", Type: TypeList},
		FieldSpec{Name: "spec_version", Type: TypeString},
	)
}

// Resolve returns the spec registered for name, or an untyped optional
// string spec (Known=false) for unregistered names. It never fails: unknown
// fields are a warning at descriptor build time, not an error.
func (r Registry) Resolve(name string) FieldSpec {
	if s, ok := r.specs[name]; ok {
		return s
	}
	return FieldSpec{Name: name, Type: TypeString}
}

// Names returns the registered field names in registration order.
func (r Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered specs.
func (r Registry) Len() int { return len(r.specs) }
