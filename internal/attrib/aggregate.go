// SPDX-License-Identifier: MPL-2.0

// Package attrib aggregates a descriptor collection into attribution data:
// license texts deduplicated by content, grouped components, deterministic
// ordering. Rendering the final document is a thin layer on top (render.go);
// the aggregation itself produces plain data for any renderer.
package attrib

import (
	"crypto/sha256"
	"fmt"

	"aboutgen-cli/internal/inventory"
	"aboutgen-cli/pkg/aboutfile"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// CodeTextUnavailable indicates a license or notice text could not be
	// loaded; the contributing descriptor is still attributed by name.
	CodeTextUnavailable inventory.DiagnosticCode = "license_text_unavailable"
	// CodeNoLicenseText indicates a valid descriptor referencing no license
	// text at all.
	CodeNoLicenseText inventory.DiagnosticCode = "no_license_text"
)

type (
	// Entry is one deduplicated license-text group in the attribution
	// document. Two descriptors bundling byte-identical license text
	// collapse into a single entry no matter what identifiers they declare:
	// deduplication is content-addressed, not metadata-based.
	Entry struct {
		// LicenseKey is the normalized license identifier: the
		// lexicographically smallest key declared by any contributor, or ""
		// when no contributor declares one.
		LicenseKey string
		// LicenseText is the exact text content shared by the contributors.
		LicenseText string
		// Components are the contributing component identifiers
		// ("name version"), deduplicated and sorted.
		Components []string
	}

	// TextLoader obtains the text behind a resolved path reference. The
	// filesystem implementation lives in inventory; aggregation itself
	// never opens files.
	TextLoader func(ref aboutfile.PathRef) (string, error)

	// group accumulates one content-hash bucket during aggregation.
	group struct {
		seq        int
		text       string
		key        string
		components map[string]struct{}
	}
)

// Aggregate merges the valid descriptors of a collection into attribution
// entries. Invalid descriptors are excluded but not reported here; reporting
// them is the caller's concern. The result ordering is deterministic:
// keyed entries sorted by ascending license key, then first component, then
// license text; keyless entries follow in first-seen order. Running
// Aggregate twice over the same collection yields identical sequences.
func Aggregate(col *inventory.Collection, load TextLoader) ([]Entry, []inventory.Diagnostic) {
	var diags []inventory.Diagnostic
	groups := make(map[[sha256.Size]byte]*group)

	for _, d := range col.Valid() {
		key := d.LicenseKey()
		component := d.ComponentID()

		refs := d.PathRefs("license_file")
		if len(refs) == 0 {
			diags = append(diags, inventory.Diagnostic{
				Severity: inventory.SeverityWarning, Code: CodeNoLicenseText,
				Path:    d.Location,
				Message: fmt.Sprintf("component %q references no license text", component),
			})
			continue
		}

		for _, ref := range refs {
			text, err := load(ref)
			if err != nil {
				diags = append(diags, inventory.Diagnostic{
					Severity: inventory.SeverityWarning, Code: CodeTextUnavailable,
					Path:    d.Location,
					Message: fmt.Sprintf("component %q: %v", component, err),
					Cause:   err,
				})
				continue
			}

			sum := sha256.Sum256([]byte(text))
			g, ok := groups[sum]
			if !ok {
				g = &group{
					seq:        len(groups),
					text:       text,
					key:        key,
					components: make(map[string]struct{}),
				}
				groups[sum] = g
			} else if key != "" && (g.key == "" || key < g.key) {
				// differing declared identifiers over identical text:
				// the smallest key wins, deterministically
				g.key = key
			}
			g.components[component] = struct{}{}
		}
	}

	entries := make([]Entry, 0, len(groups))
	order := make(map[string]int, len(groups))
	for _, g := range groups {
		components := maps.Keys(g.components)
		slices.Sort(components)
		entries = append(entries, Entry{
			LicenseKey:  g.key,
			LicenseText: g.text,
			Components:  components,
		})
		order[g.text] = g.seq
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		switch {
		case a.LicenseKey != "" && b.LicenseKey != "":
			if a.LicenseKey != b.LicenseKey {
				return compare(a.LicenseKey, b.LicenseKey)
			}
			if c := compare(first(a.Components), first(b.Components)); c != 0 {
				return c
			}
			// same key and same first component (one descriptor bundling
			// several texts under one key): the text itself breaks the tie,
			// and texts are unique per entry by construction
			return compare(a.LicenseText, b.LicenseText)
		case a.LicenseKey != "":
			return -1
		case b.LicenseKey != "":
			return 1
		default:
			// keyless entries keep first-seen order
			return order[a.LicenseText] - order[b.LicenseText]
		}
	})
	return entries, diags
}

func compare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
