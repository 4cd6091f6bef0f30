// SPDX-License-Identifier: MPL-2.0

// Package inventory loads batches of .about descriptors and exposes them as
// a queryable collection. Directory traversal and file reading live here, as
// collaborators around the pure aboutfile core: the core only ever sees text
// plus an existence predicate.
package inventory

import (
	"fmt"

	"aboutgen-cli/pkg/aboutfile"
)

type (
	// Source is one descriptor input: its text and where it came from.
	// Err is set when the text could not be obtained at all, in which case
	// loading records the source in the failure ledger instead of building
	// a descriptor.
	Source struct {
		// Location identifies the descriptor file.
		Location string
		// BaseDir is the directory relative paths resolve against.
		BaseDir string
		// Text is the raw descriptor content.
		Text string
		// Err is the retrieval failure, if any.
		Err error
	}

	// Failure is one entry of the collection's failure ledger: a descriptor
	// whose text could not be obtained.
	Failure struct {
		Location string
		Err      error
	}

	// Collection is an ordered batch of descriptors plus the parallel
	// failure ledger. Invariant: every input source ends up either as a
	// descriptor (valid or not) or as a ledger entry; nothing is dropped,
	// so len(Descriptors)+len(Failures) equals the number of inputs.
	Collection struct {
		Descriptors []*aboutfile.Descriptor
		Failures    []Failure
	}

	// Options configures collection loading.
	Options struct {
		// Registry is the field table passed to descriptor construction.
		// The zero value falls back to the default table.
		Registry aboutfile.Registry
		// Exists is the path predicate passed to descriptor construction.
		// Nil disables target verification (each path value then carries an
		// unverified-reference warning).
		Exists aboutfile.ExistsFunc
	}
)

// Error implements the error interface.
func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Location, f.Err)
}

// Load builds a Collection from sources, in input order. Descriptors that
// fail validation are kept (with their errors); only sources whose text was
// unobtainable go to the failure ledger. Load itself never fails.
func Load(sources []Source, opts Options) *Collection {
	col := &Collection{}
	for _, src := range sources {
		if src.Err != nil {
			col.Failures = append(col.Failures, Failure{Location: src.Location, Err: src.Err})
			continue
		}
		entry, parseErrs := aboutfile.Parse(src.Text)
		d := aboutfile.Build(entry, parseErrs, src.Location, src.BaseDir, aboutfile.BuildOptions{
			Registry: opts.Registry,
			Exists:   opts.Exists,
		})
		col.Descriptors = append(col.Descriptors, d)
	}
	return col
}

// Len returns the number of loaded descriptors (valid or not).
func (c *Collection) Len() int { return len(c.Descriptors) }

// Valid returns only the descriptors with no errors, preserving order.
func (c *Collection) Valid() []*aboutfile.Descriptor {
	var out []*aboutfile.Descriptor
	for _, d := range c.Descriptors {
		if d.Valid() {
			out = append(out, d)
		}
	}
	return out
}

// Invalid returns only the descriptors carrying errors, preserving order.
func (c *Collection) Invalid() []*aboutfile.Descriptor {
	var out []*aboutfile.Descriptor
	for _, d := range c.Descriptors {
		if !d.Valid() {
			out = append(out, d)
		}
	}
	return out
}

// ByField returns the descriptors whose named field formats to exactly
// value. Used to group components, e.g. by license key.
func (c *Collection) ByField(name, value string) []*aboutfile.Descriptor {
	var out []*aboutfile.Descriptor
	for _, d := range c.Descriptors {
		if _, ok := d.Field(name); !ok {
			continue
		}
		if d.FormatField(name) == value {
			out = append(out, d)
		}
	}
	return out
}
