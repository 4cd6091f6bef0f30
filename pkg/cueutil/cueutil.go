// SPDX-License-Identifier: MPL-2.0

// Package cueutil decodes CUE-formatted files against an embedded schema.
// The tool configuration is the only CUE surface of aboutgen; descriptor
// files use their own line-oriented format and never pass through here.
package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// MaxFileSize caps parsed file sizes so a runaway config file cannot
// exhaust memory.
const MaxFileSize = 1 << 20

// Decode validates data against the definition named by schemaPath inside
// schema (e.g. "#Config") and decodes the unified value into T. filename
// only labels error messages.
//
// The flow is: compile schema, compile data, unify with the schema
// definition, validate, decode.
func Decode[T any](schema, data []byte, schemaPath, filename string) (*T, error) {
	if filename == "" {
		filename = "<input>"
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%s: file size %d exceeds maximum %d bytes", filename, len(data), MaxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}
	root := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, root.Err())
	}

	dataValue := ctx.CompileBytes(data, cue.Filename(filename))
	if dataValue.Err() != nil {
		return nil, FormatError(dataValue.Err(), filename)
	}

	unified := root.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, FormatError(err, filename)
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, filename)
	}
	return &out, nil
}

// FormatError rewrites CUE errors as "<file>: <path>: <message>" lines so
// users can locate the offending field without reading CUE stack output.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}

	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		path := strings.Join(cueerrors.Path(e), ".")
		msg := strings.TrimSpace(strings.TrimPrefix(e.Error(), path+":"))
		if path != "" {
			lines = append(lines, path+": "+msg)
		} else {
			lines = append(lines, msg)
		}
	}
	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filename, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filename, strings.Join(lines, "\n  "))
}
