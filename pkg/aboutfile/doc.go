// SPDX-License-Identifier: MPL-2.0

// Package aboutfile implements the .about component descriptor format:
// parsing the key/value text grammar, coercing raw values into typed fields,
// and validating descriptors against the known field table.
//
// Parsing and validation are best-effort and total: malformed input never
// aborts a file, every problem is recorded as data on the smallest owning
// entity (line, field, or descriptor) and surfaced to callers for rendering.
package aboutfile
