// SPDX-License-Identifier: MPL-2.0

package aboutfile

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// CommentMarker starts a comment line. Comment lines are skipped and
	// never continue a field.
	CommentMarker = "#"
)

type (
	// Occurrence is one key/value pair exactly as encountered in the source
	// text. Duplicate keys are preserved in input order; the duplicate
	// policy (last wins, prior occurrences warned) is applied at descriptor
	// build time, never here.
	Occurrence struct {
		// Key is the field name, normalized to lowercase.
		Key string
		// Value is the raw value with continuation lines joined by newlines.
		Value string
		// Line is the 1-based line number of the key line.
		Line int
	}

	// RawEntry is the ordered parse result of one descriptor file.
	RawEntry struct {
		Occurrences []Occurrence
	}

	// LineError records a line that could not be classified as a field
	// start, continuation, comment or blank line. Parsing continues past it.
	LineError struct {
		// Line is the 1-based line number.
		Line int
		// Text is the offending line without its trailing newline.
		Text string
		// Message describes why the line was rejected.
		Message string
	}
)

// Error implements the error interface.
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Text)
}

// fieldLine matches a field start: a name of letters, digits, underscores or
// dashes beginning with a letter, a colon, and an optional inline value.
var fieldLine = regexp.MustCompile(`^([A-Za-z][0-9A-Za-z_-]*)\s*:\s?(.*)$`)

// Parse turns descriptor text into a RawEntry. Parsing is best-effort and
// total: it always returns an entry (possibly with zero occurrences) plus a
// list of per-line errors, and never aborts on malformed input.
//
// Grammar: a non-blank, non-comment line either starts a field as
// "key: value" (the inline value may be empty), or continues the previous
// field's value when it begins with a space or tab. Blank lines close the
// field being accumulated, so a continuation may only follow a field line or
// another continuation.
func Parse(text string) (RawEntry, []LineError) {
	var (
		entry  RawEntry
		errs   []LineError
		cur    *Occurrence
		values []string
	)

	flush := func() {
		if cur == nil {
			return
		}
		cur.Value = strings.Join(values, "\n")
		entry.Occurrences = append(entry.Occurrences, *cur)
		cur, values = nil, nil
	}

	for num, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")

		switch {
		case strings.HasPrefix(line, CommentMarker):
			// skipped, never a continuation

		case strings.TrimSpace(line) == "":
			flush()

		case line[0] == ' ' || line[0] == '\t':
			if cur == nil {
				errs = append(errs, LineError{
					Line:    num + 1,
					Text:    line,
					Message: "continuation line without a preceding field",
				})
				continue
			}
			values = append(values, strings.TrimSpace(line))

		default:
			m := fieldLine.FindStringSubmatch(line)
			if m == nil {
				errs = append(errs, LineError{
					Line:    num + 1,
					Text:    line,
					Message: "line is neither a field nor a continuation",
				})
				continue
			}
			flush()
			cur = &Occurrence{Key: strings.ToLower(m[1]), Line: num + 1}
			values = []string{strings.TrimRight(m[2], " \t")}
		}
	}
	flush()

	return entry, errs
}
