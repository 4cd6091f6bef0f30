// SPDX-License-Identifier: MPL-2.0

package inventory

const (
	// SeverityWarning indicates a recoverable collection warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal collection error diagnostic.
	SeverityError Severity = "error"
)

const (
	// CodeWalkFailed indicates a directory could not be traversed.
	CodeWalkFailed DiagnosticCode = "walk_failed"
	// CodeNoDescriptors indicates a walk found no .about files at all.
	CodeNoDescriptors DiagnosticCode = "no_descriptors_found"
	// CodeDuplicateLocation indicates two descriptor files differ only by
	// name casing, which collides on case-insensitive filesystems.
	CodeDuplicateLocation DiagnosticCode = "duplicate_location"
)

type (
	// Severity represents collection diagnostic severity.
	Severity string

	// DiagnosticCode is a machine-readable identifier for a collection
	// diagnostic.
	DiagnosticCode string

	// Diagnostic represents a structured collection diagnostic that is
	// returned to callers (rather than written to stderr) for consistent
	// rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is the machine-readable identifier.
		Code DiagnosticCode
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)
