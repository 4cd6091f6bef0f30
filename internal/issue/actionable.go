// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is an error with context for user-facing messages:
	// what operation failed, what resource was involved, and how the user
	// might fix it. Build instances through the Context builder:
	//
	//	err := issue.NewContext().
	//		WithOperation("load descriptor inventory").
	//		WithResource(root).
	//		WithSuggestion("Check that the directory contains .about files").
	//		Wrap(cause).
	//		BuildError()
	ActionableError struct {
		// Operation is a verb phrase describing what was attempted.
		Operation string
		// Resource identifies the file, path, or entity involved (optional).
		Resource string
		// Suggestions are hints on how to fix the issue (optional).
		Suggestions []string
		// Cause is the underlying error (optional).
		Cause error
	}

	// Context is a fluent builder for ActionableError.
	Context struct {
		err ActionableError
	}
)

// NewContext creates an empty ActionableError builder.
func NewContext() *Context {
	return &Context{}
}

// WithOperation sets the operation being performed.
func (c *Context) WithOperation(op string) *Context {
	c.err.Operation = op
	return c
}

// WithResource sets the resource involved.
func (c *Context) WithResource(res string) *Context {
	c.err.Resource = res
	return c
}

// WithSuggestion appends one fix suggestion. May be called repeatedly.
func (c *Context) WithSuggestion(s string) *Context {
	c.err.Suggestions = append(c.err.Suggestions, s)
	return c
}

// Wrap sets the underlying cause.
func (c *Context) Wrap(err error) *Context {
	c.err.Cause = err
	return c
}

// Build returns the constructed ActionableError.
func (c *Context) Build() *ActionableError {
	e := c.err
	return &e
}

// BuildError returns the constructed error as a plain error value.
func (c *Context) BuildError() error {
	return c.Build()
}

// Error implements the error interface with a concise single-line message.
func (e *ActionableError) Error() string {
	var sb strings.Builder
	sb.WriteString("failed to ")
	sb.WriteString(e.Operation)
	if e.Resource != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Resource)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the user-facing rendering: the message, suggestion bullets,
// and — in verbose mode — the full unwrapped error chain.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		sb.WriteString("\n")
		for _, s := range e.Suggestions {
			sb.WriteString("\n  • ")
			sb.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		sb.WriteString("\n\nError chain:")
		depth := 1
		for err := e.Cause; err != nil; err = errors.Unwrap(err) {
			fmt.Fprintf(&sb, "\n  %d. %s", depth, err.Error())
			depth++
		}
	}
	return sb.String()
}
