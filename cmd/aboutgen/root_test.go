// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"aboutgen-cli/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev fallback", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	actionable := issue.NewContext().
		WithOperation("load configuration").
		WithSuggestion("Check the file syntax").
		BuildError()
	got := formatErrorForDisplay(actionable, false)
	if !strings.Contains(got, "Check the file syntax") {
		t.Errorf("formatErrorForDisplay(actionable) should include suggestions, got %q", got)
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	inner := errors.New("two descriptors invalid")
	err := &ExitError{Code: 1, Err: inner}
	if err.Error() != inner.Error() {
		t.Errorf("Error() = %q, want wrapped message", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is() should reach the wrapped error")
	}

	bare := &ExitError{Code: 3}
	if bare.Error() != "exit status 3" {
		t.Errorf("bare Error() = %q", bare.Error())
	}
}
