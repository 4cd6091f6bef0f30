// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"aboutgen-cli/internal/inventory"
)

func writeDescriptor(t *testing.T, dir, name, text string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
		t.Fatalf("writing descriptor: %v", err)
	}
}

func TestLoadCollection(t *testing.T) {
	// Not parallel: loadCollection reads the package-level verbose flag var.
	dir := t.TempDir()
	writeDescriptor(t, dir, "a.about", "about_resource: .\nname: alpha\n")
	writeDescriptor(t, dir, "b.about", "name: beta\n") // missing about_resource

	col, err := loadCollection(dir)
	if err != nil {
		t.Fatalf("loadCollection() returned error: %v", err)
	}
	if col.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", col.Len())
	}
	if got := len(col.Valid()); got != 1 {
		t.Errorf("Valid() = %d descriptors, want 1", got)
	}
}

func TestLoadCollection_EmptyDirExitsNonzero(t *testing.T) {
	_, err := loadCollection(t.TempDir())
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("loadCollection() error = %v, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
}

func TestTargetRoot(t *testing.T) {
	t.Parallel()

	if got := targetRoot(nil); got != "." {
		t.Errorf("targetRoot(nil) = %q, want %q", got, ".")
	}
	if got := targetRoot([]string{"thirdparty"}); got != "thirdparty" {
		t.Errorf("targetRoot() = %q, want %q", got, "thirdparty")
	}
}

func TestStrictExit(t *testing.T) {
	// Not parallel: mutates the package-level strict flag var.
	origStrict := strict
	t.Cleanup(func() { strict = origStrict })

	invalid := &inventory.Collection{
		Failures: []inventory.Failure{{Location: "x.about", Err: errors.New("unreadable")}},
	}

	strict = false
	if err := strictExit(invalid); err != nil {
		t.Errorf("strictExit() = %v without strict mode, want nil", err)
	}

	strict = true
	err := strictExit(invalid)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Errorf("strictExit() = %v in strict mode, want *ExitError with code 1", err)
	}

	clean := &inventory.Collection{}
	if err := strictExit(clean); err != nil {
		t.Errorf("strictExit(clean) = %v, want nil", err)
	}
}
