// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSVInventory(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing csv inventory: %v", err)
	}
	return path
}

func TestRunGen_CreatesDescriptors(t *testing.T) {
	// Not parallel: reads package-level flag vars.
	csvPath := writeCSVInventory(t,
		"about_file_path,about_resource,name,version\n"+
			"zlib/zlib.about,.,zlib,1.2.8\n")
	target := t.TempDir()

	if err := runGen(genCmd, []string{csvPath, target}); err != nil {
		t.Fatalf("runGen() returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(target, "zlib", "zlib.about"))
	if err != nil {
		t.Fatalf("generated descriptor missing: %v", err)
	}
	if !strings.Contains(string(data), "name: zlib") {
		t.Errorf("generated descriptor missing name field:\n%s", data)
	}
}

func TestRunGen_InvalidRowsExitNonzero(t *testing.T) {
	// Not parallel: reads package-level flag vars.
	csvPath := writeCSVInventory(t,
		"about_file_path,about_resource,name\n"+
			"bad.about,.,\n") // missing required name
	target := t.TempDir()

	err := runGen(genCmd, []string{csvPath, target})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Fatalf("runGen() error = %v, want *ExitError with code 1", err)
	}
	if _, statErr := os.Stat(filepath.Join(target, "bad.about")); statErr == nil {
		t.Error("invalid row was written to disk")
	}
}

func TestRunGen_MissingInventoryFile(t *testing.T) {
	t.Parallel()

	err := runGen(genCmd, []string{filepath.Join(t.TempDir(), "nope.csv"), t.TempDir()})
	if err == nil {
		t.Fatal("runGen() succeeded with a missing inventory file")
	}
}
