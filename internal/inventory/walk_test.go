// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"os"
	"path/filepath"
	"testing"
)

// writeDescriptor writes a minimal valid descriptor plus its documented
// resource file under dir.
func writeDescriptor(t *testing.T, dir, name string) string {
	t.Helper()
	resource := name + ".tar.gz"
	text := "about_resource: " + resource + "\nname: " + name + "\n"
	path := filepath.Join(dir, name+".about")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, resource), []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCollectAndLoad_WalksTree(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sub := filepath.Join(root, "thirdparty", "zlib")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeDescriptor(t, root, "alpha")
	writeDescriptor(t, sub, "zlib")
	writeDescriptor(t, sub, "beta")
	// a dangling symlink produces a read failure, not a dropped file
	if err := os.Symlink(filepath.Join(root, "nowhere"), filepath.Join(root, "broken.about")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	col, diags := CollectAndLoad(root)

	if col.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 readable descriptors", col.Len())
	}
	if len(col.Failures) != 1 {
		t.Fatalf("failure ledger = %v, want one entry for the broken symlink", col.Failures)
	}
	for _, d := range col.Descriptors {
		if !d.Valid() {
			t.Errorf("%s: unexpected errors: %v", d.Location, d.Errors)
		}
		for _, w := range d.Warnings {
			t.Errorf("%s: unexpected warning: %v", d.Location, w)
		}
	}
	for _, diag := range diags {
		t.Errorf("unexpected diagnostic: %+v", diag)
	}
}

func TestCollectSources_SingleFileRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeDescriptor(t, dir, "solo")

	sources, diags := CollectSources(path)
	if len(sources) != 1 || sources[0].Location != path {
		t.Fatalf("CollectSources(%s) = %v, want the file itself", path, sources)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if sources[0].BaseDir != dir {
		t.Errorf("BaseDir = %q, want %q", sources[0].BaseDir, dir)
	}
}

func TestCollectSources_MissingRoot(t *testing.T) {
	t.Parallel()

	sources, diags := CollectSources(filepath.Join(t.TempDir(), "nope"))
	if len(sources) != 0 {
		t.Errorf("sources = %v, want none", sources)
	}
	if len(diags) != 1 || diags[0].Code != CodeWalkFailed || diags[0].Severity != SeverityError {
		t.Fatalf("diags = %+v, want a single walk_failed error", diags)
	}
}

func TestCollectSources_EmptyTreeWarns(t *testing.T) {
	t.Parallel()

	sources, diags := CollectSources(t.TempDir())
	if len(sources) != 0 {
		t.Errorf("sources = %v, want none", sources)
	}
	found := false
	for _, d := range diags {
		if d.Code == CodeNoDescriptors && d.Severity == SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Errorf("diags = %+v, want a no_descriptors_found warning", diags)
	}
}

func TestIsDescriptorPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"zlib.about", true},
		{"zlib.ABOUT", true},
		{"dir/Zlib.About", true},
		{"zlib.txt", false},
		{"about", false},
		{"zlib.about.bak", false},
	}
	for _, tt := range tests {
		if got := IsDescriptorPath(tt.path); got != tt.want {
			t.Errorf("IsDescriptorPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "present.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !Exists(dir, "present.txt") {
		t.Error("Exists() = false for a present file")
	}
	if Exists(dir, "absent.txt") {
		t.Error("Exists() = true for an absent file")
	}
}
