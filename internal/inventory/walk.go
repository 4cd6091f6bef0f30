// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"aboutgen-cli/pkg/aboutfile"
)

// DescriptorSuffix is the file name suffix identifying descriptor files,
// matched case-insensitively (.about, .ABOUT, ...).
const DescriptorSuffix = ".about"

// IsDescriptorPath reports whether path names a descriptor file.
func IsDescriptorPath(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), DescriptorSuffix)
}

// CollectSources walks root and returns one Source per descriptor file found,
// in deterministic (lexical walk) order. Unreadable files still produce a
// Source carrying the read error so loading records them in the failure
// ledger rather than dropping them. Traversal problems surface as
// diagnostics, never as a fatal error: a partially readable tree still
// yields the descriptors it can.
//
// When root itself names a descriptor file, it is the single source.
func CollectSources(root string) ([]Source, []Diagnostic) {
	var (
		sources []Source
		diags   []Diagnostic
	)

	info, err := os.Stat(root)
	switch {
	case err != nil:
		return nil, []Diagnostic{{
			Severity: SeverityError, Code: CodeWalkFailed, Path: root,
			Message: fmt.Sprintf("cannot stat %s", root), Cause: err,
		}}
	case !info.IsDir():
		if !IsDescriptorPath(root) {
			return nil, []Diagnostic{{
				Severity: SeverityError, Code: CodeWalkFailed, Path: root,
				Message: fmt.Sprintf("%s is not a directory or %s file", root, DescriptorSuffix),
			}}
		}
		return []Source{readSource(root)}, nil
	}

	seen := make(map[string]string)
	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning, Code: CodeWalkFailed, Path: path,
				Message: "skipping unreadable directory entry", Cause: err,
			})
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() || !IsDescriptorPath(path) {
			return nil
		}
		// descriptor names that differ only by case collide on
		// case-insensitive filesystems
		lower := strings.ToLower(path)
		if prev, dup := seen[lower]; dup {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning, Code: CodeDuplicateLocation, Path: path,
				Message: fmt.Sprintf("file name differs only by case from %s", prev),
			})
		}
		seen[lower] = path

		slog.Debug("found descriptor", "path", path)
		sources = append(sources, readSource(path))
		return nil
	})
	if walkErr != nil {
		diags = append(diags, Diagnostic{
			Severity: SeverityError, Code: CodeWalkFailed, Path: root,
			Message: "directory walk aborted", Cause: walkErr,
		})
	}

	if len(sources) == 0 {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning, Code: CodeNoDescriptors, Path: root,
			Message: fmt.Sprintf("no %s files found under %s", DescriptorSuffix, root),
		})
	}
	return sources, diags
}

// readSource reads one descriptor file into a Source, capturing read
// failures on the Source itself.
func readSource(path string) Source {
	src := Source{Location: path, BaseDir: filepath.Dir(path)}
	data, err := os.ReadFile(path)
	if err != nil {
		src.Err = err
		return src
	}
	src.Text = string(data)
	return src
}

// Exists is the filesystem implementation of the descriptor path predicate.
func Exists(baseDir, rel string) bool {
	_, err := os.Stat(filepath.Join(baseDir, filepath.FromSlash(rel)))
	return err == nil
}

// LoadText reads the file behind a resolved path reference. Used by the
// attribution aggregator to obtain license and notice texts; the aboutfile
// core never opens files itself.
func LoadText(ref aboutfile.PathRef) (string, error) {
	if ref.Resolved == "" {
		return "", fmt.Errorf("path %q was never resolved against a base directory", ref.Rel)
	}
	data, err := os.ReadFile(filepath.FromSlash(ref.Resolved))
	if err != nil {
		return "", fmt.Errorf("failed to load text at %s: %w", ref.Resolved, err)
	}
	return string(data), nil
}

// CollectAndLoad is the convenience pipeline used by the CLI: walk root,
// load every descriptor with filesystem-backed path verification, and
// return the collection plus traversal diagnostics.
func CollectAndLoad(root string) (*Collection, []Diagnostic) {
	sources, diags := CollectSources(root)
	col := Load(sources, Options{Exists: Exists})
	return col, diags
}
