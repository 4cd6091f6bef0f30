// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"aboutgen-cli/pkg/aboutfile"
)

// GenerateOptions configures descriptor generation from inventory rows.
type GenerateOptions struct {
	// Registry is the field table used to validate generated descriptors.
	// The zero value falls back to the default table.
	Registry aboutfile.Registry
	// Exists is the path predicate for reference checking, as in Options.
	Exists aboutfile.ExistsFunc
	// Force overwrites descriptor files that already exist.
	Force bool
}

// ReadCSV parses an inventory spreadsheet into one field map per row. The
// header row names the fields; header names are case-insensitive and must
// include the location column. Empty cells are omitted from the row maps.
// This is the reverse of WriteCSV.
func ReadCSV(r io.Reader) ([]map[string]string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv inventory: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv inventory has no header row")
	}

	header := make([]string, len(records[0]))
	hasLocation := false
	for i, name := range records[0] {
		header[i] = strings.ToLower(strings.TrimSpace(name))
		if header[i] == LocationColumn {
			hasLocation = true
		}
	}
	if !hasLocation {
		return nil, fmt.Errorf("csv inventory has no %q column", LocationColumn)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(record))
		for i, cell := range record {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Generate writes one descriptor file under root per inventory row, the
// reverse of the export direction. Each row becomes a Descriptor built from
// its fields; only valid descriptors are written. The returned collection
// follows the usual ledger invariant over the rows: a row ends up either as
// a descriptor (written, or invalid and skipped) or as a ledger failure
// (unusable location, refused overwrite, write error). Nothing is dropped.
func Generate(root string, rows []map[string]string, opts GenerateOptions) *Collection {
	col := &Collection{}

	for i, row := range rows {
		rowID := fmt.Sprintf("row %d", i+2) // 1-based, after the header

		location, err := rowLocation(row)
		if err != nil {
			col.Failures = append(col.Failures, Failure{Location: rowID, Err: err})
			continue
		}

		target := filepath.Join(root, filepath.FromSlash(location))
		d := buildRowDescriptor(row, location, filepath.Dir(target), opts)
		if !d.Valid() {
			// reported through the descriptor's errors, nothing written
			col.Descriptors = append(col.Descriptors, d)
			continue
		}

		if err := writeDescriptorFile(target, d.Dump(), opts.Force); err != nil {
			col.Failures = append(col.Failures, Failure{Location: location, Err: err})
			continue
		}
		col.Descriptors = append(col.Descriptors, d)
	}
	return col
}

// rowLocation extracts and vets the descriptor path of one row. Locations
// are relative .about paths; anything escaping the target tree is refused.
func rowLocation(row map[string]string) (string, error) {
	location := strings.TrimSpace(row[LocationColumn])
	switch {
	case location == "":
		return "", fmt.Errorf("missing %s value", LocationColumn)
	case !IsDescriptorPath(location):
		return "", fmt.Errorf("%s %q does not end in %s", LocationColumn, location, DescriptorSuffix)
	case filepath.IsAbs(location) || strings.HasPrefix(filepath.ToSlash(filepath.Clean(location)), ".."):
		return "", fmt.Errorf("%s %q escapes the target directory", LocationColumn, location)
	}
	return location, nil
}

// buildRowDescriptor turns a row's fields into a Descriptor. Fields are laid
// out in registry order with customs sorted last, so generated files carry a
// stable field order regardless of the spreadsheet's column order.
func buildRowDescriptor(row map[string]string, location, baseDir string, opts GenerateOptions) *aboutfile.Descriptor {
	reg := opts.Registry
	if reg.Len() == 0 {
		reg = aboutfile.DefaultRegistry()
	}

	var raw aboutfile.RawEntry
	seen := make(map[string]bool, len(row))
	for _, name := range reg.Names() {
		if value, ok := row[name]; ok && name != LocationColumn {
			raw.Occurrences = append(raw.Occurrences, aboutfile.Occurrence{Key: name, Value: value})
			seen[name] = true
		}
	}
	customs := make([]string, 0, len(row))
	for name := range row {
		if !seen[name] && name != LocationColumn {
			customs = append(customs, name)
		}
	}
	sort.Strings(customs)
	for _, name := range customs {
		raw.Occurrences = append(raw.Occurrences, aboutfile.Occurrence{Key: name, Value: row[name]})
	}

	return aboutfile.Build(raw, nil, location, baseDir, aboutfile.BuildOptions{
		Registry: reg,
		Exists:   opts.Exists,
	})
}

func writeDescriptorFile(target, text string, force bool) error {
	if _, err := os.Stat(target); err == nil && !force {
		return fmt.Errorf("file already exists (use force to overwrite)")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write descriptor: %w", err)
	}
	return nil
}
