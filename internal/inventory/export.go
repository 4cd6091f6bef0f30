// SPDX-License-Identifier: MPL-2.0

package inventory

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"aboutgen-cli/pkg/aboutfile"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FormatCSV is the spreadsheet inventory format.
	FormatCSV Format = "csv"
	// FormatJSON is the machine-readable inventory format.
	FormatJSON Format = "json"
	// FormatYAML is the human-editable inventory format.
	FormatYAML Format = "yaml"
	// FormatTOML is the config-style inventory format.
	FormatTOML Format = "toml"
)

// LocationColumn is the synthetic column naming the descriptor file each row
// came from.
const LocationColumn = "about_file_path"

// Format identifies an inventory export format.
type Format string

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatCSV, FormatJSON, FormatYAML, FormatTOML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown inventory format %q (expected csv, json, yaml or toml)", name)
	}
}

// FieldColumns returns the export column layout for a collection: the
// location column, then the standard fields present in any descriptor in
// registry order, then custom fields sorted by name. The layout is
// deterministic for a given collection.
func FieldColumns(col *Collection) []string {
	present := make(map[string]bool)
	for _, d := range col.Descriptors {
		for _, name := range d.FieldNames() {
			present[name] = true
		}
	}

	reg := aboutfile.DefaultRegistry()
	columns := []string{LocationColumn}
	for _, name := range reg.Names() {
		if present[name] {
			columns = append(columns, name)
			delete(present, name)
		}
	}

	customs := make([]string, 0, len(present))
	for name := range present {
		customs = append(customs, name)
	}
	sort.Strings(customs)
	return append(columns, customs...)
}

// rows flattens the collection into one serialized map per descriptor.
func rows(col *Collection, columns []string) []map[string]string {
	out := make([]map[string]string, 0, col.Len())
	for _, d := range col.Descriptors {
		row := d.DumpFields(columns)
		row[LocationColumn] = d.Location
		out = append(out, row)
	}
	return out
}

// WriteCSV writes the collection as a CSV inventory with a header row,
// matching the spreadsheet round-trip the original descriptor workflows use.
func WriteCSV(w io.Writer, col *Collection) error {
	columns := FieldColumns(col)
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows(col, columns) {
		record := make([]string, len(columns))
		for i, name := range columns {
			record[i] = row[name]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the collection as an indented JSON array.
func WriteJSON(w io.Writer, col *Collection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows(col, FieldColumns(col)))
}

// WriteYAML writes the collection as a YAML sequence.
func WriteYAML(w io.Writer, col *Collection) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(rows(col, FieldColumns(col)))
}

// WriteTOML writes the collection as a TOML document with one [[component]]
// table per descriptor.
func WriteTOML(w io.Writer, col *Collection) error {
	doc := struct {
		Component []map[string]string `toml:"component"`
	}{Component: rows(col, FieldColumns(col))}
	return toml.NewEncoder(w).Encode(doc)
}

// Write dispatches to the named format writer.
func Write(w io.Writer, col *Collection, format Format) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, col)
	case FormatJSON:
		return WriteJSON(w, col)
	case FormatYAML:
		return WriteYAML(w, col)
	case FormatTOML:
		return WriteTOML(w, col)
	default:
		return fmt.Errorf("unknown inventory format %q", format)
	}
}
