// SPDX-License-Identifier: MPL-2.0

package aboutfile

import (
	"strings"
	"testing"
)

func TestParse_SimpleFields(t *testing.T) {
	t.Parallel()

	text := "name: zlib\nversion: 1.2.8\nlicense: zlib\n"
	entry, errs := Parse(text)

	if len(errs) != 0 {
		t.Fatalf("Parse() returned unexpected errors: %v", errs)
	}
	want := []Occurrence{
		{Key: "name", Value: "zlib", Line: 1},
		{Key: "version", Value: "1.2.8", Line: 2},
		{Key: "license", Value: "zlib", Line: 3},
	}
	if len(entry.Occurrences) != len(want) {
		t.Fatalf("Parse() produced %d occurrences, want %d", len(entry.Occurrences), len(want))
	}
	for i, occ := range entry.Occurrences {
		if occ != want[i] {
			t.Errorf("occurrence %d = %+v, want %+v", i, occ, want[i])
		}
	}
}

func TestParse_OneOccurrencePerLineInInputOrder(t *testing.T) {
	t.Parallel()

	lines := []string{"b: 2", "a: 1", "c: 3", "a: 4"}
	entry, errs := Parse(strings.Join(lines, "\n"))

	if len(errs) != 0 {
		t.Fatalf("Parse() returned unexpected errors: %v", errs)
	}
	if len(entry.Occurrences) != len(lines) {
		t.Fatalf("Parse() produced %d occurrences, want %d", len(entry.Occurrences), len(lines))
	}
	wantKeys := []string{"b", "a", "c", "a"}
	for i, occ := range entry.Occurrences {
		if occ.Key != wantKeys[i] {
			t.Errorf("occurrence %d key = %q, want %q", i, occ.Key, wantKeys[i])
		}
	}
}

func TestParse_Continuations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "single continuation",
			text: "description: first\n second\n",
			want: "first\nsecond",
		},
		{
			name: "tab continuation",
			text: "description: first\n\tsecond\n",
			want: "first\nsecond",
		},
		{
			name: "empty inline value with continuations",
			text: "description:\n first\n second\n",
			want: "\nfirst\nsecond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			entry, errs := Parse(tt.text)
			if len(errs) != 0 {
				t.Fatalf("Parse() returned unexpected errors: %v", errs)
			}
			if len(entry.Occurrences) != 1 {
				t.Fatalf("Parse() produced %d occurrences, want 1", len(entry.Occurrences))
			}
			if got := entry.Occurrences[0].Value; got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_CommentsAndBlanks(t *testing.T) {
	t.Parallel()

	text := "# header comment\n\nname: zlib\n# not a continuation\nversion: 1.2.8\n\n"
	entry, errs := Parse(text)

	if len(errs) != 0 {
		t.Fatalf("Parse() returned unexpected errors: %v", errs)
	}
	if len(entry.Occurrences) != 2 {
		t.Fatalf("Parse() produced %d occurrences, want 2", len(entry.Occurrences))
	}
	if entry.Occurrences[0].Value != "zlib" || entry.Occurrences[1].Value != "1.2.8" {
		t.Errorf("comment lines leaked into values: %+v", entry.Occurrences)
	}
}

func TestParse_BlankLineClosesField(t *testing.T) {
	t.Parallel()

	// a continuation after a blank line has no field to continue
	text := "description: first\n\n second\n"
	entry, errs := Parse(text)

	if len(errs) != 1 {
		t.Fatalf("Parse() returned %d errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Line != 3 {
		t.Errorf("error line = %d, want 3", errs[0].Line)
	}
	if got := entry.Occurrences[0].Value; got != "first" {
		t.Errorf("value = %q, want %q", got, "first")
	}
}

func TestParse_InvalidLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		wantErrs int
		wantOccs int
	}{
		{"continuation before any field", " orphan\nname: zlib\n", 1, 1},
		{"garbage line", "name: zlib\n!!!\nversion: 1\n", 1, 2},
		{"key starting with digit", "1name: x\n", 1, 0},
		{"colon missing", "just some text\n", 1, 0},
		{"empty input", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			entry, errs := Parse(tt.text)
			if len(errs) != tt.wantErrs {
				t.Errorf("Parse() returned %d errors, want %d: %v", len(errs), tt.wantErrs, errs)
			}
			if len(entry.Occurrences) != tt.wantOccs {
				t.Errorf("Parse() produced %d occurrences, want %d", len(entry.Occurrences), tt.wantOccs)
			}
		})
	}
}

func TestParse_KeysNormalizedToLowercase(t *testing.T) {
	t.Parallel()

	entry, errs := Parse("Name: zlib\nLICENSE: zlib\n")
	if len(errs) != 0 {
		t.Fatalf("Parse() returned unexpected errors: %v", errs)
	}
	if entry.Occurrences[0].Key != "name" || entry.Occurrences[1].Key != "license" {
		t.Errorf("keys not normalized: %+v", entry.Occurrences)
	}
}

func TestParse_CRLFInput(t *testing.T) {
	t.Parallel()

	entry, errs := Parse("name: zlib\r\nversion: 1.2.8\r\n")
	if len(errs) != 0 {
		t.Fatalf("Parse() returned unexpected errors: %v", errs)
	}
	if entry.Occurrences[0].Value != "zlib" || entry.Occurrences[1].Value != "1.2.8" {
		t.Errorf("CR not stripped from values: %+v", entry.Occurrences)
	}
}
