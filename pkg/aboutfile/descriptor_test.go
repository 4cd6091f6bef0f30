// SPDX-License-Identifier: MPL-2.0

package aboutfile

import (
	"strings"
	"testing"
)

// buildFromText is a test helper running the full parse+build pipeline with
// an exists predicate that reports every path as present.
func buildFromText(t *testing.T, text string) *Descriptor {
	t.Helper()
	entry, parseErrs := Parse(text)
	return Build(entry, parseErrs, "test.about", "testdata", BuildOptions{
		Exists: func(baseDir, rel string) bool { return true },
	})
}

const validText = "about_resource: zlib.tar.gz\nname: zlib\nversion: 1.2.8\nlicense: zlib\nlicense_file: zlib.LICENSE\n"

func TestBuild_ValidDescriptor(t *testing.T) {
	t.Parallel()

	d := buildFromText(t, validText)

	if !d.Valid() {
		t.Fatalf("Valid() = false, errors: %v", d.Errors)
	}
	if len(d.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", d.Warnings)
	}
	if got := d.String("name"); got != "zlib" {
		t.Errorf("name = %q, want %q", got, "zlib")
	}
	if got := d.ComponentID(); got != "zlib 1.2.8" {
		t.Errorf("ComponentID() = %q, want %q", got, "zlib 1.2.8")
	}
	if got := d.LicenseKey(); got != "zlib" {
		t.Errorf("LicenseKey() = %q, want %q", got, "zlib")
	}
	refs := d.PathRefs("license_file")
	if len(refs) != 1 {
		t.Fatalf("PathRefs(license_file) = %v, want one entry", refs)
	}
	if refs[0].Resolved != "testdata/zlib.LICENSE" || !refs[0].Exists {
		t.Errorf("license_file ref = %+v, want resolved under testdata and existing", refs[0])
	}
}

func TestBuild_DuplicateKeyLastWinsWithWarning(t *testing.T) {
	t.Parallel()

	d := buildFromText(t, validText+"version: 2.0\n")

	if got := d.String("version"); got != "2.0" {
		t.Errorf("version = %q, want last occurrence %q", got, "2.0")
	}
	var dups []Problem
	for _, w := range d.Warnings {
		if w.Code == CodeDuplicateKey {
			dups = append(dups, w)
		}
	}
	if len(dups) != 1 {
		t.Fatalf("duplicate warnings = %v, want exactly one", dups)
	}
	if !strings.Contains(dups[0].Message, "1.2.8") {
		t.Errorf("warning should reference the discarded value, got: %s", dups[0].Message)
	}
	if dups[0].Field != "version" {
		t.Errorf("warning field = %q, want %q", dups[0].Field, "version")
	}
}

func TestBuild_MissingRequiredField(t *testing.T) {
	t.Parallel()

	d := buildFromText(t, "about_resource: zlib.tar.gz\nversion: 1.2.8\n")

	if d.Valid() {
		t.Fatal("Valid() = true for a descriptor missing the name field")
	}
	found := false
	for _, e := range d.Errors {
		if e.Code == CodeRequiredField && e.Field == "name" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors should contain a required-field error for name, got: %v", d.Errors)
	}
}

func TestBuild_RequiredFieldEmpty(t *testing.T) {
	t.Parallel()

	d := buildFromText(t, "about_resource: zlib.tar.gz\nname:\n")

	if d.Valid() {
		t.Fatal("Valid() = true for a descriptor with an empty required field")
	}
	if _, ok := d.Field("name"); ok {
		t.Error("empty required field should not store a value")
	}
}

func TestBuild_FieldTypeErrorLeavesNoValue(t *testing.T) {
	t.Parallel()

	d := buildFromText(t, validText+"modified: maybe\n")

	if d.Valid() {
		t.Fatal("Valid() = true despite a boolean coercion failure")
	}
	if _, ok := d.Field("modified"); ok {
		t.Error("failed coercion should leave the field without a value")
	}
	found := false
	for _, e := range d.Errors {
		if e.Code == CodeFieldType && e.Field == "modified" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors should contain a field-type error for modified, got: %v", d.Errors)
	}
}

func TestBuild_DefaultAppliesOnCoercionFailure(t *testing.T) {
	t.Parallel()

	reg := NewRegistry(
		FieldSpec{Name: "name", Type: TypeString, Required: true},
		FieldSpec{Name: "redistribute", Type: TypeBoolean, Default: "no"},
	)
	entry, parseErrs := Parse("name: zlib\nredistribute: maybe\n")
	d := Build(entry, parseErrs, "test.about", "", BuildOptions{Registry: reg})

	v, ok := d.Flag("redistribute")
	if !ok {
		t.Fatal("redistribute should carry its default value after coercion failure")
	}
	if v {
		t.Errorf("redistribute = true, want default false")
	}
	if d.Valid() {
		t.Error("coercion failure must still be recorded as an error")
	}
}

func TestBuild_UnknownFieldIsWarning(t *testing.T) {
	t.Parallel()

	d := buildFromText(t, validText+"my_notes: something custom\n")

	if !d.Valid() {
		t.Fatalf("unknown fields must not invalidate the descriptor, errors: %v", d.Errors)
	}
	found := false
	for _, w := range d.Warnings {
		if w.Code == CodeUnknownField && w.Field == "my_notes" {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings should contain an unknown-field entry, got: %v", d.Warnings)
	}
	if got := d.String("my_notes"); got != "something custom" {
		t.Errorf("custom field value = %q, want %q", got, "something custom")
	}
}

func TestBuild_MissingPathIsWarningNotError(t *testing.T) {
	t.Parallel()

	entry, parseErrs := Parse(validText)
	d := Build(entry, parseErrs, "test.about", "testdata", BuildOptions{
		Exists: func(baseDir, rel string) bool { return false },
	})

	if !d.Valid() {
		t.Fatalf("missing path targets must not invalidate the descriptor, errors: %v", d.Errors)
	}
	found := false
	for _, w := range d.Warnings {
		if w.Code == CodeReference {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings should contain reference warnings, got: %v", d.Warnings)
	}
	for _, ref := range d.PathRefs("about_resource") {
		if ref.Exists {
			t.Errorf("ref %+v reported existing despite the predicate", ref)
		}
	}
}

func TestBuild_NilExistsPredicateWarns(t *testing.T) {
	t.Parallel()

	entry, parseErrs := Parse(validText)
	d := Build(entry, parseErrs, "test.about", "testdata", BuildOptions{})

	if !d.Valid() {
		t.Fatalf("unverifiable paths must not invalidate the descriptor, errors: %v", d.Errors)
	}
	var warned int
	for _, w := range d.Warnings {
		if w.Code == CodeReference {
			warned++
		}
	}
	// about_resource and license_file
	if warned != 2 {
		t.Errorf("reference warnings = %d, want 2: %v", warned, d.Warnings)
	}
}

func TestBuild_ParseErrorsBecomeDescriptorErrors(t *testing.T) {
	t.Parallel()

	d := buildFromText(t, "garbage without colon\n"+validText)

	if d.Valid() {
		t.Fatal("Valid() = true despite a parse error")
	}
	if d.Errors[0].Code != CodeParse {
		t.Errorf("first error code = %q, want %q", d.Errors[0].Code, CodeParse)
	}
}

func TestBuild_ListOfURLsDropsInvalidElements(t *testing.T) {
	t.Parallel()

	d := buildFromText(t, validText+"license_url: http://zlib.net/zlib_license.html, not-a-url\n")

	urls := d.List("license_url")
	if len(urls) != 1 || urls[0] != "http://zlib.net/zlib_license.html" {
		t.Errorf("license_url = %v, want only the valid element", urls)
	}
	if d.Valid() {
		t.Error("invalid URL element must be recorded as an error")
	}
}

func TestBuild_EmptyOptionalFieldIsWarning(t *testing.T) {
	t.Parallel()

	d := buildFromText(t, validText+"notes:\n")

	if !d.Valid() {
		t.Fatalf("empty optional fields must not invalidate the descriptor, errors: %v", d.Errors)
	}
	found := false
	for _, w := range d.Warnings {
		if w.Code == CodeEmptyField && w.Field == "notes" {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings should contain an empty-field entry, got: %v", d.Warnings)
	}
}
