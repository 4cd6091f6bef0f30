// SPDX-License-Identifier: MPL-2.0

package aboutfile

import "strings"

// Dump serializes the descriptor back into .about text. Fields appear in
// input order, continuation lines carry a single leading space, and typed
// values are formatted through their field specs, so the output parses back
// into a semantically equivalent descriptor (not a byte-identical one).
func (d *Descriptor) Dump() string {
	var sb strings.Builder
	for _, name := range d.order {
		v := d.fields[name]
		formatted := d.reg.Resolve(name).Format(v)

		lines := strings.Split(formatted, "\n")
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(lines[0])
		sb.WriteString("\n")
		for _, cont := range lines[1:] {
			sb.WriteString(" ")
			sb.WriteString(cont)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// FormatField serializes a single field value back to its raw text form, or
// "" when the field is unset.
func (d *Descriptor) FormatField(name string) string {
	v, ok := d.fields[name]
	if !ok {
		return ""
	}
	return d.reg.Resolve(name).Format(v)
}

// DumpFields serializes a subset of fields in the given order, skipping
// names the descriptor does not carry. Used by inventory export to emit a
// stable column layout.
func (d *Descriptor) DumpFields(names []string) map[string]string {
	out := make(map[string]string, len(names))
	for _, name := range names {
		v, ok := d.fields[name]
		if !ok {
			continue
		}
		out[name] = d.reg.Resolve(name).Format(v)
	}
	return out
}
