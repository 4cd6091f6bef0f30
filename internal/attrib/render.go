// SPDX-License-Identifier: MPL-2.0

package attrib

import (
	_ "embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"

	"github.com/charmbracelet/glamour"
)

const (
	// DocHTML renders the attribution document as a standalone HTML page.
	DocHTML DocFormat = "html"
	// DocMarkdown renders the attribution document as Markdown.
	DocMarkdown DocFormat = "markdown"
	// DocText renders the attribution document as plain text.
	DocText DocFormat = "text"
)

var (
	//go:embed templates/attribution.html.tmpl
	htmlTemplate string
	//go:embed templates/attribution.md.tmpl
	markdownTemplate string
	//go:embed templates/attribution.txt.tmpl
	textTemplate string
)

type (
	// DocFormat identifies an attribution document format.
	DocFormat string

	// Document is the template payload. It carries no timestamps or other
	// run-dependent data so repeated runs over unchanged input produce
	// byte-identical documents.
	Document struct {
		// Entries are the deduplicated license groups, already ordered.
		Entries []Entry
		// Digest is the canonical content digest of Entries.
		Digest string
	}
)

// ParseDocFormat validates a document format name.
func ParseDocFormat(name string) (DocFormat, error) {
	switch DocFormat(name) {
	case DocHTML, DocMarkdown, DocText:
		return DocFormat(name), nil
	default:
		return "", fmt.Errorf("unknown attribution format %q (expected html, markdown or text)", name)
	}
}

// NewDocument bundles entries with their content digest.
func NewDocument(entries []Entry) (Document, error) {
	digest, err := Digest(entries)
	if err != nil {
		return Document{}, err
	}
	return Document{Entries: entries, Digest: digest}, nil
}

// Render writes the attribution document in the requested format. HTML goes
// through html/template so license texts are escaped; markdown and text use
// text/template verbatim.
func Render(w io.Writer, doc Document, format DocFormat) error {
	switch format {
	case DocHTML:
		tmpl, err := htmltemplate.New("attribution").Parse(htmlTemplate)
		if err != nil {
			return fmt.Errorf("internal error: html template: %w", err)
		}
		return tmpl.Execute(w, doc)
	case DocMarkdown, DocText:
		src := markdownTemplate
		if format == DocText {
			src = textTemplate
		}
		tmpl, err := texttemplate.New("attribution").Funcs(texttemplate.FuncMap{
			"indent": indent,
		}).Parse(src)
		if err != nil {
			return fmt.Errorf("internal error: %s template: %w", format, err)
		}
		return tmpl.Execute(w, doc)
	default:
		return fmt.Errorf("unknown attribution format %q", format)
	}
}

// Preview renders the markdown document through glamour for terminal
// display.
func Preview(doc Document) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, doc, DocMarkdown); err != nil {
		return "", err
	}
	out, err := glamour.Render(sb.String(), "auto")
	if err != nil {
		return "", fmt.Errorf("failed to render attribution preview: %w", err)
	}
	return out, nil
}

// indent prefixes every line of s with the given prefix. Used by the
// markdown template to keep license texts inside a block quote.
func indent(prefix, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
