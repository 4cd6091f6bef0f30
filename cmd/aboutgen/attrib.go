// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"aboutgen-cli/internal/attrib"
	"aboutgen-cli/internal/inventory"
	"aboutgen-cli/internal/issue"

	"github.com/spf13/cobra"
)

var (
	attribFormat  string
	attribOutput  string
	attribPreview bool

	// attribCmd generates an attribution document from the descriptors
	// found under a location.
	attribCmd = &cobra.Command{
		Use:   "attrib [location]",
		Short: "Generate an attribution document",
		Long: `Generate an attribution document from the .about descriptors under a location.

License texts referenced by 'license_file' fields are deduplicated by
content: two descriptors pointing at byte-identical texts share one
entry, no matter what license keys they declare. Only descriptors that
pass validation contribute; invalid ones are reported and excluded.

The output is deterministic: the same descriptor set always produces a
byte-identical document, stamped with a content digest.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAttrib,
	}
)

func init() {
	attribCmd.Flags().StringVarP(&attribFormat, "format", "f", "", "document format: html, markdown, or text (default from config)")
	attribCmd.Flags().StringVarP(&attribOutput, "output", "o", "", "write the document to this file instead of stdout")
	attribCmd.Flags().BoolVarP(&attribPreview, "preview", "p", false, "render the document as styled terminal output")
}

func runAttrib(cmd *cobra.Command, args []string) error {
	root := targetRoot(args)

	name := attribFormat
	if name == "" {
		name = cfg.Attrib.Format
	}
	format, err := attrib.ParseDocFormat(name)
	if err != nil {
		return err
	}

	col, err := loadCollection(root)
	if err != nil {
		return err
	}

	valid := col.Valid()
	if invalid := len(col.Invalid()); invalid > 0 {
		fmt.Fprintln(os.Stderr, WarningStyle.Render(
			fmt.Sprintf("Warning: %d invalid descriptor(s) excluded; run 'aboutgen check %s' for details", invalid, root)))
	}
	if len(valid) == 0 {
		showIssueCard(issue.InvalidDescriptorsId)
		return &ExitError{Code: 1, Err: fmt.Errorf("no valid descriptors under %s", root)}
	}

	entries, diags := attrib.Aggregate(col, inventory.LoadText)
	reportDiagnostics(diags)
	slog.Debug("attribution aggregated", "components", len(valid), "licenses", len(entries))

	doc, err := attrib.NewDocument(entries)
	if err != nil {
		showIssueCard(issue.AttribGenerationFailedId)
		return issue.NewContext().
			WithOperation("generate attribution").
			WithResource(root).
			Wrap(err).
			BuildError()
	}

	if attribPreview {
		rendered, previewErr := attrib.Preview(doc)
		if previewErr != nil {
			return issue.NewContext().
				WithOperation("preview attribution").
				Wrap(previewErr).
				BuildError()
		}
		fmt.Print(rendered)
		return strictExit(col)
	}

	out := os.Stdout
	if attribOutput != "" {
		f, createErr := os.Create(attribOutput)
		if createErr != nil {
			return issue.NewContext().
				WithOperation("write attribution document").
				WithResource(attribOutput).
				WithSuggestion("Check that the parent directory exists and is writable").
				Wrap(createErr).
				BuildError()
		}
		defer f.Close()
		out = f
	}

	if err := attrib.Render(out, doc, format); err != nil {
		showIssueCard(issue.AttribGenerationFailedId)
		return issue.NewContext().
			WithOperation("render attribution document").
			WithResource(attribOutput).
			Wrap(err).
			BuildError()
	}

	if attribOutput != "" {
		fmt.Printf("%s Wrote %d license entr%s for %d component(s) to %s\n",
			SuccessStyle.Render("✓"), len(doc.Entries), plural(len(doc.Entries), "y", "ies"),
			len(valid), PathStyle.Render(attribOutput))
	}

	return strictExit(col)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
