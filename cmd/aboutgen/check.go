// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"aboutgen-cli/internal/issue"
	"aboutgen-cli/pkg/aboutfile"

	"github.com/spf13/cobra"
)

// checkCmd validates the descriptors found under a location.
var checkCmd = &cobra.Command{
	Use:   "check [location]",
	Short: "Validate .about descriptors",
	Long: `Validate all .about descriptors under a location.

Every problem names the descriptor, the field, and the line it concerns.
Warnings (unknown fields, empty optional fields, missing referenced
files) do not make a descriptor invalid; errors (syntax problems,
missing required fields, type violations) do.

The exit code is nonzero when any descriptor is invalid or failed to
load, so 'aboutgen check' can gate CI pipelines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := targetRoot(args)

	col, err := loadCollection(root)
	if err != nil {
		return err
	}

	invalid := 0
	for _, d := range col.Descriptors {
		if !d.Valid() {
			invalid++
		}
		printProblems(d)
	}

	valid := col.Len() - invalid
	fmt.Printf("%s: %s valid, %s invalid, %s failed to load\n",
		TitleStyle.Render("Checked "+fmt.Sprintf("%d descriptor(s)", col.Len()+len(col.Failures))),
		SuccessStyle.Render(fmt.Sprintf("%d", valid)),
		ErrorStyle.Render(fmt.Sprintf("%d", invalid)),
		ErrorStyle.Render(fmt.Sprintf("%d", len(col.Failures))))

	if invalid > 0 {
		showIssueCard(issue.InvalidDescriptorsId)
	}
	if invalid > 0 || len(col.Failures) > 0 {
		return &ExitError{
			Code: 1,
			Err:  fmt.Errorf("%d invalid descriptor(s), %d load failure(s)", invalid, len(col.Failures)),
		}
	}
	return nil
}

// printProblems lists a descriptor's errors, and its warnings when verbose.
func printProblems(d *aboutfile.Descriptor) {
	for _, p := range d.Errors {
		fmt.Printf("%s %s: %s\n", ErrorStyle.Render("error"), PathStyle.Render(d.Location), p.String())
	}
	if !verbose {
		return
	}
	for _, p := range d.Warnings {
		fmt.Printf("%s %s: %s\n", WarningStyle.Render("warning"), PathStyle.Render(d.Location), p.String())
	}
}
