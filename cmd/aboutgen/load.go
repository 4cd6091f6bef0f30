// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"aboutgen-cli/internal/inventory"
	"aboutgen-cli/internal/issue"
)

// targetRoot resolves the positional location argument, defaulting to the
// current directory.
func targetRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// loadCollection walks root, loads every descriptor it finds, and reports
// walk diagnostics and load failures to stderr. An empty result with no
// failures gets the "no descriptors" issue card and a nonzero exit.
func loadCollection(root string) (*inventory.Collection, error) {
	col, diags := inventory.CollectAndLoad(root)

	reportDiagnostics(diags)
	reportFailures(col)

	if col.Len() == 0 && len(col.Failures) == 0 {
		showIssueCard(issue.NoDescriptorsFoundId)
		return nil, &ExitError{Code: 1, Err: fmt.Errorf("no .about files found under %s", root)}
	}
	return col, nil
}

// reportDiagnostics prints walk diagnostics to stderr. Warnings only show
// in verbose mode; errors always show.
func reportDiagnostics(diags []inventory.Diagnostic) {
	for _, d := range diags {
		switch d.Severity {
		case inventory.SeverityError:
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+d.Message)
		default:
			if verbose {
				fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+d.Message)
			}
		}
	}
}

// reportFailures prints the load-failure ledger to stderr.
func reportFailures(col *inventory.Collection) {
	for _, f := range col.Failures {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n",
			ErrorStyle.Render("Failed:"), PathStyle.Render(f.Location), f.Err)
	}
}

// strictExit maps invalid descriptors and load failures to a nonzero exit
// when strict mode is on.
func strictExit(col *inventory.Collection) error {
	if !strict {
		return nil
	}
	invalid := len(col.Invalid())
	failed := len(col.Failures)
	if invalid == 0 && failed == 0 {
		return nil
	}
	return &ExitError{
		Code: 1,
		Err:  fmt.Errorf("strict mode: %d invalid descriptor(s), %d load failure(s)", invalid, failed),
	}
}
