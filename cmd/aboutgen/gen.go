// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"aboutgen-cli/internal/inventory"
	"aboutgen-cli/internal/issue"

	"github.com/spf13/cobra"
)

var (
	genForce bool

	// genCmd generates .about descriptor files from a CSV inventory, the
	// reverse of 'aboutgen inventory -f csv'.
	genCmd = &cobra.Command{
		Use:   "gen <inventory.csv> [target]",
		Short: "Generate .about descriptors from a CSV inventory",
		Long: `Generate .about descriptor files from a CSV inventory.

The CSV must carry an 'about_file_path' column naming where each
descriptor goes, relative to the target directory (default: the current
directory). Every other column becomes a descriptor field. Rows that
fail validation are reported and produce no file; existing files are
only overwritten with --force.

This is the reverse of 'aboutgen inventory --format csv', so an
exported inventory can be edited in a spreadsheet and regenerated.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runGen,
	}
)

func init() {
	genCmd.Flags().BoolVarP(&genForce, "force", "f", false, "overwrite existing descriptor files")
}

func runGen(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 1 {
		target = args[1]
	}

	f, err := os.Open(args[0])
	if err != nil {
		return issue.NewContext().
			WithOperation("read csv inventory").
			WithResource(args[0]).
			WithSuggestion("Check that the inventory file exists and is readable").
			Wrap(err).
			BuildError()
	}
	defer f.Close()

	rows, err := inventory.ReadCSV(f)
	if err != nil {
		return issue.NewContext().
			WithOperation("read csv inventory").
			WithResource(args[0]).
			WithSuggestion("The header row must include an 'about_file_path' column").
			Wrap(err).
			BuildError()
	}

	col := inventory.Generate(target, rows, inventory.GenerateOptions{
		Exists: inventory.Exists,
		Force:  genForce,
	})

	reportFailures(col)
	invalid := 0
	for _, d := range col.Descriptors {
		if !d.Valid() {
			invalid++
		}
		printProblems(d)
	}

	written := col.Len() - invalid
	fmt.Printf("%s Generated %d descriptor(s) in %s\n",
		SuccessStyle.Render("✓"), written, PathStyle.Render(target))

	if invalid > 0 || len(col.Failures) > 0 {
		return &ExitError{
			Code: 1,
			Err:  fmt.Errorf("%d invalid row(s), %d row(s) failed", invalid, len(col.Failures)),
		}
	}
	return nil
}
