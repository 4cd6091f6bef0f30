// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"aboutgen-cli/internal/inventory"
	"aboutgen-cli/internal/issue"

	"github.com/spf13/cobra"
)

var (
	inventoryFormat string
	inventoryOutput string

	// inventoryCmd exports the descriptor inventory found under a location.
	inventoryCmd = &cobra.Command{
		Use:   "inventory [location]",
		Short: "Export all .about descriptors under a location",
		Long: `Export all .about descriptors under a location as a tabular inventory.

The inventory has one row per descriptor. Columns are the union of all
fields present across descriptors, with the descriptor path in the
'about_file_path' column. Invalid descriptors are included so nothing
is silently dropped; use 'aboutgen check' to see their problems.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInventory,
	}
)

func init() {
	inventoryCmd.Flags().StringVarP(&inventoryFormat, "format", "f", "", "export format: csv, json, yaml, or toml (default from config)")
	inventoryCmd.Flags().StringVarP(&inventoryOutput, "output", "o", "", "write the inventory to this file instead of stdout")
}

func runInventory(cmd *cobra.Command, args []string) error {
	root := targetRoot(args)

	name := inventoryFormat
	if name == "" {
		name = cfg.Inventory.Format
	}
	format, err := inventory.ParseFormat(name)
	if err != nil {
		return err
	}

	col, err := loadCollection(root)
	if err != nil {
		return err
	}
	slog.Debug("inventory loaded", "root", root, "descriptors", col.Len(), "failures", len(col.Failures))

	out := os.Stdout
	if inventoryOutput != "" {
		f, createErr := os.Create(inventoryOutput)
		if createErr != nil {
			return issue.NewContext().
				WithOperation("write inventory").
				WithResource(inventoryOutput).
				WithSuggestion("Check that the parent directory exists and is writable").
				Wrap(createErr).
				BuildError()
		}
		defer f.Close()
		out = f
	}

	if err := inventory.Write(out, col, format); err != nil {
		return issue.NewContext().
			WithOperation("write inventory").
			WithResource(inventoryOutput).
			Wrap(err).
			BuildError()
	}

	if inventoryOutput != "" {
		fmt.Printf("%s Wrote %d component(s) to %s\n",
			SuccessStyle.Render("✓"), col.Len(), PathStyle.Render(inventoryOutput))
		if n := len(col.Invalid()); n > 0 {
			fmt.Println(WarningStyle.Render(fmt.Sprintf("  %d descriptor(s) have validation problems; run 'aboutgen check %s'", n, root)))
		}
	}

	return strictExit(col)
}
