// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"aboutgen-cli/internal/inventory"

	"github.com/spf13/cobra"
)

var (
	initForce bool

	// initCmd creates a starter .about descriptor.
	initCmd = &cobra.Command{
		Use:   "init [file]",
		Short: "Create a starter .about descriptor",
		Long: `Create a starter .about descriptor with the required fields filled in.

The component name is derived from the file name, so
'aboutgen init thirdparty/zlib.about' yields a descriptor named 'zlib'.
Edit the generated file to point about_resource at the component it
documents and to add license information.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing descriptor")
}

func runInit(cmd *cobra.Command, args []string) error {
	filename := "component.about"
	if len(args) > 0 {
		filename = args[0]
	}
	if !inventory.IsDescriptorPath(filename) {
		return fmt.Errorf("descriptor file name must end in %s: %s", inventory.DescriptorSuffix, filename)
	}

	// Check if file exists
	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	content := generateDescriptor(filename)

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Point about_resource at the file or directory it documents")
	fmt.Println("  2. Fill in license and copyright information")
	fmt.Printf("  3. Run 'aboutgen check %s' to validate\n", filepath.Dir(filename))

	return nil
}

// generateDescriptor builds the skeleton text. Optional fields are left as
// comments so the skeleton validates cleanly until the user fills them in.
func generateDescriptor(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), inventory.DescriptorSuffix)

	return fmt.Sprintf(`# Component descriptor. Run 'aboutgen check' to validate.
about_resource: %s
name: %s
version: 1.0.0
# license: mit
# license_file: %s.LICENSE
# copyright: Copyright (c) the %s authors
# owner:
# homepage_url:
`, name, name, name, name)
}
