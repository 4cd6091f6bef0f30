// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"aboutgen-cli/internal/config"
	"aboutgen-cli/internal/issue"

	"github.com/spf13/cobra"
)

var (
	configInitForce bool

	// configCmd manages the aboutgen configuration.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage aboutgen configuration",
		Long: `Manage aboutgen configuration.

Configuration is stored in:
  - Linux: ~/.config/aboutgen/config.cue
  - macOS: ~/Library/Application Support/aboutgen/config.cue
  - Windows: %APPDATA%\aboutgen\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context())
		},
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	}
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

func showConfig(ctx context.Context) error {
	loaded, path, err := config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		showIssueCard(issue.ConfigLoadFailedId)
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if path != "" {
		fmt.Printf("%s: %s\n", PathStyle.Render("Config file"), path)
	} else {
		fmt.Printf("%s: %s\n", PathStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", PathStyle.Render("inventory.format"), SuccessStyle.Render(loaded.Inventory.Format))
	fmt.Printf("%s: %s\n", PathStyle.Render("attrib.format"), SuccessStyle.Render(loaded.Attrib.Format))
	fmt.Printf("%s: %s\n", PathStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprintf("%v", loaded.UI.Verbose)))
	fmt.Printf("%s: %s\n", PathStyle.Render("strict"), SuccessStyle.Render(fmt.Sprintf("%v", loaded.Strict)))

	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	path := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
	fmt.Println(path)
	if _, statErr := os.Stat(path); statErr != nil {
		fmt.Println(SubtitleStyle.Render("(file does not exist yet; run 'aboutgen config init')"))
	}
	return nil
}

func initConfigFile() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	path, err := config.WriteDefault(cfgDir, configInitForce)
	if err != nil {
		return err
	}
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), PathStyle.Render(path))
	return nil
}
