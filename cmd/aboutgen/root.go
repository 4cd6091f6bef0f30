// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"aboutgen-cli/internal/config"
	"aboutgen-cli/internal/issue"

	"github.com/charmbracelet/fang"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// strict makes commands exit nonzero on invalid descriptors or load failures
	strict bool

	// cfg is the resolved tool configuration, loaded once before any RunE runs.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "aboutgen",
		Short: "Component provenance from .about files",
		Long: TitleStyle.Render("aboutgen") + SubtitleStyle.Render(" - Component provenance from .about files") + `

aboutgen reads .about component descriptors (simple key: value text
files placed next to the third-party code they document), validates
them, and turns them into inventories and attribution documents.

Descriptors that fail validation are reported, never silently dropped:
every command accounts for each input as loaded or failed.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Place a .about file next to each third-party component
  2. Run 'aboutgen check thirdparty/' to validate them
  3. Run 'aboutgen attrib thirdparty/ -o NOTICE.html'

` + SubtitleStyle.Render("Examples:") + `
  aboutgen inventory thirdparty/            Summarize all descriptors
  aboutgen inventory thirdparty/ -f json    Export the inventory as JSON
  aboutgen attrib thirdparty/ -o N.html     Generate an attribution page
  aboutgen check thirdparty/                Validate descriptors
  aboutgen gen inventory.csv thirdparty/    Generate descriptors from a CSV
  aboutgen init zlib/zlib.about             Create a starter descriptor`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/aboutgen/config.cue)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "exit nonzero when any descriptor is invalid or fails to load")

	// Add subcommands
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(attribCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads the config file and wires the logger.
func initRootConfig() {
	loaded, _, err := config.Load(context.Background(), config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
		// Apply config values unless the corresponding flag was set
		if !verbose {
			verbose = cfg.UI.Verbose
		}
		if !strict {
			strict = cfg.Strict
		}
	}

	initLogger()
}

// initLogger routes log/slog through charmbracelet's styled handler.
// Debug records are dropped unless verbose output is on.
func initLogger() {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		Level:           level,
		ReportTimestamp: false,
	})
	slog.SetDefault(slog.New(handler))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// showIssueCard renders a catalog issue to stderr. Rendering failures are
// logged but never mask the underlying error.
func showIssueCard(id issue.Id) {
	card := issue.Get(id)
	if card == nil {
		return
	}
	rendered, err := card.Render("dark")
	if err != nil {
		slog.Warn("failed to render issue card", "issueID", id, "error", err)
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}
