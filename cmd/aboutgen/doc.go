// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for aboutgen.
//
// This package implements the Cobra command hierarchy for the aboutgen CLI:
// the root command, inventory export, attribution generation, descriptor
// validation, and configuration management.
package cmd
