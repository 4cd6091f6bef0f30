// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// One palette for every command so inventory, check and attrib output read
// as the same tool. Hex values are picked for dark terminals.
const (
	// ColorPrimary marks titles and section headers.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted de-emphasizes hints and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorSuccess marks written files and passing checks.
	ColorSuccess = lipgloss.Color("#10B981")

	// ColorError marks validation errors and load failures.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning marks non-fatal findings (unknown fields, missing
	// referenced files).
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight marks descriptor locations and field names.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// PathStyle renders descriptor paths and field names so they stand out
	// in problem listings.
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)
