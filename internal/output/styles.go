package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: template ids, flavors, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success summaries.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for deprecation markers.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (template ids, flavors, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDeprecated styles deprecated template annotations.
	StyleDeprecated = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleDim styles structural chrome (separators, secondary text).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)
