package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/molviz/molviz/pkg/pipeline"
	"github.com/molviz/molviz/pkg/smiles"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary accents
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// printDiagnostics reports parser recoveries as styled warnings so
// users see what the lenient parser skipped or dropped.
func printDiagnostics(w io.Writer, diags []smiles.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "%s %s\n", styleWarning.Render("!"), d.String())
	}
}

// printSummary reports a successful file write with basic stats.
func printSummary(w io.Writer, path string, result *pipeline.Result) {
	fmt.Fprintf(w, "%s wrote %s %s\n",
		styleSuccess.Render("✓"),
		styleValue.Render(path),
		styleDim.Render(fmt.Sprintf("(%d atoms, %d bonds)",
			result.Stats.AtomCount, result.Stats.BondCount)))
}
