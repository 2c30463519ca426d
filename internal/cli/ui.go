package cli

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/injectgraph/pkg/analysis"
	"github.com/matzehuels/injectgraph/pkg/dag"
	"github.com/matzehuels/injectgraph/pkg/dag/transform"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - interfaces
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleInterface marks interface nodes.
	StyleInterface = lipgloss.NewStyle().Foreground(colorBlue).Italic(true)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Analysis Output
// =============================================================================

// printStats prints graph statistics on a single line.
func printStats(res *analysis.Result) {
	parts := []string{
		fmt.Sprintf("%d files", res.Stats.Files),
		fmt.Sprintf("%d classes", res.Graph.NodeCount()),
		fmt.Sprintf("%d edges", res.Graph.EdgeCount()),
		fmt.Sprintf("%d layers", layerCount(res.Graph)),
	}
	if n := len(res.Skipped); n > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", n))
	}
	fmt.Fprintln(stdout, "  "+StyleDim.Render(strings.Join(parts, " · ")))
}

func layerCount(g *dag.DAG) int {
	if g.NodeCount() == 0 {
		return 0
	}
	return g.MaxRow() + 1
}

// printLayers prints one table row per layer, dependents first.
func printLayers(g *dag.DAG) {
	rows := make([][]string, 0, layerCount(g))
	for row := 0; row < layerCount(g); row++ {
		var names []string
		for _, n := range g.NodesInRow(row) {
			names = append(names, nodeName(*n))
		}
		rows = append(rows, []string{strconv.Itoa(row), strings.Join(names, ", ")})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Layer", "Classes").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 0 {
				return StyleDim.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(stdout, t.Render())
}

// printClasses prints the per-class extraction report.
func printClasses(classes []analysis.ClassReport) {
	rows := make([][]string, len(classes))
	for i, c := range classes {
		kind := c.Kind.String()
		rows[i] = []string{c.Name, kind, c.Path,
			strconv.Itoa(c.Candidates), strconv.Itoa(c.Edges), strconv.Itoa(c.Unresolved)}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Class", "Kind", "File", "Candidates", "Edges", "Unresolved").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 1 && classes[row].Kind == dag.NodeKindInterface:
				return StyleInterface
			case col >= 3:
				return StyleDim.Align(lipgloss.Right)
			}
			return lipgloss.NewStyle()
		})
	fmt.Fprintln(stdout, t.Render())
}

// printIssues lists skipped files and duplicate declarations.
func printIssues(res *analysis.Result) {
	for _, s := range res.Skipped {
		if s.Reason == analysis.SkipNoDeclaration {
			continue
		}
		printWarning("skipped %s (%s)", s.Path, s.Reason)
	}
	for _, c := range res.Conflicts {
		printWarning("duplicate declaration of %s: %s replaced %s", c.Name, c.Path, c.Replaced)
	}
}

// printCycles lists every cycle carried by err, if any.
func printCycles(err error) {
	var cycle *transform.CycleError
	if !stderrors.As(err, &cycle) {
		return
	}
	printError("dependency cycle detected (%d)", len(cycle.Cycles))
	for _, c := range cycle.Cycles {
		if len(c) == 0 {
			continue
		}
		path := append(slices.Clone(c), c[0])
		printDetail("%s", strings.Join(path, " "+iconArrow+" "))
	}
}

func nodeName(n dag.Node) string {
	if n.IsInterface() {
		return StyleInterface.Render(n.ID)
	}
	return n.ID
}
