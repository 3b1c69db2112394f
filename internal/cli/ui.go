package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hypercube/pkg/pipeline"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleTitle renders headings such as the inspect view title.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCached      = lipgloss.NewStyle().Foreground(colorGreen)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Lines
// =============================================================================

func printStatus(icon string, style lipgloss.Style, format string, args ...any) {
	fmt.Println(style.Render(icon) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) {
	printStatus(iconSuccess, styleIconSuccess, format, args...)
}

func printError(format string, args ...any) {
	printStatus(iconError, styleIconError, format, args...)
}

func printInfo(format string, args ...any) {
	printStatus(iconInfo, styleIconInfo, format, args...)
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written artifact.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// statsLine formats grid statistics, e.g. "4x3 grid · 5 rules · 3 rectangles · cached".
func statsLine(st pipeline.Stats, cached bool) string {
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%dx%d grid", st.Width, st.Height)),
		StyleDim.Render(fmt.Sprintf("%d rules", st.Rules)),
		StyleDim.Render(fmt.Sprintf("%d rectangles", st.Rectangles)),
	}
	if cached {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, StyleDim.Render("fresh"))
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

func printStats(st pipeline.Stats, cached bool) {
	fmt.Println(statsLine(st, cached))
}
