package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/hypercube/pkg/errors"
	"github.com/matzehuels/hypercube/pkg/hypercube"
	"github.com/matzehuels/hypercube/pkg/pipeline"
)

var (
	inspectCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	inspectLabelStyle  = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	inspectBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// inspectCommand creates the inspect command, an interactive cell browser.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse grid cells and the rules that fill them",
		Long: `Inspect opens an interactive view of a document's grid. Move the cursor
with the arrow keys (or h/j/k/l) to see each cell's coordinate and the first
rule that matches it.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocument,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0])
		},
	}
}

func runInspect(ctx context.Context, input string) error {
	doc, err := loadDocument(ctx, input)
	if err != nil {
		return err
	}
	cube, _, err := pipeline.Load(doc)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(newInspectModel(input, cube), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// Cell details
// =============================================================================

// cellInfo describes one grid cell for display.
type cellInfo struct {
	Row, Col int
	Labels   []string // dimension=label pairs in declaration order
	Rule     int      // index of the winning rule, -1 when unresolved
	Content  string
	Style    string
	Domain   []string
	Err      error
}

// inspectCell resolves the cell at (row, col) and names its coordinate by
// value labels.
func inspectCell(c *hypercube.Cube, row, col int) cellInfo {
	info := cellInfo{Row: row, Col: col, Rule: -1}
	coord, err := c.CellCoordinate(row, col)
	if err != nil {
		info.Err = err
		return info
	}
	info.Labels = labelCoordinate(c, coord)

	idx, err := c.ResolveCell(row, col)
	if err != nil {
		info.Err = err
		return info
	}
	rule := c.Rule(idx)
	info.Rule = idx
	info.Content = rule.Payload.Content
	info.Style = rule.Payload.Style
	info.Domain = labelCoordinate(c, rule.Domain)
	return info
}

func labelCoordinate(c *hypercube.Cube, coord hypercube.Coordinate) []string {
	var out []string
	for _, d := range c.Dimensions() {
		idx, ok := coord[d.Name]
		if !ok || idx < 0 || idx >= d.Size() {
			continue
		}
		out = append(out, d.Name+"="+d.Values[idx].Label)
	}
	return out
}

// =============================================================================
// inspectModel - Interactive cell browser
// =============================================================================

type inspectModel struct {
	name     string
	cube     *hypercube.Cube
	grid     hypercube.Grid // nil when some cell is unresolved
	row, col int
	height   int // rows of the grid shown at once
	offset   int
}

func newInspectModel(name string, c *hypercube.Cube) inspectModel {
	grid, _ := c.BuildGrid()
	return inspectModel{name: name, cube: c, grid: grid, height: 15}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.row > 0 {
				m.row--
			}
		case "down", "j":
			if m.row < m.cube.Height()-1 {
				m.row++
			}
		case "left", "h":
			if m.col > 0 {
				m.col--
			}
		case "right", "l":
			if m.col < m.cube.Width()-1 {
				m.col++
			}
		case "home", "g":
			m.row, m.col = 0, 0
		case "end", "G":
			m.row, m.col = m.cube.Height()-1, m.cube.Width()-1
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 14
		if m.height < 3 {
			m.height = 3
		}
	}
	if m.row < m.offset {
		m.offset = m.row
	}
	if m.row >= m.offset+m.height {
		m.offset = m.row - m.height + 1
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Inspect " + m.name))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→/↑/↓ move  g/G first/last  q quit"))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(inspectBoxStyle.Render(m.renderDetails()))
	b.WriteString("\n")
	return b.String()
}

// renderGrid draws the visible rows as rule indices, highlighting the cursor.
func (m inspectModel) renderGrid() string {
	end := min(m.offset+m.height, m.cube.Height())

	var b strings.Builder
	for r := m.offset; r < end; r++ {
		for c := 0; c < m.cube.Width(); c++ {
			text := "  ?"
			if m.grid != nil {
				text = fmt.Sprintf("%3d", m.grid[r][c])
			}
			if r == m.row && c == m.col {
				b.WriteString(inspectCursorStyle.Render("[" + strings.TrimSpace(text) + "]"))
			} else {
				b.WriteString(StyleDim.Render(" " + text))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("  row %d/%d  col %d/%d",
		m.row+1, m.cube.Height(), m.col+1, m.cube.Width())))
	b.WriteString("\n")
	return b.String()
}

func (m inspectModel) renderDetails() string {
	info := inspectCell(m.cube, m.row, m.col)

	var lines []string
	line := func(k, v string) {
		lines = append(lines, inspectLabelStyle.Render(k)+" "+StyleValue.Render(v))
	}
	line("cell", fmt.Sprintf("row %d, col %d", info.Row, info.Col))
	line("coordinate", strings.Join(info.Labels, ", "))
	if info.Err != nil {
		lines = append(lines, styleIconError.Render(iconError)+" "+errs.UserMessage(info.Err))
		return strings.Join(lines, "\n")
	}
	line("rule", fmt.Sprintf("#%d", info.Rule))
	domain := "(catch-all)"
	if len(info.Domain) > 0 {
		domain = strings.Join(info.Domain, ", ")
	}
	line("when", domain)
	line("content", info.Content)
	if info.Style != "" {
		line("style", info.Style)
	}
	if shadowed := m.shadowedRules(); len(shadowed) > 0 {
		line("also", strings.Join(shadowed, ", "))
	}
	return strings.Join(lines, "\n")
}

// shadowedRules lists later rules that also match the cursor cell.
func (m inspectModel) shadowedRules() []string {
	coord, err := m.cube.CellCoordinate(m.row, m.col)
	if err != nil {
		return nil
	}
	var out []string
	for i, r := range m.cube.Rules() {
		if coord.Matches(r.Domain) {
			out = append(out, fmt.Sprintf("#%d", i))
		}
	}
	if len(out) > 0 {
		out = slices.Delete(out, 0, 1)
	}
	return out
}
