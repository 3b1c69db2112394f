package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hypercube/pkg/pipeline"
	"github.com/matzehuels/hypercube/pkg/render"
)

// continuation marks body positions covered by a rectangle anchored elsewhere.
const continuation = "·"

type gridOpts struct {
	strategy string
	merge    string
	noCache  bool
}

// gridCommand creates the grid command, a terminal preview of the partitioned table.
func (c *CLI) gridCommand() *cobra.Command {
	opts := gridOpts{
		strategy: pipeline.DefaultStrategy,
		merge:    pipeline.DefaultMerge,
	}

	cmd := &cobra.Command{
		Use:   "grid [file]",
		Short: "Preview the partitioned table in the terminal",
		Long: `Grid partitions a document and prints the table with headers. Each
rectangle shows its content once at its top-left cell; the rest of the
rectangle is filled with dots and shares the cell's style color.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocument,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGrid(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.strategy, "strategy", opts.strategy, "partition strategy: greedy, guillotine")
	cmd.Flags().StringVar(&opts.merge, "merge", opts.merge, "greedy merge mode: content, rule")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	registerPartitionFlagCompletions(cmd)

	return cmd
}

func (c *CLI) runGrid(ctx context.Context, input string, opts gridOpts) error {
	doc, err := loadDocument(ctx, input)
	if err != nil {
		return err
	}
	cube, docHash, err := pipeline.Load(doc)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	placements, cached, err := runner.PartitionWithCacheInfo(ctx, cube, docHash, pipeline.Options{
		Strategy: opts.strategy,
		Merge:    opts.merge,
		Logger:   loggerFromContext(ctx),
	})
	if err != nil {
		return err
	}

	fmt.Println(gridTable(render.BuildTable(cube, placements)).Render())
	printStats(pipeline.Stats{
		Width:      cube.Width(),
		Height:     cube.Height(),
		Rules:      len(cube.Rules()),
		Rectangles: len(placements),
	}, cached)
	return nil
}

// gridRows flattens t into one string per grid position.
func gridRows(t render.Table) [][]string {
	cover := t.Cover()
	rows := make([][]string, t.Rows)
	for r := range rows {
		rows[r] = make([]string, t.Cols)
		for col, i := range cover[r] {
			if i < 0 {
				continue
			}
			cell := t.Cells[i]
			switch {
			case cell.Row == r && cell.Col == col:
				rows[r][col] = cell.Text
			case cell.Kind == render.CellBody:
				rows[r][col] = continuation
			}
		}
	}
	return rows
}

// gridTable builds a lipgloss table for t, coloring cells by their style.
func gridTable(t render.Table) *table.Table {
	cover := t.Cover()
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	bodyStyle := lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(gridRows(t)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(cover) || col >= len(cover[row]) || cover[row][col] < 0 {
				return bodyStyle
			}
			cell := t.Cells[cover[row][col]]
			style := bodyStyle
			if cell.Kind.IsHeader() {
				style = headerStyle
			}
			if hex, ok := render.Color(cell.Style); ok {
				style = style.Background(lipgloss.Color(hex)).Foreground(lipgloss.Color("0"))
			}
			return style
		})
}
