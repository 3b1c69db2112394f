package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/hypercube/pkg/io"
	"github.com/matzehuels/hypercube/pkg/pipeline"
)

// convertCommand creates the convert command for translating documents
// between input formats.
func (c *CLI) convertCommand() *cobra.Command {
	var output string
	var check bool

	formats := make([]string, len(pkgio.Formats))
	for i, f := range pkgio.Formats {
		formats[i] = string(f)
	}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a document between TSV, JSON, YAML and TOML",
		Long: `Convert reads a document and writes it in the format implied by the
output file's extension (` + strings.Join(formats, ", ") + `).`,
		Example: `  hypercube convert shirts.tsv -o shirts.yaml
  hypercube convert shirts.toml -o shirts.json --check`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocument,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), args[0], output, check)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (format chosen by extension)")
	cmd.Flags().BoolVar(&check, "check", false, "validate the document before writing")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runConvert(ctx context.Context, input, output string, check bool) error {
	if _, err := pkgio.FormatFromPath(output); err != nil {
		return err
	}
	doc, err := loadDocument(ctx, input)
	if err != nil {
		return err
	}
	if check {
		if _, _, err := pipeline.Load(doc); err != nil {
			return fmt.Errorf("check: %w", err)
		}
	}
	if err := pkgio.Export(doc, output); err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("converted document", "from", input, "to", output)
	printSuccess("Converted %s", input)
	printFile(output)
	return nil
}
