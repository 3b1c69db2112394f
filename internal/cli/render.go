package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hypercube/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single format) or base path (multiple)
	formats  []string // output formats: tex, html, dot, svg, png, pdf, json
	strategy string   // partition strategy: greedy or guillotine
	merge    string   // greedy merge mode: content or rule
	verify   bool     // check the partition against the rule grid
	noCache  bool     // disable the on-disk cache
	refresh  bool     // recompute even when cached
}

// renderCommand creates the render command.
//
// Default settings:
//   - format: tex
//   - strategy: greedy
//   - merge: content (equal cells merge even when different rules produced them)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		strategy: pipeline.DefaultStrategy,
		merge:    pipeline.DefaultMerge,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Partition a document and render it as a spanning table",
		Long: `Render loads a hypercube document, partitions its grid into rectangles
and writes the table in one or more formats.

Formats: ` + strings.Join(pipeline.FormatNames(), ", "),
		Example: `  hypercube render shirts.tsv
  hypercube render shirts.yaml -f html,svg -o out/shirts
  hypercube render shirts.json --strategy guillotine --verify`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocument,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s), comma-separated (default tex)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", opts.strategy, "partition strategy: greedy, guillotine")
	cmd.Flags().StringVar(&opts.merge, "merge", opts.merge, "greedy merge mode: content, rule")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "verify the partition against the resolved grid")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute and overwrite cached results")

	registerPartitionFlagCompletions(cmd)

	return cmd
}

// runRender executes the pipeline for input and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := loadDocument(ctx, input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.formats, ", ")))
	spinner.Start()

	result, err := runner.Execute(ctx, doc, pipeline.Options{
		Strategy: opts.strategy,
		Merge:    opts.merge,
		Verify:   opts.verify,
		Formats:  opts.formats,
		Refresh:  opts.refresh,
		Logger:   logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %s", input))

	paths := outputPaths(opts.output, input, opts.formats)
	printSuccess("Rendered %s", input)
	printStats(result.Stats, result.CacheInfo.PartitionHit && result.CacheInfo.RenderHit)
	for _, format := range opts.formats {
		path := paths[format]
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "format", format, "path", path, "bytes", len(result.Artifacts[format]))
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.tex, .svg, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to the file it is written to. A single format
// with an explicit output path is written there verbatim. Derived paths never
// overwrite the input document.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		path := base + "." + f
		if filepath.Clean(path) == filepath.Clean(input) {
			path = base + ".table." + f
		}
		paths[f] = path
	}
	return paths
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
