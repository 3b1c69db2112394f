package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hypercube/pkg/buildinfo"
	"github.com/matzehuels/hypercube/pkg/cache"
	pkgio "github.com/matzehuels/hypercube/pkg/io"
	"github.com/matzehuels/hypercube/pkg/pipeline"
)

const (
	appName = "hypercube"

	// envRedisURL selects the redis cache for the serve command.
	envRedisURL = "HYPERCUBE_REDIS_URL"
)

// Log levels accepted by New and SetLogLevel.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI carries the logger shared by every command.
type CLI struct {
	Logger *log.Logger
}

// New returns a CLI that logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel changes the level of the shared logger.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the hypercube command tree. The persistent --verbose
// flag switches the shared logger to debug level.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   appName,
		Short: "Hypercube renders multi-dimensional parameter tables as spanning grids",
		Long: `Hypercube lays out an N-dimensional table of categorical parameters as a 2-D grid,
resolves every cell against an ordered rule list, and merges equal cells into
rectangles that render as multirow/multicolumn tables.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner returns a runner backed by the on-disk cache, or by no cache at
// all when noCache is set.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir is $XDG_CACHE_HOME/hypercube, falling back to ~/.cache/hypercube.
func cacheDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats splits a -f value such as "tex, HTML" into lowercase names.
// An empty value yields pipeline.DefaultFormats.
func parseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		return slices.Clone(pipeline.DefaultFormats)
	}
	return formats
}

// loadDocument reads the document at path; the extension picks the parser.
func loadDocument(ctx context.Context, path string) (*pkgio.Document, error) {
	doc, err := pkgio.Import(path)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("loaded document",
		"path", path,
		"dimensions", len(doc.Dimensions),
		"rules", len(doc.Rules))
	return doc, nil
}
