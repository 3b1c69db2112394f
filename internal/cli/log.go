// Package cli implements the hypercube command-line interface.
//
// Every command loads one document (TSV, JSON, YAML or TOML) and hands it to
// pkg/pipeline. Partitions and rendered artifacts are cached on disk under
// $XDG_CACHE_HOME/hypercube unless --no-cache is given.
//
// # Commands
//
//   - render: Partition a document and write tex, html, dot, svg, png, pdf or json
//   - grid: Preview the partitioned table in the terminal
//   - inspect: Browse cells interactively and see which rule wins
//   - convert: Convert a document between input formats
//   - serve: Run the HTTP API
//   - cache: Manage the partition and artifact cache
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose (-v) enables debug
// output. The root command stores the logger in the command context, and
// helpers read it back with loggerFromContext.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// logTimeFormat prints wall-clock time with centiseconds, e.g. 14:32:01.45.
const logTimeFormat = "15:04:05.00"

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      logTimeFormat,
	})
}

// progress logs how long a step took, e.g. "Rendered shirts.tsv (12ms)".
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	elapsed := time.Since(p.start).Round(time.Millisecond)
	p.logger.Infof("%s (%s)", msg, elapsed)
}

type loggerCtxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, l)
}

// loggerFromContext returns the logger stored by withLogger, or log.Default()
// for contexts that never passed through the root command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerCtxKey{}).(*log.Logger); ok && l != nil {
			return l
		}
	}
	return log.Default()
}
