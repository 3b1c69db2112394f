package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hypercube/internal/server"
	"github.com/matzehuels/hypercube/pkg/cache"
	"github.com/matzehuels/hypercube/pkg/observability"
	"github.com/matzehuels/hypercube/pkg/pipeline"
)

type serveOpts struct {
	addr     string
	redisURL string
	prefix   string
	noCache  bool
}

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:     ":8080",
		redisURL: os.Getenv(envRedisURL),
		prefix:   appName + ":",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve exposes the pipeline over HTTP:

  GET  /healthz
  POST /v1/partition?strategy=&merge=&verify=&input=
  POST /v1/render?format=&strategy=&merge=&verify=&input=

Results are cached in redis when --redis (or ` + envRedisURL + `) is set,
and in the local cache directory otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis", opts.redisURL, "redis URL for the shared cache (env "+envRedisURL+")")
	cmd.Flags().StringVar(&opts.prefix, "key-prefix", opts.prefix, "prefix for redis cache keys")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	store, keyer, err := serveCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(store, keyer, c.Logger)
	defer runner.Close()

	observability.SetHTTPHooks(server.NewLogHooks(logger))
	return server.New(runner, logger).ListenAndServe(ctx, opts.addr)
}

// serveCache picks the cache backend. Redis keys are scoped so several
// deployments can share one instance.
func serveCache(ctx context.Context, opts serveOpts) (cache.Cache, cache.Keyer, error) {
	logger := loggerFromContext(ctx)
	if opts.noCache || opts.redisURL == "" {
		store, err := newCache(opts.noCache)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using local cache", "disabled", opts.noCache)
		return store, nil, nil
	}

	store, err := cache.NewRedisCache(ctx, opts.redisURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using redis cache", "prefix", opts.prefix)
	return store, cache.NewScopedKeyer(cache.NewDefaultKeyer(), opts.prefix), nil
}
