package pipeline

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/hypercube/pkg/cache"
	"github.com/matzehuels/hypercube/pkg/hypercube"
	pkgio "github.com/matzehuels/hypercube/pkg/io"
	"github.com/matzehuels/hypercube/pkg/observability"
	"github.com/matzehuels/hypercube/pkg/render"
)

// Key types passed to observability.CacheHooks.
const (
	keyTypePartition = "partition"
	keyTypeArtifact  = "artifact"
)

// Runner executes pipeline stages against a cache. It keeps no per-run state,
// so one Runner may serve concurrent runs with different Options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a Runner. Nil arguments select a NullCache, the
// DefaultKeyer, and log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute loads doc, partitions it, and renders every requested format.
func (r *Runner) Execute(ctx context.Context, doc *pkgio.Document, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}

	c, docHash, err := Load(doc)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Cube = c
	result.DocumentHash = docHash
	result.Stats.Width = c.Width()
	result.Stats.Height = c.Height()
	result.Stats.Rules = len(c.Rules())

	r.Logger.Debug("loaded document",
		"run", result.RunID,
		"width", result.Stats.Width,
		"height", result.Stats.Height,
		"rules", result.Stats.Rules)

	partitionStart := time.Now()
	placements, partitionHit, rejected, err := r.partition(ctx, c, docHash, opts)
	if err != nil {
		return nil, fmt.Errorf("partition: %w", err)
	}
	if rejected {
		// Cached artifacts share the rejected partition's key.
		opts.Refresh = true
	}
	result.Placements = placements
	result.Stats.Rectangles = len(placements)
	result.Stats.PartitionTime = time.Since(partitionStart)
	result.CacheInfo.PartitionHit = partitionHit

	r.Logger.Info("partitioned grid",
		"strategy", opts.Strategy,
		"rectangles", len(placements),
		"duration", result.Stats.PartitionTime)

	result.Table = render.BuildTable(c, placements)
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, c, placements, docHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// PartitionWithCacheInfo returns the partition of c and whether it came from
// the cache. docHash is the hash returned by [Load]. With Verify set, a
// cached partition that no longer verifies is recomputed.
func (r *Runner) PartitionWithCacheInfo(ctx context.Context, c *hypercube.Cube, docHash string, opts Options) ([]hypercube.Placement, bool, error) {
	placements, hit, _, err := r.partition(ctx, c, docHash, opts)
	return placements, hit, err
}

// partition is PartitionWithCacheInfo that also reports whether a cached
// partition was found and failed verification.
func (r *Runner) partition(ctx context.Context, c *hypercube.Cube, docHash string, opts Options) (placements []hypercube.Placement, hit, rejected bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForPartition(); err != nil {
		return nil, false, false, err
	}

	hooks := observability.Cache()
	cacheKey := r.Keyer.PartitionKey(docHash, opts.PartitionKeyOpts())

	if !opts.Refresh {
		var cached []hypercube.Placement
		if err := cache.GetJSON(ctx, r.Cache, cacheKey, &cached); err == nil {
			if !opts.Verify || c.Verify(cached) == nil {
				hooks.OnCacheHit(ctx, keyTypePartition)
				return cached, true, false, nil
			}
			r.Logger.Warn("cached partition failed verification, recomputing", "key", cacheKey)
			rejected = true
		}
		hooks.OnCacheMiss(ctx, keyTypePartition)
	}

	placements, err = Partition(ctx, c, opts)
	if err != nil {
		return nil, false, false, err
	}

	if err := cache.SetJSON(ctx, r.Cache, cacheKey, placements, cache.TTLPartition); err != nil {
		r.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
	} else {
		hooks.OnCacheSet(ctx, keyTypePartition, len(placements))
	}

	return placements, false, rejected, nil
}

// RenderWithCacheInfo returns the artifact for each requested format. Only
// formats missing from the cache are rendered; the boolean is true when none
// were.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, c *hypercube.Cube, placements []hypercube.Placement, docHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Cache()
	artifacts, missing := r.cachedArtifacts(ctx, docHash, opts)
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, c, placements, renderOpts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		cacheKey := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
			continue
		}
		hooks.OnCacheSet(ctx, keyTypeArtifact, len(data))
	}

	return artifacts, false, nil
}

// cachedArtifacts splits opts.Formats into cached artifacts and the formats
// that still need rendering.
func (r *Runner) cachedArtifacts(ctx context.Context, docHash string, opts Options) (map[string][]byte, []string) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	if opts.Refresh {
		return artifacts, slices.Clone(opts.Formats)
	}

	hooks := observability.Cache()
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, keyTypeArtifact)
			missing = append(missing, format)
			continue
		}
		hooks.OnCacheHit(ctx, keyTypeArtifact)
		artifacts[format] = data
	}
	return artifacts, missing
}

// Close closes the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger hands the runner's logger to opts. It runs before validation,
// which would otherwise install a silent logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
