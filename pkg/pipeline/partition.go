package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/hypercube/pkg/hypercube"
	"github.com/matzehuels/hypercube/pkg/observability"
)

// Partition decomposes the cube with the configured strategy and, when
// opts.Verify is set, checks the result against the resolved grid.
func Partition(ctx context.Context, c *hypercube.Cube, opts Options) ([]hypercube.Placement, error) {
	if err := opts.ValidateForPartition(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnPartitionStart(ctx, opts.Strategy, c.Width(), c.Height(), len(c.Rules()))
	start := time.Now()

	placements, err := c.Partition(opts.strategy(), opts.mergeMode())
	if err == nil && opts.Verify {
		err = c.Verify(placements)
	}

	hooks.OnPartitionComplete(ctx, opts.Strategy, len(placements), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("partitioned",
		"strategy", opts.Strategy,
		"cells", c.Width()*c.Height(),
		"rectangles", len(placements))
	return placements, nil
}
