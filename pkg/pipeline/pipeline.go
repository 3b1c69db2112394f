// Package pipeline runs the load → partition → render pipeline for hypercube.
//
// The CLI and the HTTP server both go through this package, so they share
// defaults, validation, and cache keys.
//
// # Stages
//
//  1. Load turns a document into a validated cube and a content hash.
//  2. Partition splits the body grid into labelled rectangles.
//  3. Render adds headers and writes each requested format.
//
// Execute runs all three; Load, PartitionWithCacheInfo and
// RenderWithCacheInfo run them one at a time.
//
// # Example
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Strategy: "guillotine",
//	    Formats:  []string{"tex", "svg"},
//	})
//	if err != nil {
//	    return err
//	}
//	tex := result.Artifacts["tex"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hypercube/pkg/cache"
	errs "github.com/matzehuels/hypercube/pkg/errors"
	"github.com/matzehuels/hypercube/pkg/hypercube"
	"github.com/matzehuels/hypercube/pkg/render"
)

// =============================================================================
// Defaults
// =============================================================================

// Defaults applied by both the CLI flags and the HTTP query parameters.
const (
	DefaultStrategy = string(hypercube.StrategyGreedy)
	DefaultMerge    = "content"
)

// Output formats.
const (
	FormatTeX  = "tex"
	FormatHTML = "html"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultFormats is rendered when Options.Formats is empty.
var DefaultFormats = []string{FormatTeX}

// ValidFormats holds every format a sink exists for.
var ValidFormats = map[string]bool{
	FormatTeX:  true,
	FormatHTML: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ContentTypes is the HTTP media type of each format.
var ContentTypes = map[string]string{
	FormatTeX:  "application/x-tex",
	FormatHTML: "text/html; charset=utf-8",
	FormatDOT:  "text/vnd.graphviz",
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// =============================================================================
// Options
// =============================================================================

// Options configures one pipeline run. The zero value partitions greedily,
// merges by content, and renders tex.
type Options struct {
	Strategy string `json:"strategy,omitempty"`
	Merge    string `json:"merge,omitempty"`
	Verify   bool   `json:"verify,omitempty"`

	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses cache reads; results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result is everything Execute produced.
type Result struct {
	RunID        string // tags this run's log lines
	DocumentHash string // hash of the canonical JSON document
	Cube         *hypercube.Cube
	Placements   []hypercube.Placement // partition of the body grid
	Table        render.Table          // placements plus headers
	Artifacts    map[string][]byte     // rendered output by format
	Stats        Stats
	CacheInfo    CacheInfo
}

// Stats describes the grid and how long each stage took.
type Stats struct {
	Width         int
	Height        int
	Rules         int
	Rectangles    int
	PartitionTime time.Duration
	RenderTime    time.Duration
}

// CacheInfo records which stages were served from the cache. RenderHit is
// set only when every requested artifact was cached.
type CacheInfo struct {
	PartitionHit bool
	RenderHit    bool
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormat returns an INVALID_FORMAT error for unknown formats.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats validates each entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStrategy rejects empty and unknown strategy names.
func ValidateStrategy(strategy string) error {
	if strategy == "" {
		return errs.New(errs.ErrCodeInvalidStrategy, "strategy is required")
	}
	_, err := hypercube.ParseStrategy(strategy)
	return err
}

// ValidateMerge rejects unknown merge modes.
func ValidateMerge(merge string) error {
	_, err := hypercube.ParseMergeMode(merge)
	return err
}

// FormatNames lists ValidFormats alphabetically.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// ValidateAndSetDefaults fills in defaults and validates the partition and
// render options. Later calls return nil without re-checking.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForPartition(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetPartitionDefaults fills in strategy, merge mode, and a silent logger.
func (o *Options) SetPartitionDefaults() {
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if o.Merge == "" {
		o.Merge = DefaultMerge
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

func (o *Options) ValidateForPartition() error {
	o.SetPartitionDefaults()
	if err := ValidateStrategy(o.Strategy); err != nil {
		return err
	}
	return ValidateMerge(o.Merge)
}

// SetRenderDefaults fills in the formats and a silent logger.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

func (o *Options) strategy() hypercube.Strategy {
	s, _ := hypercube.ParseStrategy(o.Strategy)
	return s
}

func (o *Options) mergeMode() hypercube.MergeMode {
	m, _ := hypercube.ParseMergeMode(o.Merge)
	return m
}

// PartitionKeyOpts derives the partition cache key fields.
func (o *Options) PartitionKeyOpts() cache.PartitionKeyOpts {
	return cache.PartitionKeyOpts{
		Strategy: o.Strategy,
		Merge:    o.mergeKey(),
	}
}

// ArtifactKeyOpts derives the artifact cache key fields for format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Strategy: o.Strategy,
		Merge:    o.mergeKey(),
	}
}

// mergeKey is empty for guillotine, which ignores the merge mode.
func (o *Options) mergeKey() string {
	if o.Strategy == string(hypercube.StrategyGuillotine) {
		return ""
	}
	return o.Merge
}
