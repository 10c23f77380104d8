// Package pipeline runs the GraphML to interactive HTML pipeline.
//
// This package wires the stages together for the CLI and the preview
// server, so both apply the same caching, logging and error reporting.
//
// # Architecture
//
// The pipeline is strictly sequential; each stage consumes the whole
// output of the previous one:
//
//  1. Extract: read the GraphML document into node and edge records
//  2. Build: derive labels and types into a canonical graph
//  3. Render: assign type colors and write the vis-network page
//  4. Inject: add the Save PNG / Save SVG toolbar to the page
//
// Extract and Build are cached together, keyed by a hash of the input
// bytes. Optional side outputs (graph JSON, static snapshot) are written
// after the page.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "forest.graphml",
//	    Output: "out/graph.html",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output)
//
// # Errors
//
// Stage failures are wrapped with the stage name ("extract: ...",
// "render: ...") around a coded error from
// [github.com/matzehuels/graphview/pkg/errors]; use errors.GetCode to
// inspect the code. A failed injection leaves the un-augmented page on
// disk.
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphview/pkg/errors"
	"github.com/matzehuels/graphview/pkg/graph"
	"github.com/matzehuels/graphview/pkg/palette"
	"github.com/matzehuels/graphview/pkg/render/nodelink"
	"github.com/matzehuels/graphview/pkg/render/visnet"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOutput is the page written when no output path is given.
	DefaultOutput = "graph.html"

	// DefaultSnapshotScale is the PNG snapshot resolution multiplier.
	DefaultSnapshotScale = 2.0
)

// Snapshot formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidSnapshotFormats is the set of supported snapshot formats.
var ValidSnapshotFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the GraphML document to read.
	Input string

	// Output is the HTML page to write. Defaults to [DefaultOutput].
	Output string

	// Page configures the rendered page. Zero fields take visnet defaults;
	// Page.Buttons is overridden by NoButtons.
	Page visnet.Options

	// NoButtons hides the engine's configuration panel.
	NoButtons bool

	// NoExport skips the export toolbar.
	NoExport bool

	// Palette and Neutral color node types. Empty values use the defaults.
	Palette palette.Palette
	Neutral string

	// JSONPath, when set, also writes the canonical graph as JSON.
	JSONPath string

	// Snapshot, when set to svg, png or pdf, also writes a static Graphviz
	// rendering to SnapshotPath (default: Output with the format's extension).
	Snapshot        string
	SnapshotPath    string
	SnapshotOptions nodelink.Options

	// Refresh ignores cached graphs; the fresh result is still stored.
	Refresh bool

	// CacheTTL bounds how long a parsed graph stays cached. Zero keeps it
	// until evicted.
	CacheTTL time.Duration

	// Logger receives progress and skipped-record lines.
	Logger *log.Logger
}

// SetDefaults fills empty fields with their default values.
func (o *Options) SetDefaults() {
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	o.Page.SetDefaults()
	o.Page.Buttons = !o.NoButtons
	if len(o.Palette) == 0 {
		o.Palette = palette.Default
	}
	if o.Neutral == "" {
		o.Neutral = palette.Neutral
	}
	if o.Snapshot != "" && o.SnapshotPath == "" {
		o.SnapshotPath = replaceExt(o.Output, "."+o.Snapshot)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks required fields and option values.
func (o *Options) Validate() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input path is required")
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	if err := o.Page.Validate(); err != nil {
		return err
	}
	for _, c := range o.Palette {
		if err := errors.ValidateColor(c); err != nil {
			return err
		}
	}
	if err := errors.ValidateColor(o.Neutral); err != nil {
		return err
	}
	if o.Snapshot != "" {
		if err := ValidateSnapshotFormat(o.Snapshot); err != nil {
			return err
		}
		if err := errors.ValidateOutputPath(o.SnapshotPath); err != nil {
			return err
		}
	}
	if o.JSONPath != "" {
		if err := errors.ValidateOutputPath(o.JSONPath); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSnapshotFormat checks that a snapshot format is supported.
func ValidateSnapshotFormat(format string) error {
	if !ValidSnapshotFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid snapshot format: %q (must be one of: svg, png, pdf)", format)
	}
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the canonical graph.
	Graph *graph.Graph

	// Colors maps each node type to its color.
	Colors palette.Map

	// InputHash is the SHA-256 of the input document.
	InputHash string

	// Output is the written page. Injected reports whether the export
	// toolbar was added.
	Output   string
	Injected bool

	// JSONPath and SnapshotPath are set when those outputs were written.
	JSONPath     string
	SnapshotPath string

	// Skipped counts records dropped during extraction.
	Skipped int

	// CacheHit reports whether the graph came from the cache.
	CacheHit bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount   int
	EdgeCount   int
	TypeCount   int
	ExtractTime time.Duration // Extract and build, or the cache lookup on a hit
	RenderTime  time.Duration
	InjectTime  time.Duration
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
