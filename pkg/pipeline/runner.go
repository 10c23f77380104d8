package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphview/pkg/cache"
	"github.com/matzehuels/graphview/pkg/errors"
	"github.com/matzehuels/graphview/pkg/graph"
	"github.com/matzehuels/graphview/pkg/graphml"
	gio "github.com/matzehuels/graphview/pkg/io"
	"github.com/matzehuels/graphview/pkg/observability"
	"github.com/matzehuels/graphview/pkg/palette"
	"github.com/matzehuels/graphview/pkg/render/export"
	"github.com/matzehuels/graphview/pkg/render/nodelink"
	"github.com/matzehuels/graphview/pkg/render/visnet"
)

// cacheKeyType labels graph entries in cache hooks.
const cacheKeyType = "graph"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can use the same Runner for
// different inputs and outputs.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Parsed is the outcome of the extract and build stages.
type Parsed struct {
	Graph     *graph.Graph
	InputHash string
	Skipped   int
	CacheHit  bool
}

// cachedGraph is the cache entry for a parsed input.
type cachedGraph struct {
	Skipped int             `json:"skipped"`
	Graph   json.RawMessage `json:"graph"`
}

// Execute runs extract, build, render and inject, then writes the
// optional JSON and snapshot outputs.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stages 1 and 2: Extract and Build
	start := time.Now()
	parsed, err := r.Parse(ctx, opts.Input, opts.Refresh, opts.CacheTTL)
	if err != nil {
		return nil, err
	}
	g := parsed.Graph
	result.Graph = g
	result.InputHash = parsed.InputHash
	result.Skipped = parsed.Skipped
	result.CacheHit = parsed.CacheHit
	result.Stats.ExtractTime = time.Since(start)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	result.Colors = palette.AssignWithNeutral(g.RenderedTypes(), opts.Palette, opts.Neutral)
	result.Stats.TypeCount = result.Colors.Len()
	observability.Pipeline().OnGraphBuilt(ctx, g.NodeCount(), g.EdgeCount(), result.Stats.TypeCount, parsed.Skipped)

	opts.Logger.Debug("parsed graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"types", result.Stats.TypeCount,
		"skipped", parsed.Skipped,
		"cached", parsed.CacheHit,
		"duration", result.Stats.ExtractTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	start = time.Now()
	err = r.stage(ctx, observability.StageRender, func() error {
		return visnet.WriteFile(opts.Output, visnet.Build(g, result.Colors), opts.Page)
	})
	if err != nil {
		return nil, err
	}
	result.Output = absPath(opts.Output)
	result.Stats.RenderTime = time.Since(start)
	opts.Logger.Debug("rendered page", "path", opts.Output, "duration", result.Stats.RenderTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 4: Inject
	if !opts.NoExport {
		start = time.Now()
		err = r.stage(ctx, observability.StageInject, func() error {
			return export.InjectFile(opts.Output)
		})
		if err != nil {
			return nil, err
		}
		result.Injected = true
		result.Stats.InjectTime = time.Since(start)
		opts.Logger.Debug("injected export toolbar", "path", opts.Output)
	}

	if opts.JSONPath != "" {
		if err := writeJSON(g, opts.JSONPath); err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
		result.JSONPath = absPath(opts.JSONPath)
		opts.Logger.Debug("wrote graph JSON", "path", opts.JSONPath)
	}

	if opts.Snapshot != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := writeSnapshot(g, result.Colors, opts); err != nil {
			return nil, fmt.Errorf("snapshot: %w", err)
		}
		result.SnapshotPath = absPath(opts.SnapshotPath)
		opts.Logger.Debug("wrote snapshot", "format", opts.Snapshot, "path", opts.SnapshotPath)
	}

	return result, nil
}

// Parse runs the extract and build stages for the document at path,
// consulting the cache unless refresh is set. Fresh results are stored
// with the given ttl.
func (r *Runner) Parse(ctx context.Context, path string, refresh bool, ttl time.Duration) (*Parsed, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", observability.StageExtract,
			errors.Wrap(errors.ErrCodeFileNotFound, err, "input file not found: %s", path))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", observability.StageExtract,
			errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path))
	}

	hash := cache.Hash(data)
	key := cache.GraphKey(hash)

	if !refresh {
		if parsed, ok := r.fromCache(ctx, key); ok {
			parsed.InputHash = hash
			return parsed, nil
		}
	}

	var recs *graphml.Records
	err = r.stage(ctx, observability.StageExtract, func() error {
		var err error
		recs, err = graphml.Read(bytes.NewReader(data), graphml.Options{
			Logger: func(format string, args ...any) {
				r.Logger.Debugf(format, args...)
			},
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	var g *graph.Graph
	_ = r.stage(ctx, observability.StageBuild, func() error {
		g = graph.BuildRecords(recs)
		return nil
	})

	parsed := &Parsed{Graph: g, InputHash: hash, Skipped: recs.Skipped}
	r.toCache(ctx, key, parsed, ttl)
	return parsed, nil
}

// fromCache loads a parsed graph. Undecodable entries are deleted and
// reported as a miss.
func (r *Runner) fromCache(ctx context.Context, key string) (*Parsed, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "error", err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return nil, false
	}

	var entry cachedGraph
	if err := json.Unmarshal(data, &entry); err == nil {
		if g, err := gio.ReadJSON(bytes.NewReader(entry.Graph)); err == nil {
			observability.Cache().OnCacheHit(ctx, cacheKeyType)
			r.Logger.Debug("graph cache hit", "key", key)
			return &Parsed{Graph: g, Skipped: entry.Skipped, CacheHit: true}, true
		}
	}

	r.Logger.Debug("discarding corrupt cache entry", "key", key)
	_ = r.Cache.Delete(ctx, key)
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	return nil, false
}

// toCache stores a parsed graph. Cache failures are logged, never fatal.
func (r *Runner) toCache(ctx context.Context, key string, p *Parsed, ttl time.Duration) {
	var buf bytes.Buffer
	if err := gio.WriteJSON(p.Graph, &buf); err != nil {
		r.Logger.Warn("encode graph for cache", "error", err)
		return
	}
	data, err := json.Marshal(cachedGraph{Skipped: p.Skipped, Graph: buf.Bytes()})
	if err != nil {
		r.Logger.Warn("encode cache entry", "error", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

// stage runs fn between stage hooks and prefixes its error with the stage.
func (r *Runner) stage(ctx context.Context, name string, fn func() error) error {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name)
	start := time.Now()
	err := fn()
	hooks.OnStageComplete(ctx, name, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func writeJSON(g *graph.Graph, path string) error {
	if err := mkdirParent(path); err != nil {
		return err
	}
	if err := gio.ExportJSON(g, path); err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "write %s", path)
	}
	return nil
}

func writeSnapshot(g *graph.Graph, colors palette.Map, opts Options) error {
	dot := nodelink.ToDOT(g, colors, opts.SnapshotOptions)

	var (
		data []byte
		err  error
	)
	switch opts.Snapshot {
	case FormatSVG:
		data, err = nodelink.RenderSVG(dot)
	case FormatPNG:
		data, err = nodelink.RenderPNG(dot, DefaultSnapshotScale)
	case FormatPDF:
		data, err = nodelink.RenderPDF(dot)
	default:
		return ValidateSnapshotFormat(opts.Snapshot)
	}
	if err != nil {
		return err
	}

	if err := mkdirParent(opts.SnapshotPath); err != nil {
		return err
	}
	if err := os.WriteFile(opts.SnapshotPath, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "write %s", opts.SnapshotPath)
	}
	return nil
}

func mkdirParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "create directory %s", dir)
	}
	return nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
