package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/provenlabs/origintrace/pkg/cache"
	"github.com/provenlabs/origintrace/pkg/diagram"
	"github.com/provenlabs/origintrace/pkg/observability"
	"github.com/provenlabs/origintrace/pkg/render"
	"github.com/provenlabs/origintrace/pkg/routing"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
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

// Result contains the outputs of a pipeline run.
type Result struct {
	// PassID uniquely identifies this pipeline run.
	PassID string

	// Diagram is the loaded input document.
	Diagram diagram.Diagram

	// DiagramHash is the content hash of the diagram.
	DiagramHash string

	// PathSet contains the routed edge paths and the dropped-edge report.
	PathSet diagram.PathSet

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Execute runs the complete load → route → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		PassID:    uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	d, err := diagram.ReadDiagramFile(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Diagram = d
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.EdgeCount = len(d.Edges)

	if data, err := diagram.MarshalDiagram(d); err == nil {
		result.DiagramHash = cache.Hash(data)
	}

	r.Logger.Info("loaded diagram",
		"nodes", len(d.Positions),
		"clusters", len(d.Clusters),
		"edges", len(d.Edges),
		"duration", result.Stats.LoadTime)

	// Stage 2: Route
	routeStart := time.Now()
	ps, routeHit, err := r.RouteWithCacheInfo(ctx, result.PassID, d, opts)
	if err != nil {
		return nil, fmt.Errorf("route: %w", err)
	}
	result.PathSet = ps
	result.Stats.RouteTime = time.Since(routeStart)
	result.Stats.RoutedCount = len(ps.Paths)
	result.Stats.DroppedCount = len(ps.Dropped)
	result.Stats.Crossings = routing.Crossings(ps.Paths)
	result.CacheInfo.RouteHit = routeHit

	r.Logger.Info("routed edges",
		"routed", result.Stats.RoutedCount,
		"dropped", result.Stats.DroppedCount,
		"crossings", result.Stats.Crossings,
		"duration", result.Stats.RouteTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, d, ps, opts)
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

// RouteWithCacheInfo routes a diagram with caching and returns cache hit info.
func (r *Runner) RouteWithCacheInfo(ctx context.Context, passID string, d diagram.Diagram, opts Options) (diagram.PathSet, bool, error) {
	if err := opts.ValidateForRoute(); err != nil {
		return diagram.PathSet{}, false, err
	}
	r.applyLogger(&opts)

	diagramData, err := diagram.MarshalDiagram(d)
	if err != nil {
		return diagram.PathSet{}, false, fmt.Errorf("serialize diagram for cache key: %w", err)
	}
	cacheKey := r.Keyer.RouteKey(cache.Hash(diagramData), opts.RouteKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := diagram.UnmarshalPathSet(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "route")
				return cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "route")
	}

	// Route
	observability.Routing().OnRouteStart(ctx, passID, len(d.Edges))
	routeStart := time.Now()
	routed := routing.RouteAll(d, opts.RouteConfig())
	for _, edgeID := range routed.Dropped {
		observability.Routing().OnEdgeDropped(ctx, passID, edgeID)
	}
	observability.Routing().OnRouteComplete(ctx, passID,
		len(routed.Paths), len(routed.Dropped), time.Since(routeStart), nil)

	ps := routed.PathSet()

	// Cache the result
	if data, err := diagram.MarshalPathSet(ps); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLRoute); err == nil {
			observability.Cache().OnCacheSet(ctx, "route", len(data))
		}
	}

	return ps, false, nil
}

// Route is a convenience wrapper that calls RouteWithCacheInfo and discards the cache hit info.
func (r *Runner) Route(ctx context.Context, d diagram.Diagram, opts Options) (diagram.PathSet, error) {
	ps, _, err := r.RouteWithCacheInfo(ctx, uuid.NewString(), d, opts)
	return ps, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, d diagram.Diagram, ps diagram.PathSet, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	pathData, err := diagram.MarshalPathSet(ps)
	if err != nil {
		return nil, false, fmt.Errorf("serialize paths for cache key: %w", err)
	}
	routeHash := cache.Hash(pathData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(routeHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	observability.Render().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	rendered, err := renderFormats(d, ps, opts)
	observability.Render().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(routeHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, d diagram.Diagram, ps diagram.PathSet, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, d, ps, opts)
	return artifacts, err
}

// renderFormats produces every requested output format from the routed diagram.
func renderFormats(d diagram.Diagram, ps diagram.PathSet, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svgOpts []render.SVGOption
	if opts.ShowNodes {
		svgOpts = append(svgOpts, render.WithNodes())
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = render.RenderSVG(d, ps.Paths, svgOpts...)
		case FormatPNG:
			data, err := render.RenderDOTPNG(render.ToDOT(d))
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[format] = data
		case FormatDOT:
			artifacts[format] = []byte(render.ToDOT(d))
		case FormatJSON:
			data, err := diagram.MarshalPathSet(ps)
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			artifacts[format] = data
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}
	return artifacts, nil
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
