// Package pipeline provides the core tracing pipeline for Origintrace.
//
// This package implements the complete load → route → render pipeline that
// can be used by CLI and automation components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a diagram document
//  2. Route: Compute edge paths for the diagram
//  3. Render: Generate output in various formats (SVG, PNG, DOT, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "diagram.json",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/provenlabs/origintrace/pkg/cache"
	"github.com/provenlabs/origintrace/pkg/routing"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Automation
// =============================================================================

// DefaultStyle is the default same-cluster curve style.
const DefaultStyle = routing.StyleSmooth

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported curve styles.
var ValidStyles = map[string]bool{
	routing.StyleSmooth: true,
	routing.StyleTight:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the tracing pipeline.
// This struct supports JSON serialization for automation requests.
type Options struct {
	// Load options
	Input string `json:"input"`

	// Route options
	Clearance         float64 `json:"clearance,omitempty"`
	OffsetStep        float64 `json:"offset_step,omitempty"`
	ParallelThreshold float64 `json:"parallel_threshold,omitempty"`
	Style             string  `json:"style,omitempty"`
	Refresh           bool    `json:"refresh,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	ShowNodes bool     `json:"show_nodes,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EdgeCount    int
	RoutedCount  int
	DroppedCount int
	Crossings    int
	LoadTime     time.Duration
	RouteTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RouteHit  bool // Whether the routed path set came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a curve style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return fmt.Errorf("invalid style: %q (must be one of: smooth, tight)", style)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetRouteDefaults()
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		return fmt.Errorf("input is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRouteDefaults sets default values for routing.
func (o *Options) SetRouteDefaults() {
	if o.Clearance == 0 {
		o.Clearance = routing.DefaultClearance
	}
	if o.OffsetStep == 0 {
		o.OffsetStep = routing.DefaultOffsetStep
	}
	if o.ParallelThreshold == 0 {
		o.ParallelThreshold = routing.DefaultParallelThreshold
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRoute validates and sets defaults for routing.
func (o *Options) ValidateForRoute() error {
	o.SetRouteDefaults()
	return ValidateStyle(o.Style)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRouteDefaults()
	o.SetRenderDefaults()
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// RouteConfig converts the options to a routing configuration.
func (o *Options) RouteConfig() routing.Config {
	o.SetRouteDefaults()
	return routing.Config{
		Clearance:         o.Clearance,
		OffsetStep:        o.OffsetStep,
		ParallelThreshold: o.ParallelThreshold,
		Style:             o.Style,
	}
}

// RouteKeyOpts returns cache key options for routing.
func (o *Options) RouteKeyOpts() cache.RouteKeyOpts {
	return cache.RouteKeyOpts{
		Clearance:         o.Clearance,
		OffsetStep:        o.OffsetStep,
		ParallelThreshold: o.ParallelThreshold,
		Style:             o.Style,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		Style:     o.Style,
		ShowNodes: o.ShowNodes,
	}
}
