// Package pipeline provides the court pipeline shared by the CLI and the
// HTTP API.
//
// This package implements the complete generate → edit → BOM → render
// pipeline. By centralizing it, both entry points cache the same artifacts
// under the same keys and report the same events.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Court: generate a court from dimensions (or take one supplied by the
//     caller) and apply the requested edit ops
//  2. BOM: aggregate the bill of materials
//  3. Render: draw the court in the requested formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Every stage result is cached under a content-derived key.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Width: 10, Length: 15, EndHeight: 3, SideHeight: 3,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	c, applied, err := runner.BuildCourt(ctx, opts)
//	items, err := runner.BOM(ctx, c)
//	artifacts, err := runner.Render(ctx, c, opts)
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/arena/pkg/bom"
	"github.com/matzehuels/arena/pkg/cache"
	"github.com/matzehuels/arena/pkg/court"
	"github.com/matzehuels/arena/pkg/edit"
	"github.com/matzehuels/arena/pkg/errors"
	"github.com/matzehuels/arena/pkg/render/plan"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultEndHeight is the end wall height in meters.
	DefaultEndHeight = 3

	// DefaultSideHeight is the side wall height in meters.
	DefaultSideHeight = 3

	// DefaultPNGScale is the rasterization factor for PNG output.
	DefaultPNGScale = 2.0
)

// DefaultView is the default drawing.
const DefaultView = string(plan.ViewPlan)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidViews is the set of supported drawings.
var ValidViews = map[string]bool{
	string(plan.ViewPlan):      true,
	string(plan.ViewElevation): true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the court pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Court options. Court, when set, replaces generation from dimensions.
	Width      int          `json:"width,omitempty"`
	Length     int          `json:"length,omitempty"`
	EndHeight  int          `json:"end_height,omitempty"`
	SideHeight int          `json:"side_height,omitempty"`
	Standalone bool         `json:"standalone,omitempty"`
	Ops        []edit.Op    `json:"ops,omitempty"`
	Court      *court.Court `json:"-"`
	Refresh    bool         `json:"refresh,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	View     string   `json:"view,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Court is the final court after all accepted edits.
	Court *court.Court

	// CourtHash is the content hash of the encoded court.
	CourtHash string

	// Applied reports, per op, whether the edit engine accepted it.
	Applied []bool

	// BOM is the bill of materials in aggregation order.
	BOM []bom.Item

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Sections   int
	BOMLines   int
	BOMTotal   int
	CourtTime  time.Duration
	BOMTime    time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	CourtHit  bool // Whether the court came from cache
	BOMHit    bool // Whether the BOM came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
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

// ValidateView checks that a view is valid.
func ValidateView(view string) error {
	if !ValidViews[view] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid view: %q (must be one of: plan, elevation)", view)
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
	if err := o.ValidateForCourt(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForCourt checks the court inputs and applies height defaults.
// Dimension ranges are left to the generator so its errors reach the caller
// unchanged.
func (o *Options) ValidateForCourt() error {
	if o.Court == nil && !o.Standalone {
		if o.Width == 0 || o.Length == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "width and length are required")
		}
		if o.EndHeight == 0 {
			o.EndHeight = DefaultEndHeight
		}
		if o.SideHeight == 0 {
			o.SideHeight = DefaultSideHeight
		}
	}
	for i, op := range o.Ops {
		if _, err := edit.ParseOpKind(string(op.Kind)); err != nil {
			return fmt.Errorf("ops[%d]: %w", i, err)
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if o.Scale == 0 {
		o.Scale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateView(o.View); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// Describe summarizes the court request for logs and hooks.
func (o *Options) Describe() string {
	switch {
	case o.Court != nil:
		return o.Court.String()
	case o.Standalone:
		return "standalone"
	}
	return fmt.Sprintf("%dx%d end=%d side=%d", o.Width, o.Length, o.EndHeight, o.SideHeight)
}

// CourtKeyOpts returns cache key options for court generation.
func (o *Options) CourtKeyOpts() cache.CourtKeyOpts {
	k := cache.CourtKeyOpts{
		Width:      o.Width,
		Length:     o.Length,
		EndHeight:  o.EndHeight,
		SideHeight: o.SideHeight,
		Standalone: o.Standalone,
	}
	if o.Standalone {
		k.Width, k.Length, k.EndHeight, k.SideHeight = 0, 0, 0, 0
	}
	if len(o.Ops) > 0 {
		data, _ := json.Marshal(o.Ops)
		k.OpsHash = cache.Hash(data)
	}
	return k
}

// PlanOptions returns the drawing options.
func (o *Options) PlanOptions() plan.Options {
	return plan.Options{View: plan.View(o.View), Detailed: o.Detailed}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		View:     o.View,
		Format:   format,
		Detailed: o.Detailed,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
