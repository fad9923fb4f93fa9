// Package pipeline provides the core diagram pipeline for Splitviz.
//
// This package implements the complete load → validate → render pipeline
// shared by every entry point. Centralizing the stages keeps the CLI
// commands thin and guarantees consistent error reporting.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse keyboard.toml (and the optional vial.json sidecar)
//  2. Validate: Check every layer matrix against the physical grid shape
//  3. Render: Assemble the SVG document and convert to raster formats
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    ConfigPath: "keyboard.toml",
//	    Formats:    []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/splitkeys/splitviz/pkg/errors"
	"github.com/splitkeys/splitviz/pkg/keymap"
	"github.com/splitkeys/splitviz/pkg/layout"
	"github.com/splitkeys/splitviz/pkg/render"
	"github.com/splitkeys/splitviz/pkg/render/svg"
)

const (
	// DefaultScale is the raster scale factor for PNG output.
	// 2x keeps key labels crisp on high-density displays.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// ValidateFormats checks that every requested format is supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format %q (valid: %s)", f, strings.Join(formatNames(), ", "))
		}
	}
	return nil
}

func formatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}

// Options contains all configuration for the diagram pipeline.
type Options struct {
	// ConfigPath is the keyboard.toml to read. Required.
	ConfigPath string

	// VialPath is an optional vial.json sidecar. When set but missing on
	// disk the pipeline logs a warning and continues without it.
	VialPath string

	// Formats lists the outputs to produce. Defaults to ["svg"].
	Formats []string

	// Scale is the raster scale factor for PNG output.
	Scale float64

	// NoCombos suppresses the combo overlay block.
	NoCombos bool

	// NoLegend suppresses the legend block.
	NoLegend bool

	// Logger receives stage progress. Defaults to a discard logger.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.ConfigPath == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "config path is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Keymap is the loaded and validated keymap.
	Keymap *keymap.Keymap

	// Grid is the physical layout the diagram was drawn against.
	Grid *layout.Grid

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayerCount int
	ComboCount int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// Runner executes the pipeline. It is stateless except for the logger, so
// multiple goroutines can safely share one Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → validate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	km, err := r.Load(opts)
	if err != nil {
		return nil, err
	}
	result.Keymap = km
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.LayerCount = km.DeclaredLayers
	result.Stats.ComboCount = len(km.Combos)

	opts.Logger.Info("loaded keymap",
		"keyboard", km.Name,
		"layers", km.DeclaredLayers,
		"combos", len(km.Combos),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2 + 3: Validate and render. Render validates the shape itself
	// so a bad matrix can never produce a partial document.
	renderStart := time.Now()
	grid := layout.Build()
	result.Grid = grid

	var renderOpts []svg.Option
	if opts.NoCombos {
		renderOpts = append(renderOpts, svg.WithoutCombos())
	}
	if opts.NoLegend {
		renderOpts = append(renderOpts, svg.WithoutLegend())
	}

	doc, err := svg.Render(km, grid, renderOpts...)
	if err != nil {
		return nil, err
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := r.convert(doc, format, opts.Scale)
		if err != nil {
			return nil, err
		}
		result.Artifacts[format] = data
	}
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the keymap config and attaches the optional vial sidecar.
func (r *Runner) Load(opts Options) (*keymap.Keymap, error) {
	km, err := keymap.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.VialPath != "" {
		vial, err := keymap.LoadVial(opts.VialPath)
		switch {
		case errors.Is(err, errors.ErrCodeFileNotFound):
			opts.Logger.Warn("vial sidecar not found, continuing without it", "path", opts.VialPath)
		case err != nil:
			return nil, err
		default:
			km.Vial = vial
		}
	}

	return km, nil
}

// convert turns the SVG document into the requested output format.
func (r *Runner) convert(doc []byte, format string, scale float64) ([]byte, error) {
	switch format {
	case FormatSVG:
		return doc, nil
	case FormatPNG:
		return render.ToPNG(doc, scale)
	case FormatPDF:
		return render.ToPDF(doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format %q", format)
	}
}
