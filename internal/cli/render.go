package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/splitkeys/splitviz/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	vial     string   // vial.json sidecar path
	vialSet  bool     // whether --vial was passed explicitly
	formats  []string // output formats: "svg", "png", "pdf"
	scale    float64  // raster scale factor for PNG
	noCombos bool     // suppress combo overlays
	noLegend bool     // suppress the legend block
}

// newRenderCmd creates the render command for generating layout diagrams.
// It reads a keyboard.toml and writes one file per requested format.
//
// Default settings:
//   - format: svg
//   - scale: 2.0 (PNG only)
//   - vial: a vial.json next to the config, if one exists
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		scale: pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [keyboard.toml]",
		Short: "Render a keymap config to layout diagram(s)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			opts.vialSet = cmd.Flags().Changed("vial")
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.vial, "vial", "", "vial.json sidecar with hardware metadata")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG output")
	cmd.Flags().BoolVar(&opts.noCombos, "no-combos", false, "omit combo overlays")
	cmd.Flags().BoolVar(&opts.noLegend, "no-legend", false, "omit the legend block")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	formats := make([]string, 0, len(parts))
	for _, p := range parts {
		formats = append(formats, strings.ToLower(strings.TrimSpace(p)))
	}
	return formats
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// format extension (.svg, .png, .pdf), it strips that extension. This is
// used when generating multiple files (e.g., corne.svg, corne.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// vialPath resolves the sidecar path for a config. An explicit --vial is
// passed through untouched; otherwise a vial.json next to the config is
// used when it exists.
func vialPath(input string, opts *renderOpts) string {
	if opts.vialSet {
		return opts.vial
	}
	sidecar := filepath.Join(filepath.Dir(input), "vial.json")
	if _, err := os.Stat(sidecar); err != nil {
		return ""
	}
	return sidecar
}

// runRender executes the pipeline and writes one file per format.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)
	p := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		ConfigPath: input,
		VialPath:   vialPath(input, opts),
		Formats:    opts.formats,
		Scale:      opts.scale,
		NoCombos:   opts.noCombos,
		NoLegend:   opts.noLegend,
	})
	if err != nil {
		return err
	}

	var paths []string
	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = basePath(opts.output, input) + "." + format
		}
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		paths = append(paths, path)
	}

	p.done(fmt.Sprintf("Rendered %d layer(s), %d combo(s)",
		result.Stats.LayerCount, result.Stats.ComboCount))

	printSuccess("Generated %s layout", result.Keymap.Name)
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// writeArtifact writes data to path, or to stdout when path is "-".
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.Write(data)
	return err
}

// openOutput opens path for writing, or returns stdout when path is "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
