package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arena/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single format) or base path (several)
	formats  []string // svg, pdf, png, json
	view     string   // plan or elevation
	scale    float64  // PNG rasterization factor
	detailed bool     // label sections with their full description
}

// renderCommand creates the render command for drawing courts.
func (c *CLI) renderCommand() *cobra.Command {
	var flags courtFlags
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [court.json|design.yaml]",
		Short: "Draw a court as SVG, PDF or PNG",
		Long: `Draw a court. The plan view shows the walls from above around the
court rectangle; the elevation view shows each wall face-on with section
heights to scale.

PDF and PNG output need rsvg-convert (librsvg).`,
		Example: `  arena render -W 10 -L 15
  arena render club.yaml -f svg,png --view elevation -o club`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.view == "" {
				opts.view = c.cfg.Defaults.View
			}
			if err := pipeline.ValidateView(opts.view); err != nil {
				return err
			}
			if opts.scale == 0 {
				opts.scale = c.cfg.Defaults.Scale
			}
			return c.runRender(cmd.Context(), args, &flags, &opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png, json (comma-separated)")
	cmd.Flags().StringVar(&opts.view, "view", "", "drawing: plan (default), elevation")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor (default from config)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label sections with heights and arch details")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, args []string, flags *courtFlags, opts *renderOpts) error {
	src, err := c.loadCourt(ctx, args, flags)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Formats:  opts.formats,
		View:     opts.view,
		Scale:    opts.scale,
		Detailed: opts.detailed,
		Logger:   c.Logger,
	}

	spin := newSpinner(ctx, os.Stderr, "Rendering "+src.court.String())
	spin.Start()
	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, src.court, popts)
	if err != nil {
		spin.StopWithError("Render failed")
		return err
	}
	spin.SetMessage("Writing files")

	base := basePath(opts.output, src.name)
	var paths []string
	for _, format := range opts.formats {
		path := outputPath(opts.output, base, format, len(opts.formats))
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			spin.StopWithError("Write failed")
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	spin.Stop()

	printSuccess("Rendered %s (%s view)", src.court.String(), opts.view)
	printStats(countSections(src.court), 0, hit)
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// basePath derives the base output path. Without -o it is the input name; a
// known format extension on -o is stripped.
func basePath(output, name string) string {
	if output == "" {
		return name
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath names the file for one format. A single format written to an
// explicit -o path keeps that path as given.
func outputPath(output, base, format string, n int) string {
	if n == 1 && output != "" && filepath.Ext(output) != "" {
		return output
	}
	return base + "." + format
}
