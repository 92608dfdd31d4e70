package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figstyle/pkg/errors"
	"github.com/matzehuels/figstyle/pkg/pipeline"
	"github.com/matzehuels/figstyle/pkg/preview"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string   // output file (single format) or base path (multiple)
	formats       []string // output formats: svg, pdf, eps, png, jpg, tif
	style         string   // sheet name or .toml path; overrides the description
	dpi           float64  // raster resolution; 0 keeps the sheet's save DPI
	checkClipping bool     // run the preview clipping check after rendering
	noCache       bool     // bypass the artifact cache entirely
	refresh       bool     // re-render even when cached
}

// renderCommand creates the render command for turning figure descriptions
// into image files.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [figure.toml]",
		Short: "Render a figure description to SVG, PDF or raster images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr, c.Config.Formats)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.style == "" {
				opts.style = c.Config.Style
			}
			if !cmd.Flags().Changed("dpi") {
				opts.dpi = c.Config.DPI
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, eps, png, jpg, tif (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "style sheet name or .toml file (overrides the figure's style)")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", 0, "raster resolution (default: the sheet's save dpi)")
	cmd.Flags().BoolVar(&opts.checkClipping, "check-clipping", false, "warn when the figure touches the image border")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runRender renders input and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	data, err := readDescription(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, os.Stderr, "Rendering "+filepath.Base(input)+"...")
	spinner.Start()
	pipeOpts := pipeline.Options{
		Formats: opts.formats,
		Style:   opts.style,
		DPI:     opts.dpi,
		Refresh: opts.refresh,
		Logger:  logger,
	}
	result, err := runner.Execute(ctx, data, pipeOpts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", input))

	paths := outputPaths(opts.output, input, opts.formats)
	printSuccess("Rendered %s", input)
	for _, format := range opts.formats {
		if err := writeOutput(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
		printFile(paths[format])
	}
	printStats(result.Stats.PanelCount, len(opts.formats), result.CacheInfo.RenderHit)

	if !opts.checkClipping {
		return nil
	}
	res, err := runner.Preview(ctx, data, pipeOpts, preview.Options{DPI: c.Config.PreviewDPI, Logger: logger})
	if err != nil {
		return fmt.Errorf("clipping check: %w", err)
	}
	if res.Clipped {
		printWarning("Figure touches the image border and is probably clipped")
		printNextStep("Inspect it with", fmt.Sprintf("%s preview %s", appName, input))
	}
	return nil
}

// readDescription reads a figure description file.
func readDescription(input string) ([]byte, error) {
	if err := errors.ValidatePath(input); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(input)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "figure description %s", input)
	}
	return data, err
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to its file. A single format is written to
// output verbatim when output is given.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
