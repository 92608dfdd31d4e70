package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figstyle/pkg/pipeline"
	"github.com/matzehuels/figstyle/pkg/preview"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	output string  // backdrop PNG path
	style  string  // sheet name or .toml path
	dpi    float64 // check resolution
}

// previewCommand creates the preview command, which renders a figure at
// high resolution, reports whether it is clipped and writes the figure on a
// gray backdrop so its extent is visible.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview [figure.toml]",
		Short: "Check a figure for clipping and write a backdrop preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.style == "" {
				opts.style = c.Config.Style
			}
			if !cmd.Flags().Changed("dpi") {
				opts.dpi = c.Config.PreviewDPI
			}
			return c.runPreview(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "backdrop image (default <figure>_preview.png)")
	cmd.Flags().StringVar(&opts.style, "style", "", "style sheet name or .toml file (overrides the figure's style)")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", preview.DefaultDPI, "check resolution")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, opts previewOpts) error {
	logger := loggerFromContext(ctx)

	data, err := readDescription(input)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, nil, logger)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, os.Stderr, fmt.Sprintf("Rendering at %g dpi...", opts.dpi))
	spinner.Start()
	res, err := runner.Preview(ctx, data, pipeline.Options{Style: opts.style, Logger: logger}, preview.Options{DPI: opts.dpi, Logger: logger})
	spinner.Stop()
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = basePath("", input) + "_preview.png"
	}
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	if err := res.Backdrop(f); err != nil {
		f.Close()
		return fmt.Errorf("write preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	b := res.Image.Bounds()
	if res.Clipped {
		printWarning("Figure touches the image border and is probably clipped")
	} else {
		printSuccess("Figure fits inside its canvas")
	}
	printKeyValue("Size", fmt.Sprintf("%d×%d px", b.Dx(), b.Dy()))
	printKeyValue("Preview", output)
	printDetail("Gray marks the canvas outside the figure")
	return nil
}
