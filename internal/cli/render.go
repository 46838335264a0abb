package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roughdraw/pkg/config"
	"github.com/matzehuels/roughdraw/pkg/errors"
	"github.com/matzehuels/roughdraw/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
// Unset flags fall back to the [render] section of the config file.
type renderOpts struct {
	output     string   // output file (single input and format) or base path / directory
	formats    []string // output formats: "svg", "png", "pdf"
	background string   // canvas color
	quality    int      // PNG compression quality 0-100
	dpi        float64  // output DPI
	legacy     bool     // rasterize through rsvg-convert
	precision  int      // SVG coordinate decimals
	workers    int      // element workers
	noCache    bool     // disable the artifact cache
	refresh    bool     // re-render even when cached
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render Excalidraw documents to SVG, PNG or PDF",
		Long: `Render one or more Excalidraw documents.

Without --output each input is written next to itself with the extension of
the output format. With a single input, --output names the output file and
its extension picks the format when --format is not given. With several
inputs or formats, --output is a directory or base path.`,
		Example: `  roughdraw render diagram.excalidraw
  roughdraw render diagram.excalidraw -o diagram.svg
  roughdraw render *.excalidraw -f png --dpi 192 -b "#ffffff"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr, opts.output, len(args))
			applyConfig(cmd, &opts, c.Config.Render)
			return c.runRender(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single input/format) or base path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf (comma-separated)")
	cmd.Flags().StringVarP(&opts.background, "background", "b", "", `background color, e.g. "#ffffff" or "transparent"`)
	cmd.Flags().IntVarP(&opts.quality, "quality", "q", config.DefaultQuality, "PNG compression quality (0-100)")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", config.DefaultDPI, "output resolution; 96 renders one pixel per unit")
	cmd.Flags().BoolVar(&opts.legacy, "legacy", false, "rasterize PNG through rsvg-convert (draws text)")
	cmd.Flags().IntVar(&opts.precision, "precision", config.DefaultPrecision, "decimals in SVG coordinates")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "element workers (0 = number of CPUs)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// parseFormats parses the --format flag. Without it the format is taken from
// the output extension when that names a single file, else PNG.
func parseFormats(s, output string, inputs int) []string {
	if s != "" {
		var out []string
		for _, f := range strings.Split(s, ",") {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				out = append(out, f)
			}
		}
		return out
	}
	if inputs == 1 {
		if f := pipeline.FormatFromPath(output); f != "" {
			return []string{f}
		}
	}
	return []string{pipeline.DefaultFormat}
}

// applyConfig fills every flag the user did not set from the config file.
func applyConfig(cmd *cobra.Command, opts *renderOpts, cfg config.RenderConfig) {
	flags := cmd.Flags()
	if !flags.Changed("background") {
		opts.background = cfg.Background
	}
	if !flags.Changed("quality") {
		opts.quality = cfg.Quality
	}
	if !flags.Changed("dpi") {
		opts.dpi = cfg.DPI
	}
	if !flags.Changed("legacy") {
		opts.legacy = cfg.Legacy
	}
	if !flags.Changed("precision") {
		opts.precision = cfg.Precision
	}
	if !flags.Changed("workers") {
		opts.workers = cfg.Workers
	}
}

// pipelineOptions converts flags into pipeline options.
func (o renderOpts) pipelineOptions() pipeline.Options {
	precision := o.precision
	return pipeline.Options{
		Formats:    o.formats,
		Background: o.background,
		Quality:    o.quality,
		DPI:        o.dpi,
		Legacy:     o.legacy,
		Precision:  &precision,
		Workers:    o.workers,
		Refresh:    o.refresh,
	}
}

// runRender renders every input in order. A failing input does not stop the
// others; the command fails if any input failed.
func (c *CLI) runRender(ctx context.Context, inputs []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	pOpts := opts.pipelineOptions()
	if err := pOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	pOpts.Logger = logger

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	failed := 0
	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg := fmt.Sprintf("Rendering %s", filepath.Base(input))
		if len(inputs) > 1 {
			msg = fmt.Sprintf("Rendering %s (%d/%d)", filepath.Base(input), i+1, len(inputs))
		}
		spinner := newSpinnerWithContext(ctx, msg)
		spinner.Start()

		sw := startStopwatch(logger)
		paths, res, err := renderOne(ctx, runner, input, opts, pOpts, len(inputs))
		if err != nil {
			if ctx.Err() != nil {
				spinner.Stop()
				return ctx.Err()
			}
			spinner.StopWithError(fmt.Sprintf("%s: %s", input, errors.UserMessage(err)))
			logger.Debug("render failed", "input", input, "err", err)
			failed++
			continue
		}
		spinner.StopWithSuccess(fmt.Sprintf("Rendered %s", input))
		for _, p := range paths {
			printFile(p)
		}
		printStats(res.Stats.ElementCount, res.Stats.ItemCount, res.CacheInfo.RenderHit, sw.elapsed())
		sw.lap("rendered", "input", input, "formats", len(paths))
	}

	if len(inputs) > 1 {
		printNewline()
		printKeyValue("Rendered", fmt.Sprintf("%d", len(inputs)-failed))
		if failed > 0 {
			printKeyValue("Failed", fmt.Sprintf("%d", failed))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(inputs))
	}
	return nil
}

// renderOne renders one input and writes one file per format.
func renderOne(ctx context.Context, runner *pipeline.Runner, input string, opts renderOpts, pOpts pipeline.Options, inputs int) ([]string, *pipeline.Result, error) {
	res, err := runner.ExecuteFile(ctx, input, pOpts)
	if err != nil {
		return nil, nil, err
	}

	var paths []string
	for _, format := range pOpts.Formats {
		data, ok := res.Artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(input, opts.output, format, inputs, len(pOpts.Formats))
		if err := errors.ValidateOutputPath(path); err != nil {
			return nil, nil, err
		}
		if err := writeFile(path, data); err != nil {
			return nil, nil, err
		}
		paths = append(paths, path)
	}
	return paths, res, nil
}

// outputPath decides where an artifact goes:
//   - no --output: next to the input with the format's extension
//   - one input and one format: --output as given
//   - one input, several formats: --output as base path plus extension
//   - several inputs: --output as directory
func outputPath(input, output, format string, inputs, formats int) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	switch {
	case output == "":
		return filepath.Join(filepath.Dir(input), base+"."+format)
	case inputs > 1:
		return filepath.Join(output, base+"."+format)
	case formats == 1:
		return output
	default:
		return strings.TrimSuffix(output, filepath.Ext(output)) + "." + format
	}
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
