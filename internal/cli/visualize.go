package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/provenlabs/origintrace/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering a diagram.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
		refresh    bool
		showNodes  bool
	)
	var flags routeFlags

	cmd := &cobra.Command{
		Use:   "visualize [diagram.json]",
		Short: "Route a diagram and render it to visual output",
		Long: `Route a diagram and render it to visual output.

The visualize command runs the full pipeline: it loads a diagram.json file,
computes edge paths, and renders the result to SVG, PNG, DOT, or JSON.

Results are cached locally for faster subsequent runs.

Use 'route' to compute paths without rendering.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			opts.Input = args[0]
			opts.Refresh = refresh
			opts.Formats = parseFormats(formatsStr)
			if cmd.Flags().Changed("nodes") {
				opts.ShowNodes = showNodes
			}
			flags.apply(cmd, &opts)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&showNodes, "nodes", false, "draw node positions")

	flags.register(cmd)

	return cmd
}

// runVisualize executes the full pipeline and writes the artifacts.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, id := range result.PathSet.Dropped {
		printWarning("dropped edge %s: endpoint has no position", id)
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
		routed:    result.Stats.RoutedCount,
		dropped:   result.Stats.DroppedCount,
		crossings: result.Stats.Crossings,
	})
}
