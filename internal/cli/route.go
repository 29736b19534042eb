package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/provenlabs/origintrace/pkg/diagram"
	"github.com/provenlabs/origintrace/pkg/errors"
	"github.com/provenlabs/origintrace/pkg/pipeline"
	"github.com/provenlabs/origintrace/pkg/routing"
)

// routeCommand creates the route command for computing edge paths.
func (c *CLI) routeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)
	var flags routeFlags

	cmd := &cobra.Command{
		Use:   "route [diagram.json]",
		Short: "Compute edge paths for a diagram",
		Long: `Compute edge paths for a diagram.

The route command takes a diagram.json file (node positions, clusters, and
edges) and computes an SVG path for every edge: curved paths within clusters
and orthogonal paths between clusters. The output is a paths.json file that
can be rendered with the 'visualize' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			opts.Input = args[0]
			opts.Refresh = refresh
			flags.apply(cmd, &opts)
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			return c.runRoute(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.paths.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	flags.register(cmd)

	return cmd
}

// routeFlags holds the routing flags shared by route and visualize.
type routeFlags struct {
	clearance         float64
	offsetStep        float64
	parallelThreshold float64
	style             string
}

// register adds the routing flags to a command.
func (f *routeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.clearance, "clearance", 0, "cluster exit/entry clearance")
	cmd.Flags().Float64Var(&f.offsetStep, "offset-step", 0, "vertical separation per parallel edge")
	cmd.Flags().Float64Var(&f.parallelThreshold, "parallel-threshold", 0, "endpoint distance for parallel detection")
	cmd.Flags().StringVar(&f.style, "style", "", "curve style: smooth (default), tight")
}

// apply overrides config-derived options with any explicitly set flags.
// Changed() distinguishes an explicit zero (a valid clearance) from an
// untouched flag, so --clearance 0 does not fall back to the config value.
func (f *routeFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("clearance") {
		opts.Clearance = f.clearance
	}
	if cmd.Flags().Changed("offset-step") {
		opts.OffsetStep = f.offsetStep
	}
	if cmd.Flags().Changed("parallel-threshold") {
		opts.ParallelThreshold = f.parallelThreshold
	}
	if cmd.Flags().Changed("style") {
		opts.Style = f.style
	}
}

// runRoute loads the diagram, routes its edges, and writes the path set.
func (c *CLI) runRoute(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	d, err := diagram.ReadDiagramFile(input)
	if err != nil {
		return fmt.Errorf("load diagram %s: %w", input, err)
	}
	c.warnValidation(errors.ValidateDiagram(d))

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Routing %d edges...", len(d.Edges)))
	spinner.Start()

	ps, cacheHit, err := runner.RouteWithCacheInfo(ctx, uuid.NewString(), d, opts)
	if err != nil {
		spinner.StopWithError("Routing failed")
		return fmt.Errorf("route: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".paths.json"
	}

	if err := diagram.WritePathSetFile(ps, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Routing complete")
	printFile(outputPath)
	printStats(len(ps.Paths), len(ps.Dropped), routing.Crossings(ps.Paths), cacheHit)
	for _, id := range ps.Dropped {
		printWarning("dropped edge %s: endpoint has no position", id)
	}
	printNewline()
	printNextStep("Render", "origintrace visualize "+input)

	return nil
}

// warnValidation prints validation warnings without failing the command.
func (c *CLI) warnValidation(result errors.ValidationResult) {
	for _, w := range result.Warnings {
		printWarning("%s: %s", w.Subject, w.Message)
	}
}
