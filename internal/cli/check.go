package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/provenlabs/origintrace/pkg/diagram"
	"github.com/provenlabs/origintrace/pkg/errors"
	"github.com/provenlabs/origintrace/pkg/routing"
)

// checkCommand creates the check command for diagram diagnostics.
func (c *CLI) checkCommand() *cobra.Command {
	var flags routeFlags

	cmd := &cobra.Command{
		Use:   "check [diagram.json]",
		Short: "Validate a diagram and report routing quality",
		Long: `Validate a diagram and report routing quality.

The check command validates the diagram structure (cluster extents, duplicate
IDs, missing node positions), routes the edges without caching, and reports
how many routed paths cross each other. A crossing count of zero means the
routed diagram is visually clean.

The command exits non-zero if the diagram has validation errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			flags.apply(cmd, &opts)
			return c.runCheck(cmd.Context(), args[0], opts.RouteConfig())
		},
	}

	flags.register(cmd)

	return cmd
}

// runCheck validates the diagram and reports routing diagnostics.
func (c *CLI) runCheck(ctx context.Context, input string, cfg routing.Config) error {
	d, err := diagram.ReadDiagramFile(input)
	if err != nil {
		return fmt.Errorf("load diagram %s: %w", input, err)
	}

	result := errors.ValidateDiagram(d)
	for _, w := range result.Warnings {
		printWarning("%s: %s", w.Subject, w.Message)
	}
	for _, e := range result.Errors {
		printError("%s: %s", e.Subject, e.Message)
	}
	if !result.OK() {
		return result.Err()
	}

	p := newProgress(c.Logger)
	routed := routing.RouteAll(d, cfg)
	p.done(fmt.Sprintf("Routed %d edges", len(routed.Paths)))

	crossings := routing.Crossings(routed.Paths)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Diagram is valid")
	printDetail("nodes: %d, clusters: %d, edges: %d", len(d.Positions), len(d.Clusters), len(d.Edges))
	printStats(len(routed.Paths), len(routed.Dropped), crossings, false)
	for _, id := range routed.Dropped {
		printWarning("dropped edge %s: endpoint has no position", id)
	}
	if crossings > 0 {
		printInfo("%d crossing(s) detected; consider adjusting cluster positions", crossings)
	}

	return nil
}
