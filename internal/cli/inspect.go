package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphview/pkg/palette"
)

// inspectCommand creates the inspect command, which runs the extract and
// build stages and prints a summary instead of a page.
func (c *CLI) inspectCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "inspect <input.graphml>",
		Short: "Summarize a GraphML document and its type colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			parsed, err := runner.Parse(ctx, args[0], false, cfg.Cache.TTL.Duration)
			if err != nil {
				return err
			}
			g := parsed.Graph
			colors := palette.AssignWithNeutral(g.RenderedTypes(), cfg.Colors(), cfg.Palette.Neutral)

			fmt.Fprintln(stdout, StyleTitle.Render(args[0]))
			printKeyValue("nodes", strconv.Itoa(g.NodeCount()))
			printKeyValue("edges", strconv.Itoa(g.EdgeCount()))
			printKeyValue("types", strconv.Itoa(colors.Len()))
			printKeyValue("skipped", strconv.Itoa(parsed.Skipped))
			printKeyValue("sha256", parsed.InputHash)
			if dangling := g.Dangling(); len(dangling) > 0 {
				printWarning("%d edges reference undeclared nodes", len(dangling))
			}
			printLegend(colors)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the parsed-graph cache")
	return cmd
}
