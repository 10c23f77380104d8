package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphview/pkg/config"
	"github.com/matzehuels/graphview/pkg/errors"
	"github.com/matzehuels/graphview/pkg/pipeline"
	"github.com/matzehuels/graphview/pkg/render/nodelink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	input     string // --in, alternative to the positional argument
	output    string // HTML page to write
	title     string // page title override
	height    string // canvas height override
	width     string // canvas width override
	noButtons bool   // hide the engine configuration panel
	noExport  bool   // skip the PNG/SVG toolbar
	jsonPath  string // also write the canonical graph as JSON
	snapshot  string // also write a static svg, png or pdf rendering
	detailed  bool   // list attributes in snapshot nodes
	leftRight bool   // lay the snapshot out left to right
	noCache   bool   // bypass the parsed-graph cache
	refresh   bool   // re-parse even when cached
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [input.graphml]",
		Short: "Render a GraphML document as an interactive HTML page",
		Long: `Render reads a GraphML document, colors nodes by their type label and
writes a self-contained HTML page with a force-directed network view.

Unless --no-export is given, the page gets Save PNG and Save SVG buttons.`,
		Example: `  graphview render forest.graphml
  graphview render --in forest.graphml --out site/graph.html --no-buttons
  graphview render forest.graphml --snapshot svg --json graph.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := resolveInput(args, opts.input)
			if err != nil {
				return err
			}
			opts.input = input

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg, opts, cmd.Flags().Changed("no-buttons"), cmd.Flags().Changed("no-export"))
		},
	}

	cmd.Flags().StringVar(&opts.input, "in", "", "input GraphML file (alternative to the positional argument)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", pipeline.DefaultOutput, "output HTML file")
	cmd.Flags().StringVar(&opts.title, "title", "", "page title")
	cmd.Flags().StringVar(&opts.height, "height", "", "canvas height (CSS length)")
	cmd.Flags().StringVar(&opts.width, "width", "", "canvas width (CSS length)")
	cmd.Flags().BoolVar(&opts.noButtons, "no-buttons", false, "hide the physics configuration panel")
	cmd.Flags().BoolVar(&opts.noExport, "no-export", false, "do not add the PNG/SVG export toolbar")
	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "also write the graph as JSON to this file")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "also write a static rendering: svg, png, pdf")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "list node attributes in the snapshot")
	cmd.Flags().BoolVar(&opts.leftRight, "left-right", false, "lay the snapshot out left to right")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the parsed-graph cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-parse the input even if it is cached")

	return cmd
}

// resolveInput picks the input path from the positional argument or --in.
func resolveInput(args []string, flag string) (string, error) {
	switch {
	case len(args) == 1 && flag != "" && args[0] != flag:
		return "", errors.New(errors.ErrCodeInvalidInput, "input given twice: %q and --in %q", args[0], flag)
	case len(args) == 1:
		return args[0], nil
	case flag != "":
		return flag, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "input file is required (argument or --in)")
	}
}

// pipelineOptions merges config values and flags. Flags win when set.
func (o renderOpts) pipelineOptions(cfg config.Config, buttonsSet, exportSet bool) pipeline.Options {
	page := cfg.VisnetOptions()
	if o.title != "" {
		page.Title = o.title
	}
	if o.height != "" {
		page.Height = o.height
	}
	if o.width != "" {
		page.Width = o.width
	}

	noButtons := !cfg.Render.Buttons
	if buttonsSet {
		noButtons = o.noButtons
	}
	noExport := !cfg.Render.Export
	if exportSet {
		noExport = o.noExport
	}

	return pipeline.Options{
		Input:     o.input,
		Output:    o.output,
		Page:      page,
		NoButtons: noButtons,
		NoExport:  noExport,
		Palette:   cfg.Colors(),
		Neutral:   cfg.Palette.Neutral,
		JSONPath:  o.jsonPath,
		Snapshot:  o.snapshot,
		SnapshotOptions: nodelink.Options{
			Detailed:    o.detailed,
			LeftToRight: o.leftRight,
		},
		Refresh:  o.refresh,
		CacheTTL: cfg.Cache.TTL.Duration,
	}
}

func (c *CLI) runRender(ctx context.Context, cfg config.Config, opts renderOpts, buttonsSet, exportSet bool) error {
	popts := opts.pipelineOptions(cfg, buttonsSet, exportSet)
	if popts.Snapshot != "" {
		if err := pipeline.ValidateSnapshotFormat(popts.Snapshot); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	var spinner *Spinner
	if !c.verbose {
		spinner = newSpinner(ctx, c.errOut, "Rendering "+filepath.Base(popts.Input)+"...")
		spinner.Start()
	}
	result, err := runner.Execute(ctx, popts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}
	prog.done("rendered " + popts.Input)

	printSuccess("Wrote: %s", result.Output)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.TypeCount, result.Skipped, result.CacheHit)
	if result.JSONPath != "" {
		printFile(result.JSONPath)
	}
	if result.SnapshotPath != "" {
		printFile(result.SnapshotPath)
	}
	if !result.Injected {
		printNextStep("Add export buttons", appName+" inject "+popts.Output)
	}
	printNextStep("Preview", appName+" serve "+popts.Output)
	return nil
}
