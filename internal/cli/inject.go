package cli

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphview/pkg/errors"
	"github.com/matzehuels/graphview/pkg/observability"
	"github.com/matzehuels/graphview/pkg/render/export"
)

// injectCommand creates the inject command, which adds the export toolbar
// to an HTML page produced elsewhere.
func (c *CLI) injectCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "inject <document.html>",
		Short: "Add Save PNG / Save SVG buttons to an existing page",
		Long: `Inject inserts the export toolbar immediately before the closing body
tag of a page that draws a network into a canvas. The file is rewritten in
place and left untouched if no closing body tag is found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInject(cmd.Context(), args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "inject even if the page already has a toolbar")
	return cmd
}

func (c *CLI) runInject(ctx context.Context, path string, force bool) error {
	doc, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "document not found: %s", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "read %s", path)
	}
	if export.Injected(doc) && !force {
		printWarning("%s already has an export toolbar (use --force to add another)", path)
		return nil
	}

	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, observability.StageInject)
	start := time.Now()
	err = export.InjectFile(path)
	hooks.OnStageComplete(ctx, observability.StageInject, time.Since(start), err)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	c.Logger.Debug("injected export toolbar", "path", abs)
	printSuccess("Wrote: %s", abs)
	return nil
}
