package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphview/pkg/cache"
	"github.com/matzehuels/graphview/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the parsed-graph cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cacheInfoCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached graphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, closeFn, err := c.openMaintainer(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			before, err := m.Stats(ctx)
			if err != nil {
				return fmt.Errorf("read cache stats: %w", err)
			}
			if before.Entries == 0 {
				printInfo("Cache is empty")
				return nil
			}
			if err := m.Clear(ctx); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cleared %d cached entries", before.Entries)
			printDetail("%s: %s", before.Backend, before.Location)
			return nil
		},
	}
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache backend, location and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, closeFn, err := c.openMaintainer(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			stats, err := m.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("read cache stats: %w", err)
			}
			printKeyValue("backend", stats.Backend)
			if stats.Location != "" {
				printKeyValue("location", stats.Location)
			}
			printKeyValue("entries", strconv.Itoa(stats.Entries))
			if stats.Bytes > 0 {
				printKeyValue("size", formatBytes(stats.Bytes))
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the file cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, cfg.CacheDir())
			return nil
		},
	}
}

// openMaintainer opens the configured cache for maintenance.
func (c *CLI) openMaintainer(cmd *cobra.Command) (cache.Maintainer, func(), error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var store cache.Cache
	if cfg.Cache.Backend == config.BackendFile {
		// Unlike the render path, a broken cache directory is an error here.
		fc, err := cache.NewFileCache(cfg.CacheDir())
		if err != nil {
			return nil, nil, fmt.Errorf("open cache: %w", err)
		}
		store = fc
	} else {
		store, err = c.newCache(cmd.Context(), cfg, false)
		if err != nil {
			return nil, nil, err
		}
	}

	m, ok := store.(cache.Maintainer)
	if !ok {
		store.Close()
		return nil, nil, fmt.Errorf("cache backend %q does not support maintenance", cfg.Cache.Backend)
	}
	return m, func() { store.Close() }, nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
