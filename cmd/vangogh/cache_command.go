package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vangogh/internal/museum"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the museum object cache",
	}
	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	return cacheCmd
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show how many objects are cached",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, cmd, func(cache *museum.Cache) error {
				stats, err := cache.Stats(ctx.runContext(cmd))
				if err != nil {
					return err
				}
				rows := [][]string{
					{"Path", stats.Path},
					{"Objects", fmt.Sprintf("%d", stats.Objects)},
					{"Oldest", formatTimestamp(stats.Oldest)},
					{"Newest", formatTimestamp(stats.Newest)},
				}
				printTable(cmd.OutOrStdout(), []string{"Field", "Value"}, rows, nil)
				return nil
			})
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached object",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(ctx, cmd, func(cache *museum.Cache) error {
				removed, err := cache.Clear(ctx.runContext(cmd))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached object(s) from %s\n", removed, cache.Path())
				return nil
			})
		},
	}
}

func withCache(ctx *commandContext, cmd *cobra.Command, fn func(*museum.Cache) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	cache, err := museum.OpenCache(ctx.runContext(cmd), cfg.Paths.CachePath)
	if err != nil {
		return fmt.Errorf("open object cache: %w", err)
	}
	defer cache.Close()
	return fn(cache)
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return "-"
	}
	return ts.Local().Format(time.RFC3339)
}
