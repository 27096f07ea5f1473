// Copyright (c) 2026 The ccwrap authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/ccwrap/ccwrap/internal/cacheutil"
	"github.com/ccwrap/ccwrap/internal/config"
	"github.com/ccwrap/ccwrap/internal/meta"
)

// CacheCommandBuilder constructs the "cache" subcommand with its stats and
// purge actions.
func CacheCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "inspect and maintain the local artifact cache",
		Metadata: map[string]any{
			"meta": m,
		},
		Commands: []*cli.Command{
			{
				Name:   "stats",
				Usage:  "show cache entry count and size",
				Action: CacheStatsAction,
			},
			{
				Name:  "purge",
				Usage: "remove cache entries older than a cutoff",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "hours",
						Usage:   "age cutoff in hours (default from cache.clean in ccwrap.yaml)",
						Aliases: []string{"H"},
					},
				},
				Action: CachePurgeAction,
			},
		},
	}
}

// CacheStatsAction prints the number of entries and the total artifact bytes.
func CacheStatsAction(ctx context.Context, cmd *cli.Command) error {
	stats, err := cacheutil.Stats()
	if err != nil {
		return err
	}

	base, _ := cacheutil.Dir()
	fmt.Fprintf(os.Stdout, "directory: %s\n", base)
	fmt.Fprintf(os.Stdout, "entries:   %d\n", stats.Entries)
	fmt.Fprintf(os.Stdout, "size:      %s\n", humanize.Bytes(uint64(stats.TotalSize)))
	return nil
}

// CachePurgeAction removes entries older than --hours, falling back to the
// cache.clean config key.
func CachePurgeAction(ctx context.Context, cmd *cli.Command) error {
	hours := int(cmd.Int("hours"))
	if hours <= 0 {
		hours, _ = config.GetInt("cache.clean")
	}
	log.Debugf("purging cache entries older than %d hours", hours)
	return cacheutil.Purge(hours)
}
